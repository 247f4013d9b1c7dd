// Package dxt losslessly rearranges BC1/BC2/BC3 block-compressed texture
// data so that general-purpose compressors shrink it further.
//
// Each block format interleaves color endpoints, pixel index tables and
// (for BC2/BC3) alpha data inside fixed 8- or 16-byte blocks, scattering
// similar bytes far apart. Transform regroups every field into its own
// contiguous region, optionally decorrelating the color endpoints through
// a reversible YCoCg-R variant; Untransform restores the original bytes
// exactly. DetermineOptimalTransform picks the best settings for a buffer
// by scoring candidates with a pluggable size estimator.
//
// The transforms carry no interpretation of block contents: correctness
// depends only on field sizes and positions, so arbitrary (even invalid)
// block data round-trips bit for bit.
package dxt

// Transform rearranges src, which must hold a whole number of format
// blocks, into per-field regions in dst. dst must be at least as large as
// src and must not overlap it; bytes of dst beyond len(src) are left
// untouched. On error dst is unwritten. A zero-length src is a valid
// no-op.
//
// The applied settings cannot be recovered from the output; callers
// persist them (usually via TransformSettings.Pack) and replay them in
// Untransform.
func Transform(format Format, dst, src []byte, s TransformSettings) error {
	if err := validateArgs(format, dst, src, s); err != nil {
		return err
	}
	transformKernel(activeKernels(), format, dst, src, s)
	return nil
}

// Untransform is the exact inverse of Transform: given transformed bytes
// in src and the settings that produced them, it writes the original block
// data to dst. The size contract matches Transform's.
func Untransform(format Format, dst, src []byte, s TransformSettings) error {
	if err := validateArgs(format, dst, src, s); err != nil {
		return err
	}
	untransformKernel(activeKernels(), format, dst, src, s)
	return nil
}

// transformKernel routes to the per-format kernel of the given tier.
// Arguments are pre-validated.
func transformKernel(k *kernelSet, format Format, dst, src []byte, s TransformSettings) {
	switch format {
	case FormatBC1:
		k.bc1Transform(dst, src, s.Decorrelate, s.SplitColorEndpoints)
	case FormatBC2:
		k.bc2Transform(dst, src, s.Decorrelate, s.SplitColorEndpoints)
	case FormatBC3:
		k.bc3Transform(dst, src, s.Decorrelate, s.SplitColorEndpoints, s.SplitAlphaEndpoints)
	}
}

func untransformKernel(k *kernelSet, format Format, dst, src []byte, s TransformSettings) {
	switch format {
	case FormatBC1:
		k.bc1Untransform(dst, src, s.Decorrelate, s.SplitColorEndpoints)
	case FormatBC2:
		k.bc2Untransform(dst, src, s.Decorrelate, s.SplitColorEndpoints)
	case FormatBC3:
		k.bc3Untransform(dst, src, s.Decorrelate, s.SplitColorEndpoints, s.SplitAlphaEndpoints)
	}
}

// validateInput checks the format and the block alignment of src.
func validateInput(format Format, src []byte) error {
	bs := format.BlockSize()
	if bs == 0 {
		return ErrUnknownFormat
	}
	if len(src)%bs != 0 {
		return ErrInvalidLength
	}
	return nil
}

// validateArgs enforces the shared size and settings contract once at the
// public boundary; kernels index without further checks.
func validateArgs(format Format, dst, src []byte, s TransformSettings) error {
	if err := validateInput(format, src); err != nil {
		return err
	}
	if len(dst) < len(src) {
		return ErrOutputTooSmall
	}
	if !s.Decorrelate.Valid() {
		return ErrInvalidVariant
	}
	return nil
}
