package dxt

import (
	"fmt"

	"github.com/mrjoshuak/go-dxtsplit/color565"
)

// TransformSettings describes the reversible rearrangement applied to a
// block buffer. The settings used by a Transform call must be persisted by
// the caller and supplied unchanged to Untransform; they cannot be
// recovered from the transformed bytes.
type TransformSettings struct {
	// Decorrelate selects the YCoCg-R variant applied to the color
	// endpoints of every block, or VariantNone for the raw endpoints.
	Decorrelate color565.Variant

	// SplitColorEndpoints stores all color0 values contiguously followed
	// by all color1 values instead of interleaved endpoint pairs.
	SplitColorEndpoints bool

	// SplitAlphaEndpoints does the same for the two alpha endpoint bytes
	// of BC3 blocks. BC1 and BC2 blocks carry no alpha endpoints and
	// ignore it.
	SplitAlphaEndpoints bool
}

// Packed settings bit layout, 28 bits total so the value fits alongside a
// 4-bit format tag in a 32-bit container header field:
//
//	bits  0-1   decorrelation variant
//	bit   2     split color endpoints
//	bit   3     split alpha endpoints
//	bits  4-23  reserved, must be zero
//	bits 24-27  codec version, currently 1
const (
	packedVersion      = 1
	packedVersionShift = 24
	packedVersionMask  = 0xF
	packedReservedMask = 0x00FFFFF0
	packedMax          = 1<<28 - 1
)

// Pack encodes s into its 28-bit header representation. The result always
// round-trips through UnpackSettings.
func (s TransformSettings) Pack() uint32 {
	v := uint32(s.Decorrelate) & 0x3
	if s.SplitColorEndpoints {
		v |= 1 << 2
	}
	if s.SplitAlphaEndpoints {
		v |= 1 << 3
	}
	return v | packedVersion<<packedVersionShift
}

// UnpackSettings decodes a value produced by Pack. Values wider than 28
// bits, unknown versions and set reserved bits are each rejected with a
// distinct error rather than silently defaulting.
func UnpackSettings(v uint32) (TransformSettings, error) {
	if v > packedMax {
		return TransformSettings{}, ErrSettingsTooWide
	}
	if ver := v >> packedVersionShift & packedVersionMask; ver != packedVersion {
		return TransformSettings{}, ErrSettingsVersion
	}
	if v&packedReservedMask != 0 {
		return TransformSettings{}, ErrSettingsReserved
	}
	return TransformSettings{
		Decorrelate:         color565.Variant(v & 0x3),
		SplitColorEndpoints: v&(1<<2) != 0,
		SplitAlphaEndpoints: v&(1<<3) != 0,
	}, nil
}

func (s TransformSettings) String() string {
	return fmt.Sprintf("decorrelate=%s splitColor=%t splitAlpha=%t",
		s.Decorrelate, s.SplitColorEndpoints, s.SplitAlphaEndpoints)
}
