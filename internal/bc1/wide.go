package bc1

import (
	"unsafe"

	"github.com/mrjoshuak/go-dxtsplit/color565"
)

const (
	lo32 = 0x00000000FFFFFFFF
	hi32 = 0xFFFFFFFF00000000
)

// load64 and store64 perform unaligned 64-bit access. The wide kernels are
// only dispatched on architectures where this is well defined; each caller
// guarantees off+8 <= len(b).
func load64(b []byte, off int) uint64 {
	return *(*uint64)(unsafe.Pointer(&b[off]))
}

func store64(b []byte, off int, v uint64) {
	*(*uint64)(unsafe.Pointer(&b[off])) = v
}

// unzipLanes separates even and odd 16-bit lanes of four color pairs.
// Input:  lo = [c0,c1,c2,c3], hi = [c4,c5,c6,c7] (little-endian lanes)
// Output: even = [c0,c2,c4,c6], odd = [c1,c3,c5,c7]
func unzipLanes(lo, hi uint64) (even, odd uint64) {
	e0 := lo & 0xFFFF
	e1 := (lo >> 32) & 0xFFFF
	e2 := hi & 0xFFFF
	e3 := (hi >> 32) & 0xFFFF

	o0 := (lo >> 16) & 0xFFFF
	o1 := lo >> 48
	o2 := (hi >> 16) & 0xFFFF
	o3 := hi >> 48

	even = e0 | e1<<16 | e2<<32 | e3<<48
	odd = o0 | o1<<16 | o2<<32 | o3<<48
	return
}

// zipLanes is the exact inverse of unzipLanes.
// Input:  even = [e0,e1,e2,e3], odd = [o0,o1,o2,o3]
// Output: lo = [e0,o0,e1,o1], hi = [e2,o2,e3,o3]
func zipLanes(even, odd uint64) (lo, hi uint64) {
	lo = even&0xFFFF | (odd&0xFFFF)<<16 |
		((even>>16)&0xFFFF)<<32 | ((odd>>16)&0xFFFF)<<48
	hi = (even>>32)&0xFFFF | ((odd>>32)&0xFFFF)<<16 |
		(even>>48)<<32 | (odd>>48)<<48
	return
}

// transformQuad moves blocks i..i+3 with four 64-bit loads and four 64-bit
// stores. Requires i+4 <= n.
func transformQuad(dst, src []byte, i, n int, fwd4 func(uint64) uint64, split bool) {
	b0 := load64(src, (i+0)*8)
	b1 := load64(src, (i+1)*8)
	b2 := load64(src, (i+2)*8)
	b3 := load64(src, (i+3)*8)

	// Low halves hold the color pairs, high halves the index tables.
	w01 := b0&lo32 | b1<<32
	w23 := b2&lo32 | b3<<32
	if fwd4 != nil {
		w01 = fwd4(w01)
		w23 = fwd4(w23)
	}

	if split {
		c0q, c1q := unzipLanes(w01, w23)
		store64(dst, i*2, c0q)
		store64(dst, n*2+i*2, c1q)
	} else {
		store64(dst, i*4, w01)
		store64(dst, (i+2)*4, w23)
	}

	idxOff := n * 4
	store64(dst, idxOff+i*4, b0>>32|b1&hi32)
	store64(dst, idxOff+(i+2)*4, b2>>32|b3&hi32)
}

// untransformQuad rebuilds blocks i..i+3 from the per-field regions.
// Requires i+4 <= n.
func untransformQuad(dst, src []byte, i, n int, inv4 func(uint64) uint64, split bool) {
	var w01, w23 uint64
	if split {
		c0q := load64(src, i*2)
		c1q := load64(src, n*2+i*2)
		w01, w23 = zipLanes(c0q, c1q)
	} else {
		w01 = load64(src, i*4)
		w23 = load64(src, (i+2)*4)
	}
	if inv4 != nil {
		w01 = inv4(w01)
		w23 = inv4(w23)
	}

	idxOff := n * 4
	idx01 := load64(src, idxOff+i*4)
	idx23 := load64(src, idxOff+(i+2)*4)

	store64(dst, (i+0)*8, w01&lo32|idx01<<32)
	store64(dst, (i+1)*8, w01>>32|idx01&hi32)
	store64(dst, (i+2)*8, w23&lo32|idx23<<32)
	store64(dst, (i+3)*8, w23>>32|idx23&hi32)
}

// TransformWide is Transform with 64-bit field gathering, four blocks per
// iteration. Output is bit-identical to Transform.
func TransformWide(dst, src []byte, v color565.Variant, split bool) {
	n := len(src) / BlockSize
	fwd4 := color565.Decorrelate4Func(v)
	i := 0
	for ; i+4 <= n; i += 4 {
		transformQuad(dst, src, i, n, fwd4, split)
	}
	transformRange(dst, src, i, n, n, v, split)
}

// TransformWide2 unrolls two quads per iteration to give wide machines a
// larger independent-work window. Output is bit-identical to Transform.
func TransformWide2(dst, src []byte, v color565.Variant, split bool) {
	n := len(src) / BlockSize
	fwd4 := color565.Decorrelate4Func(v)
	i := 0
	for ; i+8 <= n; i += 8 {
		transformQuad(dst, src, i, n, fwd4, split)
		transformQuad(dst, src, i+4, n, fwd4, split)
	}
	if i+4 <= n {
		transformQuad(dst, src, i, n, fwd4, split)
		i += 4
	}
	transformRange(dst, src, i, n, n, v, split)
}

// UntransformWide is the inverse of TransformWide, bit-identical to
// Untransform.
func UntransformWide(dst, src []byte, v color565.Variant, split bool) {
	n := len(src) / BlockSize
	inv4 := color565.Recorrelate4Func(v)
	i := 0
	for ; i+4 <= n; i += 4 {
		untransformQuad(dst, src, i, n, inv4, split)
	}
	untransformRange(dst, src, i, n, n, v, split)
}

// UntransformWide2 is the inverse of TransformWide2, bit-identical to
// Untransform.
func UntransformWide2(dst, src []byte, v color565.Variant, split bool) {
	n := len(src) / BlockSize
	inv4 := color565.Recorrelate4Func(v)
	i := 0
	for ; i+8 <= n; i += 8 {
		untransformQuad(dst, src, i, n, inv4, split)
		untransformQuad(dst, src, i+4, n, inv4, split)
	}
	if i+4 <= n {
		untransformQuad(dst, src, i, n, inv4, split)
		i += 4
	}
	untransformRange(dst, src, i, n, n, v, split)
}
