package bc3

import (
	"unsafe"

	"github.com/mrjoshuak/go-dxtsplit/color565"
)

const (
	lo32   = 0x00000000FFFFFFFF
	hi32   = 0xFFFFFFFF00000000
	mask48 = 0x0000FFFFFFFFFFFF
)

// load64, store64 and the 32-bit forms perform unaligned access. The wide
// kernels are only dispatched on architectures where this is well defined;
// each caller guarantees the access stays inside b.
func load64(b []byte, off int) uint64 {
	return *(*uint64)(unsafe.Pointer(&b[off]))
}

func store64(b []byte, off int, v uint64) {
	*(*uint64)(unsafe.Pointer(&b[off])) = v
}

func load32(b []byte, off int) uint32 {
	return *(*uint32)(unsafe.Pointer(&b[off]))
}

func store32(b []byte, off int, v uint32) {
	*(*uint32)(unsafe.Pointer(&b[off])) = v
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
func zipLanes(even, odd uint64) (lo, hi uint64) {
	lo = even&0xFFFF | (odd&0xFFFF)<<16 |
		((even>>16)&0xFFFF)<<32 | ((odd>>16)&0xFFFF)<<48
	hi = (even>>32)&0xFFFF | ((odd>>32)&0xFFFF)<<16 |
		(even>>48)<<32 | (odd>>48)<<48
	return
}

// transformQuad moves blocks i..i+3 with eight 64-bit loads. The a words
// carry the alpha endpoints in their low 16 bits and the 48-bit alpha index
// field above them; the b words carry colors and indices as in BC1.
// Requires i+4 <= n.
func transformQuad(dst, src []byte, i, n int, fwd4 func(uint64) uint64, splitColor, splitAlpha bool) {
	a0 := load64(src, (i+0)*16)
	b0 := load64(src, (i+0)*16+8)
	a1 := load64(src, (i+1)*16)
	b1 := load64(src, (i+1)*16+8)
	a2 := load64(src, (i+2)*16)
	b2 := load64(src, (i+2)*16+8)
	a3 := load64(src, (i+3)*16)
	b3 := load64(src, (i+3)*16+8)

	if splitAlpha {
		e0 := uint32(a0&0xFF) | uint32(a1&0xFF)<<8 | uint32(a2&0xFF)<<16 | uint32(a3&0xFF)<<24
		e1 := uint32((a0>>8)&0xFF) | uint32((a1>>8)&0xFF)<<8 | uint32((a2>>8)&0xFF)<<16 | uint32((a3>>8)&0xFF)<<24
		store32(dst, i, e0)
		store32(dst, n+i, e1)
	} else {
		store64(dst, i*2, a0&0xFFFF|(a1&0xFFFF)<<16|(a2&0xFFFF)<<32|(a3&0xFFFF)<<48)
	}

	// Four 48-bit alpha index fields repack into three 64-bit words.
	aIdxOff := n * 2
	store64(dst, aIdxOff+i*6, a0>>16|(a1>>16)<<48)
	store64(dst, aIdxOff+i*6+8, a1>>32|(a2>>16)<<32)
	store64(dst, aIdxOff+i*6+16, a2>>48|(a3>>16)<<16)

	w01 := b0&lo32 | b1<<32
	w23 := b2&lo32 | b3<<32
	if fwd4 != nil {
		w01 = fwd4(w01)
		w23 = fwd4(w23)
	}

	colorOff := n * 8
	if splitColor {
		c0q, c1q := unzipLanes(w01, w23)
		store64(dst, colorOff+i*2, c0q)
		store64(dst, colorOff+n*2+i*2, c1q)
	} else {
		store64(dst, colorOff+i*4, w01)
		store64(dst, colorOff+(i+2)*4, w23)
	}

	idxOff := n * 12
	store64(dst, idxOff+i*4, b0>>32|b1&hi32)
	store64(dst, idxOff+(i+2)*4, b2>>32|b3&hi32)
}

// untransformQuad rebuilds blocks i..i+3 from the per-field regions.
// Requires i+4 <= n.
func untransformQuad(dst, src []byte, i, n int, inv4 func(uint64) uint64, splitColor, splitAlpha bool) {
	aIdxOff := n * 2
	u0 := load64(src, aIdxOff+i*6)
	u1 := load64(src, aIdxOff+i*6+8)
	u2 := load64(src, aIdxOff+i*6+16)

	aidx0 := u0 & mask48
	aidx1 := u0>>48 | (u1&lo32)<<16
	aidx2 := u1>>32 | (u2&0xFFFF)<<32
	aidx3 := u2 >> 16

	var ae0, ae1, ae2, ae3 uint64
	if splitAlpha {
		e0 := uint64(load32(src, i))
		e1 := uint64(load32(src, n+i))
		ae0 = e0&0xFF | (e1&0xFF)<<8
		ae1 = (e0>>8)&0xFF | ((e1>>8)&0xFF)<<8
		ae2 = (e0>>16)&0xFF | ((e1>>16)&0xFF)<<8
		ae3 = e0>>24 | (e1>>24)<<8
	} else {
		aeq := load64(src, i*2)
		ae0 = aeq & 0xFFFF
		ae1 = (aeq >> 16) & 0xFFFF
		ae2 = (aeq >> 32) & 0xFFFF
		ae3 = aeq >> 48
	}

	colorOff := n * 8
	var w01, w23 uint64
	if splitColor {
		c0q := load64(src, colorOff+i*2)
		c1q := load64(src, colorOff+n*2+i*2)
		w01, w23 = zipLanes(c0q, c1q)
	} else {
		w01 = load64(src, colorOff+i*4)
		w23 = load64(src, colorOff+(i+2)*4)
	}
	if inv4 != nil {
		w01 = inv4(w01)
		w23 = inv4(w23)
	}

	idxOff := n * 12
	idx01 := load64(src, idxOff+i*4)
	idx23 := load64(src, idxOff+(i+2)*4)

	store64(dst, (i+0)*16, ae0|aidx0<<16)
	store64(dst, (i+0)*16+8, w01&lo32|idx01<<32)
	store64(dst, (i+1)*16, ae1|aidx1<<16)
	store64(dst, (i+1)*16+8, w01>>32|idx01&hi32)
	store64(dst, (i+2)*16, ae2|aidx2<<16)
	store64(dst, (i+2)*16+8, w23&lo32|idx23<<32)
	store64(dst, (i+3)*16, ae3|aidx3<<16)
	store64(dst, (i+3)*16+8, w23>>32|idx23&hi32)
}

// TransformWide is Transform with 64-bit field gathering, four blocks per
// iteration. Output is bit-identical to Transform.
func TransformWide(dst, src []byte, v color565.Variant, splitColor, splitAlpha bool) {
	n := len(src) / BlockSize
	fwd4 := color565.Decorrelate4Func(v)
	i := 0
	for ; i+4 <= n; i += 4 {
		transformQuad(dst, src, i, n, fwd4, splitColor, splitAlpha)
	}
	transformRange(dst, src, i, n, n, v, splitColor, splitAlpha)
}

// TransformWide2 unrolls two quads per iteration to give wide machines a
// larger independent-work window. Output is bit-identical to Transform.
func TransformWide2(dst, src []byte, v color565.Variant, splitColor, splitAlpha bool) {
	n := len(src) / BlockSize
	fwd4 := color565.Decorrelate4Func(v)
	i := 0
	for ; i+8 <= n; i += 8 {
		transformQuad(dst, src, i, n, fwd4, splitColor, splitAlpha)
		transformQuad(dst, src, i+4, n, fwd4, splitColor, splitAlpha)
	}
	if i+4 <= n {
		transformQuad(dst, src, i, n, fwd4, splitColor, splitAlpha)
		i += 4
	}
	transformRange(dst, src, i, n, n, v, splitColor, splitAlpha)
}

// UntransformWide is the inverse of TransformWide, bit-identical to
// Untransform.
func UntransformWide(dst, src []byte, v color565.Variant, splitColor, splitAlpha bool) {
	n := len(src) / BlockSize
	inv4 := color565.Recorrelate4Func(v)
	i := 0
	for ; i+4 <= n; i += 4 {
		untransformQuad(dst, src, i, n, inv4, splitColor, splitAlpha)
	}
	untransformRange(dst, src, i, n, n, v, splitColor, splitAlpha)
}

// UntransformWide2 is the inverse of TransformWide2, bit-identical to
// Untransform.
func UntransformWide2(dst, src []byte, v color565.Variant, splitColor, splitAlpha bool) {
	n := len(src) / BlockSize
	inv4 := color565.Recorrelate4Func(v)
	i := 0
	for ; i+8 <= n; i += 8 {
		untransformQuad(dst, src, i, n, inv4, splitColor, splitAlpha)
		untransformQuad(dst, src, i+4, n, inv4, splitColor, splitAlpha)
	}
	if i+4 <= n {
		untransformQuad(dst, src, i, n, inv4, splitColor, splitAlpha)
		i += 4
	}
	untransformRange(dst, src, i, n, n, v, splitColor, splitAlpha)
}
