// Package bc3 implements split/combine kernels for BC3 (DXT5) blocks.
//
// A BC3 block is 16 bytes: two 1-byte alpha endpoints at offsets 0 and 1,
// 6 bytes of packed 3-bit alpha indices at offset 2, then a BC1-style
// color section (two little-endian RGB565 endpoints at offsets 8 and 10,
// a 4-byte index table at offset 12). The forward transform regroups N
// interleaved blocks into per-field contiguous regions; the inverse
// restores the interleaved layout exactly.
//
// Block layout:    [a0 a1 ai ai ai ai ai ai c0 c0 c1 c1 ix ix ix ix] x N
// Transformed:     [alpha endpoints 2N][alpha indices 6N][color pairs 4N][indices 4N]
// Split colors:    the color pair region becomes [color0 2N][color1 2N]
// Split alpha:     the endpoint region becomes [alpha0 N][alpha1 N]
//
// Kernels assume len(src) is a multiple of BlockSize and len(dst) >=
// len(src), and that dst does not overlap src. Callers validate once at
// the public boundary.
package bc3

import (
	"encoding/binary"

	"github.com/mrjoshuak/go-dxtsplit/color565"
)

// BlockSize is the size of one BC3 block in bytes.
const BlockSize = 16

// Transform rearranges BC3 blocks into per-field regions using the portable
// scalar path, decorrelating color endpoints with v as it moves them.
func Transform(dst, src []byte, v color565.Variant, splitColor, splitAlpha bool) {
	n := len(src) / BlockSize
	transformRange(dst, src, 0, n, n, v, splitColor, splitAlpha)
}

// Untransform restores the interleaved block layout from per-field regions.
// It is the exact inverse of Transform with the same arguments.
func Untransform(dst, src []byte, v color565.Variant, splitColor, splitAlpha bool) {
	n := len(src) / BlockSize
	untransformRange(dst, src, 0, n, n, v, splitColor, splitAlpha)
}

func transformRange(dst, src []byte, from, to, n int, v color565.Variant, splitColor, splitAlpha bool) {
	fwd := color565.DecorrelateFunc(v)
	aIdxOff := n * 2
	colorOff := n * 8
	c1Off := colorOff + n*2
	idxOff := n * 12

	for i := from; i < to; i++ {
		if splitAlpha {
			dst[i] = src[i*16]
			dst[n+i] = src[i*16+1]
		} else {
			dst[i*2] = src[i*16]
			dst[i*2+1] = src[i*16+1]
		}
		copy(dst[aIdxOff+i*6:aIdxOff+i*6+6], src[i*16+2:i*16+8])

		c0 := color565.FromBits(binary.LittleEndian.Uint16(src[i*16+8:]))
		c1 := color565.FromBits(binary.LittleEndian.Uint16(src[i*16+10:]))
		if fwd != nil {
			c0 = fwd(c0)
			c1 = fwd(c1)
		}
		if splitColor {
			binary.LittleEndian.PutUint16(dst[colorOff+i*2:], c0.Bits())
			binary.LittleEndian.PutUint16(dst[c1Off+i*2:], c1.Bits())
		} else {
			binary.LittleEndian.PutUint16(dst[colorOff+i*4:], c0.Bits())
			binary.LittleEndian.PutUint16(dst[colorOff+i*4+2:], c1.Bits())
		}
		copy(dst[idxOff+i*4:idxOff+i*4+4], src[i*16+12:i*16+16])
	}
}

func untransformRange(dst, src []byte, from, to, n int, v color565.Variant, splitColor, splitAlpha bool) {
	inv := color565.RecorrelateFunc(v)
	aIdxOff := n * 2
	colorOff := n * 8
	c1Off := colorOff + n*2
	idxOff := n * 12

	for i := from; i < to; i++ {
		if splitAlpha {
			dst[i*16] = src[i]
			dst[i*16+1] = src[n+i]
		} else {
			dst[i*16] = src[i*2]
			dst[i*16+1] = src[i*2+1]
		}
		copy(dst[i*16+2:i*16+8], src[aIdxOff+i*6:aIdxOff+i*6+6])

		var c0, c1 color565.Color
		if splitColor {
			c0 = color565.FromBits(binary.LittleEndian.Uint16(src[colorOff+i*2:]))
			c1 = color565.FromBits(binary.LittleEndian.Uint16(src[c1Off+i*2:]))
		} else {
			c0 = color565.FromBits(binary.LittleEndian.Uint16(src[colorOff+i*4:]))
			c1 = color565.FromBits(binary.LittleEndian.Uint16(src[colorOff+i*4+2:]))
		}
		if inv != nil {
			c0 = inv(c0)
			c1 = inv(c1)
		}
		binary.LittleEndian.PutUint16(dst[i*16+8:], c0.Bits())
		binary.LittleEndian.PutUint16(dst[i*16+10:], c1.Bits())
		copy(dst[i*16+12:i*16+16], src[idxOff+i*4:idxOff+i*4+4])
	}
}
