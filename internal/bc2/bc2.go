// Package bc2 implements split/combine kernels for BC2 (DXT3) blocks.
//
// A BC2 block is 16 bytes: 8 bytes of explicit 4-bit alpha values, then a
// BC1-style color section (two little-endian RGB565 endpoints at offsets
// 8 and 10, a 4-byte index table at offset 12). The forward transform
// regroups N interleaved blocks into per-field contiguous regions; the
// inverse restores the interleaved layout exactly.
//
// Block layout:       [aa aa aa aa aa aa aa aa c0 c0 c1 c1 ix ix ix ix] x N
// Transformed:        [alpha 8N][color pairs 4N][indices 4N]
// Split endpoints:    [alpha 8N][color0 2N][color1 2N][indices 4N]
//
// Kernels assume len(src) is a multiple of BlockSize and len(dst) >=
// len(src), and that dst does not overlap src. Callers validate once at
// the public boundary.
package bc2

import (
	"encoding/binary"

	"github.com/mrjoshuak/go-dxtsplit/color565"
)

// BlockSize is the size of one BC2 block in bytes.
const BlockSize = 16

// Transform rearranges BC2 blocks into per-field regions using the portable
// scalar path, decorrelating color endpoints with v as it moves them.
func Transform(dst, src []byte, v color565.Variant, split bool) {
	n := len(src) / BlockSize
	transformRange(dst, src, 0, n, n, v, split)
}

// Untransform restores the interleaved block layout from per-field regions.
// It is the exact inverse of Transform with the same arguments.
func Untransform(dst, src []byte, v color565.Variant, split bool) {
	n := len(src) / BlockSize
	untransformRange(dst, src, 0, n, n, v, split)
}

func transformRange(dst, src []byte, from, to, n int, v color565.Variant, split bool) {
	fwd := color565.DecorrelateFunc(v)
	colorOff := n * 8
	idxOff := n * 12

	if split {
		c1Off := colorOff + n*2
		for i := from; i < to; i++ {
			copy(dst[i*8:i*8+8], src[i*16:i*16+8])
			c0 := color565.FromBits(binary.LittleEndian.Uint16(src[i*16+8:]))
			c1 := color565.FromBits(binary.LittleEndian.Uint16(src[i*16+10:]))
			if fwd != nil {
				c0 = fwd(c0)
				c1 = fwd(c1)
			}
			binary.LittleEndian.PutUint16(dst[colorOff+i*2:], c0.Bits())
			binary.LittleEndian.PutUint16(dst[c1Off+i*2:], c1.Bits())
			copy(dst[idxOff+i*4:idxOff+i*4+4], src[i*16+12:i*16+16])
		}
		return
	}

	for i := from; i < to; i++ {
		copy(dst[i*8:i*8+8], src[i*16:i*16+8])
		c0 := color565.FromBits(binary.LittleEndian.Uint16(src[i*16+8:]))
		c1 := color565.FromBits(binary.LittleEndian.Uint16(src[i*16+10:]))
		if fwd != nil {
			c0 = fwd(c0)
			c1 = fwd(c1)
		}
		binary.LittleEndian.PutUint16(dst[colorOff+i*4:], c0.Bits())
		binary.LittleEndian.PutUint16(dst[colorOff+i*4+2:], c1.Bits())
		copy(dst[idxOff+i*4:idxOff+i*4+4], src[i*16+12:i*16+16])
	}
}

func untransformRange(dst, src []byte, from, to, n int, v color565.Variant, split bool) {
	inv := color565.RecorrelateFunc(v)
	colorOff := n * 8
	idxOff := n * 12

	if split {
		c1Off := colorOff + n*2
		for i := from; i < to; i++ {
			copy(dst[i*16:i*16+8], src[i*8:i*8+8])
			c0 := color565.FromBits(binary.LittleEndian.Uint16(src[colorOff+i*2:]))
			c1 := color565.FromBits(binary.LittleEndian.Uint16(src[c1Off+i*2:]))
			if inv != nil {
				c0 = inv(c0)
				c1 = inv(c1)
			}
			binary.LittleEndian.PutUint16(dst[i*16+8:], c0.Bits())
			binary.LittleEndian.PutUint16(dst[i*16+10:], c1.Bits())
			copy(dst[i*16+12:i*16+16], src[idxOff+i*4:idxOff+i*4+4])
		}
		return
	}

	for i := from; i < to; i++ {
		copy(dst[i*16:i*16+8], src[i*8:i*8+8])
		c0 := color565.FromBits(binary.LittleEndian.Uint16(src[colorOff+i*4:]))
		c1 := color565.FromBits(binary.LittleEndian.Uint16(src[colorOff+i*4+2:]))
		if inv != nil {
			c0 = inv(c0)
			c1 = inv(c1)
		}
		binary.LittleEndian.PutUint16(dst[i*16+8:], c0.Bits())
		binary.LittleEndian.PutUint16(dst[i*16+10:], c1.Bits())
		copy(dst[i*16+12:i*16+16], src[idxOff+i*4:idxOff+i*4+4])
	}
}
