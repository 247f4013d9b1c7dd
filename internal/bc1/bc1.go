// Package bc1 implements split/combine kernels for BC1 (DXT1) blocks.
//
// A BC1 block is 8 bytes: two little-endian RGB565 color endpoints at
// offsets 0 and 2, then a 4-byte table of 2-bit pixel indices at offset 4.
// The forward transform regroups N interleaved blocks into per-field
// contiguous regions; the inverse restores the interleaved layout exactly.
//
// Block layout:       [c0 c0 c1 c1 ix ix ix ix] x N
// Transformed:        [color pairs 4N][indices 4N]
// Split endpoints:    [color0 2N][color1 2N][indices 4N]
//
// Kernels assume len(src) is a multiple of BlockSize and len(dst) >=
// len(src), and that dst does not overlap src. Callers validate once at
// the public boundary.
package bc1

import (
	"encoding/binary"

	"github.com/mrjoshuak/go-dxtsplit/color565"
)

// BlockSize is the size of one BC1 block in bytes.
const BlockSize = 8

// Transform rearranges BC1 blocks into per-field regions using the portable
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

// transformRange moves blocks [from, to) of src into dst. Region offsets
// depend on the total block count n, so wide kernels can delegate their
// tails here without shifting the layout.
func transformRange(dst, src []byte, from, to, n int, v color565.Variant, split bool) {
	fwd := color565.DecorrelateFunc(v)
	idxOff := n * 4

	if split {
		c1Off := n * 2
		for i := from; i < to; i++ {
			c0 := color565.FromBits(binary.LittleEndian.Uint16(src[i*8:]))
			c1 := color565.FromBits(binary.LittleEndian.Uint16(src[i*8+2:]))
			if fwd != nil {
				c0 = fwd(c0)
				c1 = fwd(c1)
			}
			binary.LittleEndian.PutUint16(dst[i*2:], c0.Bits())
			binary.LittleEndian.PutUint16(dst[c1Off+i*2:], c1.Bits())
			copy(dst[idxOff+i*4:idxOff+i*4+4], src[i*8+4:i*8+8])
		}
		return
	}

	for i := from; i < to; i++ {
		c0 := color565.FromBits(binary.LittleEndian.Uint16(src[i*8:]))
		c1 := color565.FromBits(binary.LittleEndian.Uint16(src[i*8+2:]))
		if fwd != nil {
			c0 = fwd(c0)
			c1 = fwd(c1)
		}
		binary.LittleEndian.PutUint16(dst[i*4:], c0.Bits())
		binary.LittleEndian.PutUint16(dst[i*4+2:], c1.Bits())
		copy(dst[idxOff+i*4:idxOff+i*4+4], src[i*8+4:i*8+8])
	}
}

// untransformRange is the inverse of transformRange over the same block
// range and total count.
func untransformRange(dst, src []byte, from, to, n int, v color565.Variant, split bool) {
	inv := color565.RecorrelateFunc(v)
	idxOff := n * 4

	if split {
		c1Off := n * 2
		for i := from; i < to; i++ {
			c0 := color565.FromBits(binary.LittleEndian.Uint16(src[i*2:]))
			c1 := color565.FromBits(binary.LittleEndian.Uint16(src[c1Off+i*2:]))
			if inv != nil {
				c0 = inv(c0)
				c1 = inv(c1)
			}
			binary.LittleEndian.PutUint16(dst[i*8:], c0.Bits())
			binary.LittleEndian.PutUint16(dst[i*8+2:], c1.Bits())
			copy(dst[i*8+4:i*8+8], src[idxOff+i*4:idxOff+i*4+4])
		}
		return
	}

	for i := from; i < to; i++ {
		c0 := color565.FromBits(binary.LittleEndian.Uint16(src[i*4:]))
		c1 := color565.FromBits(binary.LittleEndian.Uint16(src[i*4+2:]))
		if inv != nil {
			c0 = inv(c0)
			c1 = inv(c1)
		}
		binary.LittleEndian.PutUint16(dst[i*8:], c0.Bits())
		binary.LittleEndian.PutUint16(dst[i*8+2:], c1.Bits())
		copy(dst[i*8+4:i*8+8], src[idxOff+i*4:idxOff+i*4+4])
	}
}
