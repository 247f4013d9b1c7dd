package color565

import (
	"encoding/binary"
)

// Slice helpers over streams of little-endian RGB565 values. Four values
// are processed per step through the SWAR transforms; the remainder goes
// through the scalar transforms. dst may alias src for in-place use.

// DecorrelateSlice applies the forward transform for v to a stream of
// little-endian RGB565 values. A trailing byte that does not complete a
// value is copied through unchanged.
func DecorrelateSlice(v Variant, dst, src []byte) {
	if len(dst) < len(src) {
		panic("color565: destination slice too small")
	}
	transformSlice(dst, src, Decorrelate4Func(v), DecorrelateFunc(v))
}

// RecorrelateSlice applies the inverse transform for v to a stream of
// little-endian RGB565 values. It is the exact inverse of DecorrelateSlice
// with the same variant.
func RecorrelateSlice(v Variant, dst, src []byte) {
	if len(dst) < len(src) {
		panic("color565: destination slice too small")
	}
	transformSlice(dst, src, Recorrelate4Func(v), RecorrelateFunc(v))
}

func transformSlice(dst, src []byte, fn4 func(uint64) uint64, fn func(Color) Color) {
	if fn4 == nil {
		copy(dst, src)
		return
	}

	n := len(src) / 2
	i := 0
	for ; i+4 <= n; i += 4 {
		x := binary.LittleEndian.Uint64(src[i*2:])
		binary.LittleEndian.PutUint64(dst[i*2:], fn4(x))
	}
	for ; i < n; i++ {
		c := Color(binary.LittleEndian.Uint16(src[i*2:]))
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(fn(c)))
	}
	if len(src)&1 == 1 {
		dst[len(src)-1] = src[len(src)-1]
	}
}
