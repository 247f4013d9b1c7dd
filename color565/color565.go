// Package color565 provides 16-bit RGB565 packed colors and the reversible
// YCoCg-R decorrelation transforms used on block-compressed texture endpoints.
//
// RGB565 colors use 16 bits with the following layout:
//   - 5 bits red (bits 11-15)
//   - 6 bits green (bits 5-10)
//   - 5 bits blue (bits 0-4)
//
// BC1, BC2 and BC3 blocks each carry two RGB565 endpoint colors. Remapping
// those endpoints into a luma/chroma basis before entropy coding groups
// statistically similar bits together, which improves compression. Every
// transform in this package is a pure bit permutation with modular
// arithmetic: decorrelate and recorrelate are exact inverses over the full
// 16-bit domain, including bit patterns that are not rounded RGB565 colors.
package color565

// Color represents a packed RGB565 color value.
// The underlying storage is a uint16.
type Color uint16

// Bit layout constants for the RGB565 format.
const (
	redShift   = 11
	greenShift = 5
	blueShift  = 0

	redMask   = 0xF800
	greenMask = 0x07E0
	blueMask  = 0x001F
)

// FromBits creates a Color from its raw 16-bit representation.
func FromBits(bits uint16) Color {
	return Color(bits)
}

// Bits returns the raw 16-bit representation.
func (c Color) Bits() uint16 {
	return uint16(c)
}

// FromRGB quantizes an 8-bit-per-channel color to RGB565 by truncation.
func FromRGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<redShift | uint16(g>>2)<<greenShift | uint16(b>>3))
}

// RGB expands the color to 8 bits per channel, replicating the high bits
// into the low bits the way GPU samplers decode RGB565.
func (c Color) RGB() (r, g, b uint8) {
	r5 := uint8(c >> redShift & 0x1F)
	g6 := uint8(c >> greenShift & 0x3F)
	b5 := uint8(c & 0x1F)
	r = r5<<3 | r5>>2
	g = g6<<2 | g6>>4
	b = b5<<3 | b5>>2
	return
}

// Red returns the raw 5-bit red component.
func (c Color) Red() uint8 {
	return uint8(c >> redShift & 0x1F)
}

// Green returns the raw 6-bit green component.
func (c Color) Green() uint8 {
	return uint8(c >> greenShift & 0x3F)
}

// Blue returns the raw 5-bit blue component.
func (c Color) Blue() uint8 {
	return uint8(c & 0x1F)
}
