package color565

// Variant selects one of the reversible YCoCg-R endpoint decorrelation
// layouts, or none.
//
// All three variants share the same lifting core: the 5-bit red and blue
// channels and the top five bits of green are remapped into a luma value Y
// and two chroma values Co and Cg using wrapping 5-bit arithmetic, while
// the sixth green bit passes through untouched. The variants differ only
// in where that extra green bit lands in the packed result:
//
//	Variant1: [Y:5][Co:5][Cg:5][g:1]  extra bit below Cg
//	Variant2: [Y:5][Co:5][g:1][Cg:5]  extra bit keeps its original position
//	Variant3: [g:1][Y:5][Co:5][Cg:5]  extra bit above Y
//
// Because every step is wrapping arithmetic on stored fields, each variant
// is a bijection on uint16: recorrelate inverts decorrelate bit-for-bit for
// every input, valid color or not.
type Variant uint8

const (
	// VariantNone applies no decorrelation. Data passes through unchanged.
	VariantNone Variant = 0
	// Variant1 packs the extra green bit below the Cg field.
	Variant1 Variant = 1
	// Variant2 packs the extra green bit between the Co and Cg fields.
	Variant2 Variant = 2
	// Variant3 packs the extra green bit above the Y field.
	Variant3 Variant = 3
)

// String returns a string representation of the variant.
func (v Variant) String() string {
	switch v {
	case VariantNone:
		return "none"
	case Variant1:
		return "ycocg1"
	case Variant2:
		return "ycocg2"
	case Variant3:
		return "ycocg3"
	default:
		return "unknown"
	}
}

// Valid reports whether v is a defined variant.
func (v Variant) Valid() bool {
	return v <= Variant3
}

// Decorrelate applies the forward YCoCg-R transform for the given variant.
// VariantNone returns c unchanged without touching its bits.
func Decorrelate(v Variant, c Color) Color {
	switch v {
	case Variant1:
		return decorrelate1(c)
	case Variant2:
		return decorrelate2(c)
	case Variant3:
		return decorrelate3(c)
	default:
		return c
	}
}

// Recorrelate applies the inverse YCoCg-R transform for the given variant.
// It is the exact inverse of Decorrelate with the same variant.
func Recorrelate(v Variant, c Color) Color {
	switch v {
	case Variant1:
		return recorrelate1(c)
	case Variant2:
		return recorrelate2(c)
	case Variant3:
		return recorrelate3(c)
	default:
		return c
	}
}

// DecorrelatePair transforms both endpoint colors of a block.
func DecorrelatePair(v Variant, c0, c1 Color) (Color, Color) {
	return Decorrelate(v, c0), Decorrelate(v, c1)
}

// RecorrelatePair restores both endpoint colors of a block.
func RecorrelatePair(v Variant, c0, c1 Color) (Color, Color) {
	return Recorrelate(v, c0), Recorrelate(v, c1)
}

// DecorrelateFunc returns the forward transform for v, or nil for
// VariantNone. Callers hoist the lookup out of per-block loops.
func DecorrelateFunc(v Variant) func(Color) Color {
	switch v {
	case Variant1:
		return decorrelate1
	case Variant2:
		return decorrelate2
	case Variant3:
		return decorrelate3
	default:
		return nil
	}
}

// RecorrelateFunc returns the inverse transform for v, or nil for
// VariantNone.
func RecorrelateFunc(v Variant) func(Color) Color {
	switch v {
	case Variant1:
		return recorrelate1
	case Variant2:
		return recorrelate2
	case Variant3:
		return recorrelate3
	default:
		return nil
	}
}

// decorrelate1 applies the YCoCg-R lifting steps and packs the result as
// [Y:5][Co:5][Cg:5][g:1]. All arithmetic wraps modulo 32.
func decorrelate1(c Color) Color {
	r := uint16(c) >> 11 & 0x1F
	g := uint16(c) >> 6 & 0x1F
	gl := uint16(c) >> 5 & 0x01
	b := uint16(c) & 0x1F

	co := (r - b) & 0x1F
	t := (b + co>>1) & 0x1F
	cg := (g - t) & 0x1F
	y := (t + cg>>1) & 0x1F

	return Color(y<<11 | co<<6 | cg<<1 | gl)
}

// recorrelate1 is the exact inverse of decorrelate1.
func recorrelate1(c Color) Color {
	y := uint16(c) >> 11 & 0x1F
	co := uint16(c) >> 6 & 0x1F
	cg := uint16(c) >> 1 & 0x1F
	gl := uint16(c) & 0x01

	t := (y - cg>>1) & 0x1F
	g := (cg + t) & 0x1F
	b := (t - co>>1) & 0x1F
	r := (b + co) & 0x1F

	return Color(r<<11 | g<<6 | gl<<5 | b)
}

// decorrelate2 packs the result as [Y:5][Co:5][g:1][Cg:5], leaving the
// extra green bit at bit 5 where RGB565 stores it.
func decorrelate2(c Color) Color {
	r := uint16(c) >> 11 & 0x1F
	g := uint16(c) >> 6 & 0x1F
	gl := uint16(c) & 0x20
	b := uint16(c) & 0x1F

	co := (r - b) & 0x1F
	t := (b + co>>1) & 0x1F
	cg := (g - t) & 0x1F
	y := (t + cg>>1) & 0x1F

	return Color(y<<11 | co<<6 | gl | cg)
}

// recorrelate2 is the exact inverse of decorrelate2.
func recorrelate2(c Color) Color {
	y := uint16(c) >> 11 & 0x1F
	co := uint16(c) >> 6 & 0x1F
	gl := uint16(c) & 0x20
	cg := uint16(c) & 0x1F

	t := (y - cg>>1) & 0x1F
	g := (cg + t) & 0x1F
	b := (t - co>>1) & 0x1F
	r := (b + co) & 0x1F

	return Color(r<<11 | g<<6 | gl | b)
}

// decorrelate3 packs the result as [g:1][Y:5][Co:5][Cg:5].
func decorrelate3(c Color) Color {
	r := uint16(c) >> 11 & 0x1F
	g := uint16(c) >> 6 & 0x1F
	gl := uint16(c) >> 5 & 0x01
	b := uint16(c) & 0x1F

	co := (r - b) & 0x1F
	t := (b + co>>1) & 0x1F
	cg := (g - t) & 0x1F
	y := (t + cg>>1) & 0x1F

	return Color(gl<<15 | y<<10 | co<<5 | cg)
}

// recorrelate3 is the exact inverse of decorrelate3.
func recorrelate3(c Color) Color {
	gl := uint16(c) >> 15 & 0x01
	y := uint16(c) >> 10 & 0x1F
	co := uint16(c) >> 5 & 0x1F
	cg := uint16(c) & 0x1F

	t := (y - cg>>1) & 0x1F
	g := (cg + t) & 0x1F
	b := (t - co>>1) & 0x1F
	r := (b + co) & 0x1F

	return Color(r<<11 | g<<6 | gl<<5 | b)
}
