package color565

// SWAR forms of the YCoCg-R transforms. Each function transforms four
// 16-bit lanes packed little-endian into a uint64, producing exactly the
// same bits per lane as the scalar transforms in ycocg.go. The wide block
// kernels use these to decorrelate four endpoint colors per step.
//
// Lane isolation: every intermediate value fits inside its 16-bit lane.
// Subtractions are biased by laneBias (32 per lane) before masking so a
// lane can never borrow from its neighbour, and shifted fields are masked
// before reuse so bits moved across a lane boundary are discarded.

const (
	lane5Mask = 0x001F001F001F001F // 5-bit field in each lane
	lane4Mask = 0x000F000F000F000F // floor of a 5-bit field halved
	lane1Mask = 0x0001000100010001 // single bit in each lane
	laneBias  = 0x0020002000200020 // +32 per lane, keeps subtraction positive
)

// Decorrelate4Func returns the forward 4-lane transform for v, or nil for
// VariantNone.
func Decorrelate4Func(v Variant) func(uint64) uint64 {
	switch v {
	case Variant1:
		return decorrelate4v1
	case Variant2:
		return decorrelate4v2
	case Variant3:
		return decorrelate4v3
	default:
		return nil
	}
}

// Recorrelate4Func returns the inverse 4-lane transform for v, or nil for
// VariantNone.
func Recorrelate4Func(v Variant) func(uint64) uint64 {
	switch v {
	case Variant1:
		return recorrelate4v1
	case Variant2:
		return recorrelate4v2
	case Variant3:
		return recorrelate4v3
	default:
		return nil
	}
}

// ycocgForward4 runs the shared lifting core on four lanes, returning the
// y, co, cg fields. Green's top five bits arrive in g.
func ycocgForward4(r, g, b uint64) (y, co, cg uint64) {
	co = ((r | laneBias) - b) & lane5Mask
	t := (b + (co>>1)&lane4Mask) & lane5Mask
	cg = ((g | laneBias) - t) & lane5Mask
	y = (t + (cg>>1)&lane4Mask) & lane5Mask
	return
}

// ycocgInverse4 inverts ycocgForward4 on four lanes.
func ycocgInverse4(y, co, cg uint64) (r, g, b uint64) {
	t := ((y | laneBias) - (cg>>1)&lane4Mask) & lane5Mask
	g = (cg + t) & lane5Mask
	b = ((t | laneBias) - (co>>1)&lane4Mask) & lane5Mask
	r = (b + co) & lane5Mask
	return
}

func decorrelate4v1(x uint64) uint64 {
	r := x >> 11 & lane5Mask
	g := x >> 6 & lane5Mask
	gl := x >> 5 & lane1Mask
	b := x & lane5Mask

	y, co, cg := ycocgForward4(r, g, b)
	return y<<11 | co<<6 | cg<<1 | gl
}

func recorrelate4v1(x uint64) uint64 {
	y := x >> 11 & lane5Mask
	co := x >> 6 & lane5Mask
	cg := x >> 1 & lane5Mask
	gl := x & lane1Mask

	r, g, b := ycocgInverse4(y, co, cg)
	return r<<11 | g<<6 | gl<<5 | b
}

func decorrelate4v2(x uint64) uint64 {
	r := x >> 11 & lane5Mask
	g := x >> 6 & lane5Mask
	gl := x & (lane1Mask << 5)
	b := x & lane5Mask

	y, co, cg := ycocgForward4(r, g, b)
	return y<<11 | co<<6 | gl | cg
}

func recorrelate4v2(x uint64) uint64 {
	y := x >> 11 & lane5Mask
	co := x >> 6 & lane5Mask
	gl := x & (lane1Mask << 5)
	cg := x & lane5Mask

	r, g, b := ycocgInverse4(y, co, cg)
	return r<<11 | g<<6 | gl | b
}

func decorrelate4v3(x uint64) uint64 {
	r := x >> 11 & lane5Mask
	g := x >> 6 & lane5Mask
	gl := x >> 5 & lane1Mask
	b := x & lane5Mask

	y, co, cg := ycocgForward4(r, g, b)
	return gl<<15 | y<<10 | co<<5 | cg
}

func recorrelate4v3(x uint64) uint64 {
	gl := x >> 15 & lane1Mask
	y := x >> 10 & lane5Mask
	co := x >> 5 & lane5Mask
	cg := x & lane5Mask

	r, g, b := ycocgInverse4(y, co, cg)
	return r<<11 | g<<6 | gl<<5 | b
}
