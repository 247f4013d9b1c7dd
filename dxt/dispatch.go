package dxt

import (
	"sync"

	"github.com/mrjoshuak/go-dxtsplit/color565"
	"github.com/mrjoshuak/go-dxtsplit/internal/bc1"
	"github.com/mrjoshuak/go-dxtsplit/internal/bc2"
	"github.com/mrjoshuak/go-dxtsplit/internal/bc3"
)

// Level identifies a kernel implementation tier. All tiers produce
// bit-identical output; they differ only in blocks processed per iteration.
type Level uint8

const (
	// LevelScalar is the portable fallback, correct on every architecture.
	LevelScalar Level = iota
	// LevelWide gathers block fields through 64-bit words, four blocks per
	// iteration. Requires an architecture with unaligned 64-bit access.
	LevelWide
	// LevelWide2 runs the wide path unrolled two quads per iteration.
	LevelWide2
)

func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelWide:
		return "wide"
	case LevelWide2:
		return "wide2"
	default:
		return "unknown"
	}
}

// kernelSet is the strategy table for one tier: one transform and one
// inverse per format.
type kernelSet struct {
	level Level

	bc1Transform   func(dst, src []byte, v color565.Variant, split bool)
	bc1Untransform func(dst, src []byte, v color565.Variant, split bool)
	bc2Transform   func(dst, src []byte, v color565.Variant, split bool)
	bc2Untransform func(dst, src []byte, v color565.Variant, split bool)
	bc3Transform   func(dst, src []byte, v color565.Variant, splitColor, splitAlpha bool)
	bc3Untransform func(dst, src []byte, v color565.Variant, splitColor, splitAlpha bool)
}

var kernelSets = [...]kernelSet{
	LevelScalar: {
		level:          LevelScalar,
		bc1Transform:   bc1.Transform,
		bc1Untransform: bc1.Untransform,
		bc2Transform:   bc2.Transform,
		bc2Untransform: bc2.Untransform,
		bc3Transform:   bc3.Transform,
		bc3Untransform: bc3.Untransform,
	},
	LevelWide: {
		level:          LevelWide,
		bc1Transform:   bc1.TransformWide,
		bc1Untransform: bc1.UntransformWide,
		bc2Transform:   bc2.TransformWide,
		bc2Untransform: bc2.UntransformWide,
		bc3Transform:   bc3.TransformWide,
		bc3Untransform: bc3.UntransformWide,
	},
	LevelWide2: {
		level:          LevelWide2,
		bc1Transform:   bc1.TransformWide2,
		bc1Untransform: bc1.UntransformWide2,
		bc2Transform:   bc2.TransformWide2,
		bc2Untransform: bc2.UntransformWide2,
		bc3Transform:   bc3.TransformWide2,
		bc3Untransform: bc3.UntransformWide2,
	},
}

// The detected tier is resolved once per process. Concurrent first callers
// all compute the same value, so the write-once cache is race free.
var (
	kernelOnce   sync.Once
	activeKernel *kernelSet
)

func activeKernels() *kernelSet {
	kernelOnce.Do(func() {
		activeKernel = &kernelSets[detectLevel()]
	})
	return activeKernel
}

// ActiveLevel reports the kernel tier selected for this process.
func ActiveLevel() Level {
	return activeKernels().level
}
