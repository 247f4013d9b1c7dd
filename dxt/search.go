package dxt

import (
	"github.com/mrjoshuak/go-dxtsplit/color565"
)

// SizeEstimator predicts the compressed size of a byte buffer, in bytes.
// The automatic search ranks candidate transforms by these predictions, so
// implementations must be deterministic for search results to be
// reproducible. The search never retains the passed slice.
//
// The estimate package provides implementations backed by real encoders.
type SizeEstimator interface {
	EstimateSize(data []byte) (int, error)
}

// SizeEstimatorFunc adapts a plain function to the SizeEstimator
// interface.
type SizeEstimatorFunc func(data []byte) (int, error)

// EstimateSize calls f.
func (f SizeEstimatorFunc) EstimateSize(data []byte) (int, error) {
	return f(data)
}

// Candidate grids in fixed order: decorrelation outermost, endpoint split
// innermost. The first entry doubles as the result for empty input.
// SplitAlphaEndpoints stays off in both grids; it is a manual-path knob.
var (
	reducedCandidates = []TransformSettings{
		{Decorrelate: color565.VariantNone},
		{Decorrelate: color565.VariantNone, SplitColorEndpoints: true},
		{Decorrelate: color565.Variant1},
		{Decorrelate: color565.Variant1, SplitColorEndpoints: true},
	}
	exhaustiveCandidates = []TransformSettings{
		{Decorrelate: color565.VariantNone},
		{Decorrelate: color565.VariantNone, SplitColorEndpoints: true},
		{Decorrelate: color565.Variant1},
		{Decorrelate: color565.Variant1, SplitColorEndpoints: true},
		{Decorrelate: color565.Variant2},
		{Decorrelate: color565.Variant2, SplitColorEndpoints: true},
		{Decorrelate: color565.Variant3},
		{Decorrelate: color565.Variant3, SplitColorEndpoints: true},
	}
)

// DetermineOptimalTransform transforms data with every candidate setting,
// scores each output with est, and returns the settings with the smallest
// estimate together with the already-transformed output for exactly those
// settings. Ties keep the earliest candidate, so results are deterministic
// for a deterministic estimator.
//
// The reduced grid tests {VariantNone, Variant1} x split; exhaustive adds
// Variant2 and Variant3, which rarely buys more than a few tenths of a
// percent at double the cost.
//
// Any estimator failure aborts the search with a *SizeEstimationError
// wrapping the estimator's error. If the scratch byte budget would be
// exceeded the search fails with ErrAllocationFailed before any candidate
// is scored.
func DetermineOptimalTransform(format Format, data []byte, est SizeEstimator, exhaustive bool) (TransformSettings, []byte, error) {
	if err := validateInput(format, data); err != nil {
		return TransformSettings{}, nil, err
	}

	candidates := reducedCandidates
	if exhaustive {
		candidates = exhaustiveCandidates
	}
	if len(data) == 0 {
		return candidates[0], []byte{}, nil
	}

	// Two scratch buffers alternate roles: one keeps the best output seen
	// so far, the other receives the next candidate. The winner is copied
	// out, never recomputed.
	cur, err := getScratch(len(data))
	if err != nil {
		return TransformSettings{}, nil, err
	}
	best, err := getScratch(len(data))
	if err != nil {
		putScratch(cur)
		return TransformSettings{}, nil, err
	}

	k := activeKernels()
	bestSettings := candidates[0]
	bestSize := -1
	for _, s := range candidates {
		transformKernel(k, format, cur, data, s)
		size, err := est.EstimateSize(cur)
		if err != nil {
			putScratch(cur)
			putScratch(best)
			return TransformSettings{}, nil, &SizeEstimationError{Settings: s, Err: err}
		}
		if bestSize < 0 || size < bestSize {
			bestSize = size
			bestSettings = s
			cur, best = best, cur
		}
	}

	out := make([]byte, len(data))
	copy(out, best)
	putScratch(cur)
	putScratch(best)
	return bestSettings, out, nil
}
