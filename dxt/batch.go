package dxt

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// The core transforms are pure functions over caller-owned buffers, so
// parallelism lives at this boundary: one goroutine range per batch of
// independent buffers, never inside a kernel.

// ParallelConfig configures the batch helpers.
type ParallelConfig struct {
	// NumWorkers is the number of worker goroutines. 0 means
	// runtime.GOMAXPROCS(0).
	NumWorkers int

	// GrainSize is the minimum number of items per worker before a batch
	// fans out. Batches with at most GrainSize*workers items run
	// sequentially on the calling goroutine.
	GrainSize int
}

// DefaultParallelConfig returns the default parallel configuration.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		NumWorkers: 0, // all available CPUs
		GrainSize:  1,
	}
}

var (
	parallelConfig   = DefaultParallelConfig()
	parallelConfigMu sync.RWMutex
)

// SetParallelConfig sets the global configuration used by the batch
// helpers.
func SetParallelConfig(config ParallelConfig) {
	parallelConfigMu.Lock()
	defer parallelConfigMu.Unlock()
	parallelConfig = config
}

// GetParallelConfig returns the current global parallel configuration.
func GetParallelConfig() ParallelConfig {
	parallelConfigMu.RLock()
	defer parallelConfigMu.RUnlock()
	return parallelConfig
}

// BatchItem is one independent transform job: a source buffer, its
// destination, and the settings to apply. Dst and Src follow the same
// contract as Transform.
type BatchItem struct {
	Format   Format
	Dst      []byte
	Src      []byte
	Settings TransformSettings
}

// BatchError collects the failures of a batch run, keyed by item index.
// Items absent from Errors completed successfully.
type BatchError struct {
	Errors map[int]error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("dxt: %d batch items failed", len(e.Errors))
}

// Unwrap exposes the per-item errors, ordered by item index, so errors.Is
// and errors.As reach them.
func (e *BatchError) Unwrap() []error {
	idx := make([]int, 0, len(e.Errors))
	for i := range e.Errors {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	errs := make([]error, len(idx))
	for n, i := range idx {
		errs[n] = e.Errors[i]
	}
	return errs
}

// TransformBatch applies Transform to every item, fanning out across
// workers per the global ParallelConfig. Items are independent: a failing
// item leaves its Dst unwritten and does not stop the others. If any item
// fails the result is a *BatchError.
func TransformBatch(items []BatchItem) error {
	return runBatch(items, Transform)
}

// UntransformBatch applies Untransform to every item, with the same
// contract as TransformBatch.
func UntransformBatch(items []BatchItem) error {
	return runBatch(items, Untransform)
}

func runBatch(items []BatchItem, op func(Format, []byte, []byte, TransformSettings) error) error {
	errs := make([]error, len(items))
	parallelFor(len(items), func(i int) {
		it := items[i]
		errs[i] = op(it.Format, it.Dst, it.Src, it.Settings)
	})

	var failed map[int]error
	for i, err := range errs {
		if err != nil {
			if failed == nil {
				failed = make(map[int]error)
			}
			failed[i] = err
		}
	}
	if failed != nil {
		return &BatchError{Errors: failed}
	}
	return nil
}

// parallelFor runs fn(i) for i in [0, n), splitting the range across
// workers when the batch is large enough to justify it.
func parallelFor(n int, fn func(i int)) {
	config := GetParallelConfig()
	workers := config.NumWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if n <= config.GrainSize*workers || workers == 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
