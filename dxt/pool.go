package dxt

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Scratch buffers back the automatic transform search. Size-classed pools
// keep repeated searches allocation-flat; an optional byte budget bounds
// how much scratch memory searches may hold at once.

// scratchSizes are the discrete pooled buffer sizes. The ladder spans
// common texture payloads; a 4096x4096 BC3 surface is 16 MiB.
var scratchSizes = []int{
	64 << 10,
	256 << 10,
	1 << 20,
	4 << 20,
	16 << 20,
}

type scratchPool struct {
	pools []*sync.Pool
	used  int64 // atomic: bytes currently handed out
	limit int64 // atomic: byte budget, 0 = unlimited
}

var searchScratch = newScratchPool()

func newScratchPool() *scratchPool {
	p := &scratchPool{pools: make([]*sync.Pool, len(scratchSizes))}
	for i, size := range scratchSizes {
		size := size // capture for closure
		p.pools[i] = &sync.Pool{
			New: func() interface{} {
				return make([]byte, size)
			},
		}
	}
	return p
}

// classIndex returns the pool index for a given size, or -1 if the size
// exceeds every class and must be allocated directly.
func classIndex(size int) int {
	for i, s := range scratchSizes {
		if size <= s {
			return i
		}
	}
	return -1
}

// get returns a buffer of exactly the requested length (possibly larger
// capacity). It fails with ErrAllocationFailed when the byte budget would
// be exceeded.
func (p *scratchPool) get(size int) ([]byte, error) {
	class := size
	idx := classIndex(size)
	if idx >= 0 {
		class = scratchSizes[idx]
	}

	if limit := atomic.LoadInt64(&p.limit); limit > 0 {
		if atomic.AddInt64(&p.used, int64(class)) > limit {
			atomic.AddInt64(&p.used, -int64(class))
			return nil, fmt.Errorf("%w: %d bytes requested, limit %d", ErrAllocationFailed, class, limit)
		}
	} else {
		atomic.AddInt64(&p.used, int64(class))
	}

	if idx < 0 {
		return make([]byte, size), nil
	}
	buf := p.pools[idx].Get().([]byte)
	return buf[:size], nil
}

// put returns a buffer obtained from get. Oversized buffers fall to the
// garbage collector; class-sized buffers go back to their pool.
func (p *scratchPool) put(buf []byte) {
	if buf == nil {
		return
	}
	c := cap(buf)
	atomic.AddInt64(&p.used, -int64(c))
	for i, s := range scratchSizes {
		if c == s {
			p.pools[i].Put(buf[:c])
			return
		}
	}
}

func getScratch(size int) ([]byte, error) {
	return searchScratch.get(size)
}

func putScratch(buf []byte) {
	searchScratch.put(buf)
}

// SetScratchMemoryLimit bounds the bytes the automatic search may hold in
// scratch buffers at once; DetermineOptimalTransform fails with
// ErrAllocationFailed instead of exceeding it. Zero (the default) removes
// the bound. It returns the previous limit.
func SetScratchMemoryLimit(limit int64) int64 {
	return atomic.SwapInt64(&searchScratch.limit, limit)
}

// ScratchMemoryLimit reports the current scratch byte budget (0 =
// unlimited).
func ScratchMemoryLimit() int64 {
	return atomic.LoadInt64(&searchScratch.limit)
}

// ScratchMemoryUsed reports the scratch bytes currently handed out.
func ScratchMemoryUsed() int64 {
	return atomic.LoadInt64(&searchScratch.used)
}
