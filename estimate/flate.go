package estimate

import (
	"sync"

	"github.com/klauspost/compress/flate"
)

// Flate estimates with Huffman-only deflate: real deflate block framing
// and Huffman coding with match finding disabled. The compressed bytes
// are counted and discarded, never buffered.
type Flate struct {
	pool sync.Pool
}

type flateScratch struct {
	w     *flate.Writer
	count countingWriter
}

// countingWriter discards writes and keeps their total length.
type countingWriter struct {
	n int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}

// NewFlate returns a Huffman-only deflate estimator.
func NewFlate() *Flate {
	e := &Flate{}
	e.pool.New = func() any {
		s := &flateScratch{}
		w, err := flate.NewWriter(&s.count, flate.HuffmanOnly)
		if err != nil {
			panic(err)
		}
		s.w = w
		return s
	}
	return e
}

// EstimateSize reports the Huffman-only deflate size of data. Empty input
// reports zero.
func (e *Flate) EstimateSize(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	s := e.pool.Get().(*flateScratch)
	s.count.n = 0
	s.w.Reset(&s.count)

	if _, err := s.w.Write(data); err != nil {
		e.pool.Put(s)
		return 0, err
	}
	if err := s.w.Close(); err != nil {
		e.pool.Put(s)
		return 0, err
	}

	n := s.count.n
	e.pool.Put(s)
	return n, nil
}
