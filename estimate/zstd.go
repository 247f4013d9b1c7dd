package estimate

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Zstd estimates by running a real zstd encode and reporting the exact
// compressed size. It is the most accurate estimator and the most
// expensive; search results scored with it match what a zstd storage
// pipeline will see.
type Zstd struct {
	pool sync.Pool
}

type zstdScratch struct {
	enc *zstd.Encoder
	buf []byte
}

// NewZstd returns an estimator encoding at zstd.SpeedFastest. Candidate
// ranking needs relative sizes, which the fastest level already resolves.
func NewZstd() *Zstd {
	return NewZstdLevel(zstd.SpeedFastest)
}

// NewZstdLevel returns an estimator encoding at the given level, for
// callers that want the estimate to match a specific pipeline setting.
// The level must be a valid zstd.EncoderLevel.
func NewZstdLevel(level zstd.EncoderLevel) *Zstd {
	e := &Zstd{}
	e.pool.New = func() any {
		enc, err := zstd.NewWriter(
			nil,
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderLevel(level),
			zstd.WithLowerEncoderMem(true),
		)
		if err != nil {
			panic(err)
		}
		return &zstdScratch{enc: enc}
	}
	return e
}

// EstimateSize reports the zstd-compressed size of data. Empty input
// reports zero.
func (e *Zstd) EstimateSize(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	s := e.pool.Get().(*zstdScratch)
	s.buf = s.enc.EncodeAll(data, s.buf[:0])
	n := len(s.buf)
	e.pool.Put(s)
	return n, nil
}
