package estimate

import (
	"errors"
	"sync"

	"github.com/klauspost/compress/huff0"
)

// Huff0 estimates with an order-0 Huffman price: every chunk is entropy
// coded with its own table via huff0.Compress1X. It runs several times
// faster than a real compressor, but it is blind to repeated matches, so
// it undervalues transforms whose gain is long-range redundancy rather
// than a skewed byte distribution.
type Huff0 struct {
	pool sync.Pool
}

// NewHuff0 returns an order-0 entropy estimator.
func NewHuff0() *Huff0 {
	e := &Huff0{}
	e.pool.New = func() any {
		return &huff0.Scratch{Reuse: huff0.ReusePolicyNone}
	}
	return e
}

// EstimateSize reports the Huffman-coded size of data, chunk by chunk.
// Chunks the coder cannot shrink cost their raw length; single-symbol
// chunks cost a run-length encoding.
func (e *Huff0) EstimateSize(data []byte) (int, error) {
	s := e.pool.Get().(*huff0.Scratch)

	total := 0
	for len(data) > 0 {
		chunk := data
		if len(chunk) > chunkSize {
			chunk = chunk[:chunkSize]
		}
		data = data[len(chunk):]

		out, _, err := huff0.Compress1X(chunk, s)
		switch {
		case err == nil:
			total += len(out)
		case errors.Is(err, huff0.ErrIncompressible):
			total += len(chunk)
		case errors.Is(err, huff0.ErrUseRLE):
			total += 1 + (len(chunk)+254)/255
		default:
			e.pool.Put(s)
			return 0, err
		}
	}

	e.pool.Put(s)
	return total, nil
}
