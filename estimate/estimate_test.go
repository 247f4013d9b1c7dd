package estimate

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/mrjoshuak/go-dxtsplit/dxt"
)

type namedEstimator struct {
	name string
	est  dxt.SizeEstimator
}

func estimators() []namedEstimator {
	return []namedEstimator{
		{"zstd", NewZstd()},
		{"huff0", NewHuff0()},
		{"flate", NewFlate()},
	}
}

// structured produces data with a skewed, patterned byte distribution the
// way transformed texture regions look.
func structured(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 16)
	}
	return data
}

func random(size int) []byte {
	r := rand.New(rand.NewSource(42))
	data := make([]byte, size)
	r.Read(data)
	return data
}

func TestEstimatorsDeterministic(t *testing.T) {
	data := structured(100<<10 + 13)

	for _, tt := range estimators() {
		t.Run(tt.name, func(t *testing.T) {
			first, err := tt.est.EstimateSize(data)
			if err != nil {
				t.Fatalf("EstimateSize error: %v", err)
			}
			for i := 0; i < 5; i++ {
				got, err := tt.est.EstimateSize(data)
				if err != nil {
					t.Fatalf("run %d: EstimateSize error: %v", i, err)
				}
				if got != first {
					t.Fatalf("run %d: estimate %d, first run %d", i, got, first)
				}
			}
		})
	}
}

func TestEstimatorsStructuredSmallerThanRandom(t *testing.T) {
	size := 192<<10 + 13
	s := structured(size)
	r := random(size)

	for _, tt := range estimators() {
		t.Run(tt.name, func(t *testing.T) {
			sSize, err := tt.est.EstimateSize(s)
			if err != nil {
				t.Fatalf("structured: %v", err)
			}
			rSize, err := tt.est.EstimateSize(r)
			if err != nil {
				t.Fatalf("random: %v", err)
			}
			if sSize >= rSize {
				t.Errorf("structured %d >= random %d", sSize, rSize)
			}
		})
	}
}

func TestEstimatorsEmpty(t *testing.T) {
	for _, tt := range estimators() {
		if got, err := tt.est.EstimateSize(nil); err != nil || got != 0 {
			t.Errorf("%s: EstimateSize(nil) = %d, %v; want 0, nil", tt.name, got, err)
		}
	}
}

// TestEstimatorsIncompressibleBound checks that random data never
// estimates far above its own length: raw-block and table overhead only.
func TestEstimatorsIncompressibleBound(t *testing.T) {
	data := random(256<<10 + 17)
	bound := len(data) + len(data)/100 + 64

	for _, tt := range estimators() {
		got, err := tt.est.EstimateSize(data)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got > bound {
			t.Errorf("%s: estimate %d exceeds bound %d for %d incompressible bytes", tt.name, got, bound, len(data))
		}
		if got <= 0 {
			t.Errorf("%s: estimate %d for non-empty input", tt.name, got)
		}
	}
}

func TestHuff0ChunkBoundary(t *testing.T) {
	est := NewHuff0()
	sizes := []int{100, chunkSize - 1, chunkSize, chunkSize + 1, 2 * chunkSize, 2*chunkSize + 100}

	for _, size := range sizes {
		got, err := est.EstimateSize(structured(size))
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if got <= 0 || got > size {
			t.Errorf("size %d: estimate %d outside (0, %d]", size, got, size)
		}
	}
}

func TestHuff0SingleSymbolRuns(t *testing.T) {
	// Constant input trips huff0's RLE path chunk by chunk; the estimate
	// is the run-length price of each chunk.
	n := chunkSize + 5
	got, err := NewHuff0().EstimateSize(bytes.Repeat([]byte{0x7F}, n))
	if err != nil {
		t.Fatalf("EstimateSize error: %v", err)
	}
	want := (1 + (chunkSize+254)/255) + (1 + (5+254)/255)
	if got != want {
		t.Errorf("estimate %d, want %d", got, want)
	}
}

func TestZstdLevels(t *testing.T) {
	data := structured(100 << 10)

	for _, est := range []*Zstd{NewZstd(), NewZstdLevel(zstd.SpeedBetterCompression)} {
		got, err := est.EstimateSize(data)
		if err != nil {
			t.Fatalf("EstimateSize error: %v", err)
		}
		if got <= 0 || got >= len(data)/2 {
			t.Errorf("estimate %d for highly repetitive %d bytes", got, len(data))
		}
	}
}

func TestEstimatorsConcurrent(t *testing.T) {
	inputs := [][]byte{
		structured(64 << 10),
		random(64 << 10),
		structured(3000),
		random(100),
	}

	for _, tt := range estimators() {
		t.Run(tt.name, func(t *testing.T) {
			want := make([]int, len(inputs))
			for i, data := range inputs {
				n, err := tt.est.EstimateSize(data)
				if err != nil {
					t.Fatalf("sequential %d: %v", i, err)
				}
				want[i] = n
			}

			var wg sync.WaitGroup
			errs := make(chan error, 8*len(inputs))
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i, data := range inputs {
						n, err := tt.est.EstimateSize(data)
						if err != nil {
							errs <- err
							return
						}
						if n != want[i] {
							t.Errorf("concurrent estimate %d != sequential %d for input %d", n, want[i], i)
							return
						}
					}
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				t.Errorf("concurrent EstimateSize error: %v", err)
			}
		})
	}
}

// TestSearchIntegration runs the real search with each estimator end to
// end: whatever wins, the returned buffer must match a fresh transform
// with the winning settings and restore the original data.
func TestSearchIntegration(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	data := make([]byte, 512*16)
	for b := 0; b < 512; b++ {
		// Plausible BC3 blocks: correlated endpoints, noisy index words.
		base := uint16(r.Intn(1 << 16))
		blk := data[b*16:]
		blk[0] = byte(r.Intn(256))
		blk[1] = blk[0] - byte(r.Intn(8))
		r.Read(blk[2:8])
		blk[8], blk[9] = byte(base), byte(base>>8)
		near := base + uint16(r.Intn(64))
		blk[10], blk[11] = byte(near), byte(near>>8)
		r.Read(blk[12:16])
	}

	for _, tt := range estimators() {
		t.Run(tt.name, func(t *testing.T) {
			settings, transformed, err := dxt.DetermineOptimalTransform(dxt.FormatBC3, data, tt.est, true)
			if err != nil {
				t.Fatalf("search error: %v", err)
			}

			fresh := make([]byte, len(data))
			if err := dxt.Transform(dxt.FormatBC3, fresh, data, settings); err != nil {
				t.Fatalf("Transform error: %v", err)
			}
			if !bytes.Equal(transformed, fresh) {
				t.Errorf("search output does not match a fresh transform")
			}

			back := make([]byte, len(data))
			if err := dxt.Untransform(dxt.FormatBC3, back, transformed, settings); err != nil {
				t.Fatalf("Untransform error: %v", err)
			}
			if !bytes.Equal(back, data) {
				t.Errorf("winner does not round-trip")
			}
		})
	}
}

func BenchmarkEstimators(b *testing.B) {
	data := structured(1 << 20)

	for _, tt := range estimators() {
		b.Run(tt.name, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := tt.est.EstimateSize(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
