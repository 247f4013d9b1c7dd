package dxt

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"math/rand"
	"testing"

	"github.com/mrjoshuak/go-dxtsplit/color565"
)

var allFormats = []Format{FormatBC1, FormatBC2, FormatBC3}

// allSettings is the full legal settings grid, including the alpha split
// the automatic search never tries on its own.
func allSettings() []TransformSettings {
	var out []TransformSettings
	for v := color565.VariantNone; v <= color565.Variant3; v++ {
		for _, sc := range []bool{false, true} {
			for _, sa := range []bool{false, true} {
				out = append(out, TransformSettings{
					Decorrelate:         v,
					SplitColorEndpoints: sc,
					SplitAlphaEndpoints: sa,
				})
			}
		}
	}
	return out
}

func TestTransformSingleBlock(t *testing.T) {
	// color0=0xF800, color1=0x07E0, all indices zero. With one block and
	// no splitting the regions line up with the block fields, so the
	// output equals the input.
	src := []byte{0x00, 0xF8, 0xE0, 0x07, 0x00, 0x00, 0x00, 0x00}
	want := []byte{0x00, 0xF8, 0xE0, 0x07, 0x00, 0x00, 0x00, 0x00}

	dst := make([]byte, len(src))
	if err := Transform(FormatBC1, dst, src, TransformSettings{}); err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("Transform output:\ngot:  %v\nwant: %v", dst, want)
	}

	back := make([]byte, len(src))
	if err := Untransform(FormatBC1, back, dst, TransformSettings{}); err != nil {
		t.Fatalf("Untransform error: %v", err)
	}
	if !bytes.Equal(back, src) {
		t.Errorf("Untransform did not restore the original block:\ngot:  %v\nwant: %v", back, src)
	}
}

func TestTransformSplitEndpointOrder(t *testing.T) {
	// Two blocks with split endpoints: color0 of every block first, then
	// color1 of every block, then the index words in block order.
	src := []byte{
		0x00, 0xF8, 0xE0, 0x07, 0x11, 0x22, 0x33, 0x44,
		0x1F, 0x00, 0xFF, 0xFF, 0xAA, 0xBB, 0xCC, 0xDD,
	}
	want := []byte{
		0x00, 0xF8, 0x1F, 0x00,
		0xE0, 0x07, 0xFF, 0xFF,
		0x11, 0x22, 0x33, 0x44, 0xAA, 0xBB, 0xCC, 0xDD,
	}

	dst := make([]byte, len(src))
	s := TransformSettings{SplitColorEndpoints: true}
	if err := Transform(FormatBC1, dst, src, s); err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	if !bytes.Equal(dst, want) {
		t.Errorf("split endpoint order:\ngot:  %v\nwant: %v", dst, want)
	}
}

func TestTransformArgumentErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		dst    []byte
		src    []byte
		s      TransformSettings
		want   error
	}{
		{"zero format", 0, make([]byte, 16), make([]byte, 16), TransformSettings{}, ErrUnknownFormat},
		{"unknown format", Format(7), make([]byte, 16), make([]byte, 16), TransformSettings{}, ErrUnknownFormat},
		{"bc1 ragged length", FormatBC1, make([]byte, 12), make([]byte, 12), TransformSettings{}, ErrInvalidLength},
		{"bc3 ragged length", FormatBC3, make([]byte, 24), make([]byte, 24), TransformSettings{}, ErrInvalidLength},
		{"output too small", FormatBC2, make([]byte, 15), make([]byte, 16), TransformSettings{}, ErrOutputTooSmall},
		{"invalid variant", FormatBC2, make([]byte, 16), make([]byte, 16), TransformSettings{Decorrelate: color565.Variant(9)}, ErrInvalidVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Transform(tt.format, tt.dst, tt.src, tt.s); !errors.Is(err, tt.want) {
				t.Errorf("Transform: got %v, want %v", err, tt.want)
			}
			if err := Untransform(tt.format, tt.dst, tt.src, tt.s); !errors.Is(err, tt.want) {
				t.Errorf("Untransform: got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTransformZeroLength(t *testing.T) {
	for _, format := range allFormats {
		if err := Transform(format, nil, nil, TransformSettings{}); err != nil {
			t.Errorf("%v: Transform on empty input: %v", format, err)
		}
		if err := Untransform(format, []byte{}, []byte{}, TransformSettings{}); err != nil {
			t.Errorf("%v: Untransform on empty input: %v", format, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	counts := []int{1, 2, 3, 5, 8, 33, 128}

	for _, format := range allFormats {
		for _, s := range allSettings() {
			for _, n := range counts {
				src := make([]byte, n*format.BlockSize())
				r.Read(src)
				orig := append([]byte(nil), src...)

				dst := make([]byte, len(src))
				if err := Transform(format, dst, src, s); err != nil {
					t.Fatalf("%v %v n=%d: Transform error: %v", format, s, n, err)
				}
				if !bytes.Equal(src, orig) {
					t.Fatalf("%v %v n=%d: Transform modified src", format, s, n)
				}

				back := make([]byte, len(src))
				if err := Untransform(format, back, dst, s); err != nil {
					t.Fatalf("%v %v n=%d: Untransform error: %v", format, s, n, err)
				}
				if !bytes.Equal(back, orig) {
					t.Errorf("%v %v n=%d: round trip mismatch", format, s, n)
				}
			}
		}
	}
}

func TestTransformLeavesTailUntouched(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	src := make([]byte, 5*FormatBC3.BlockSize())
	r.Read(src)

	dst := make([]byte, len(src)+13)
	for i := range dst {
		dst[i] = 0xA5
	}

	s := TransformSettings{Decorrelate: color565.Variant1, SplitColorEndpoints: true}
	if err := Transform(FormatBC3, dst, src, s); err != nil {
		t.Fatalf("Transform error: %v", err)
	}
	for i := len(src); i < len(dst); i++ {
		if dst[i] != 0xA5 {
			t.Fatalf("dst[%d] beyond the input length was clobbered", i)
		}
	}
}

// TestTransformDeterminism verifies that transforming the same data always
// produces identical output.
func TestTransformDeterminism(t *testing.T) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(i % 64) // Creates patterns
	}

	s := TransformSettings{Decorrelate: color565.Variant1, SplitColorEndpoints: true}
	var hashes [][32]byte
	for i := 0; i < 10; i++ {
		dst := make([]byte, len(data))
		if err := Transform(FormatBC3, dst, data, s); err != nil {
			t.Fatalf("Transform error: %v", err)
		}
		hashes = append(hashes, sha256.Sum256(dst))
	}

	for i := 1; i < len(hashes); i++ {
		if hashes[i] != hashes[0] {
			t.Errorf("Non-deterministic transform: hash[0] != hash[%d]", i)
		}
	}
	t.Logf("transform is deterministic (10 runs, hash=%x)", hashes[0][:8])
}

func TestFormatAccessors(t *testing.T) {
	tests := []struct {
		format Format
		size   int
		valid  bool
		str    string
	}{
		{FormatBC1, 8, true, "bc1"},
		{FormatBC2, 16, true, "bc2"},
		{FormatBC3, 16, true, "bc3"},
		{Format(0), 0, false, "unknown"},
		{Format(9), 0, false, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.format.BlockSize(); got != tt.size {
			t.Errorf("BlockSize(%d) = %d, want %d", tt.format, got, tt.size)
		}
		if got := tt.format.Valid(); got != tt.valid {
			t.Errorf("Valid(%d) = %t, want %t", tt.format, got, tt.valid)
		}
		if got := tt.format.String(); got != tt.str {
			t.Errorf("String(%d) = %q, want %q", tt.format, got, tt.str)
		}
	}
}

func BenchmarkTransform(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	s := TransformSettings{Decorrelate: color565.Variant1, SplitColorEndpoints: true}

	for _, format := range allFormats {
		size := 4096 * format.BlockSize()
		src := make([]byte, size)
		r.Read(src)
		dst := make([]byte, size)

		b.Run(format.String(), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := Transform(format, dst, src, s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
