package dxt

import (
	"errors"
	"testing"

	"github.com/mrjoshuak/go-dxtsplit/color565"
)

func TestSettingsPackRoundTrip(t *testing.T) {
	for _, s := range allSettings() {
		packed := s.Pack()
		if packed > 1<<28-1 {
			t.Errorf("%v: packed value %#x exceeds 28 bits", s, packed)
		}
		if ver := packed >> packedVersionShift & packedVersionMask; ver != packedVersion {
			t.Errorf("%v: packed version = %d, want %d", s, ver, packedVersion)
		}
		if packed&packedReservedMask != 0 {
			t.Errorf("%v: packed value %#x has reserved bits set", s, packed)
		}

		got, err := UnpackSettings(packed)
		if err != nil {
			t.Fatalf("%v: UnpackSettings(%#x) error: %v", s, packed, err)
		}
		if got != s {
			t.Errorf("UnpackSettings(%#x) = %v, want %v", packed, got, s)
		}
	}
}

func TestSettingsPackKnownValues(t *testing.T) {
	tests := []struct {
		s    TransformSettings
		want uint32
	}{
		{TransformSettings{}, 1 << 24},
		{TransformSettings{Decorrelate: color565.Variant1}, 1<<24 | 0x1},
		{TransformSettings{Decorrelate: color565.Variant3, SplitColorEndpoints: true}, 1<<24 | 1<<2 | 0x3},
		{TransformSettings{SplitAlphaEndpoints: true}, 1<<24 | 1<<3},
	}
	for _, tt := range tests {
		if got := tt.s.Pack(); got != tt.want {
			t.Errorf("Pack(%v) = %#x, want %#x", tt.s, got, tt.want)
		}
	}
}

func TestUnpackSettingsRejects(t *testing.T) {
	tests := []struct {
		name string
		v    uint32
		want error
	}{
		{"over 28 bits", 1 << 28, ErrSettingsTooWide},
		{"all ones", 0xFFFFFFFF, ErrSettingsTooWide},
		{"version zero", 0x3, ErrSettingsVersion},
		{"future version", 2<<24 | 0x3, ErrSettingsVersion},
		{"reserved bit low", 1<<24 | 1<<4, ErrSettingsReserved},
		{"reserved bit high", 1<<24 | 1<<23, ErrSettingsReserved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnpackSettings(tt.v)
			if !errors.Is(err, tt.want) {
				t.Errorf("UnpackSettings(%#x) error = %v, want %v", tt.v, err, tt.want)
			}
		})
	}
}

func TestSettingsString(t *testing.T) {
	s := TransformSettings{Decorrelate: color565.Variant2, SplitColorEndpoints: true}
	want := "decorrelate=ycocg2 splitColor=true splitAlpha=false"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
