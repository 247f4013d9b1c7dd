package dxt

import (
	"github.com/mrjoshuak/go-dxtsplit/internal/bc1"
	"github.com/mrjoshuak/go-dxtsplit/internal/bc2"
	"github.com/mrjoshuak/go-dxtsplit/internal/bc3"
)

// Format identifies a block-compressed texture format.
type Format uint8

const (
	// FormatBC1 is the 8-byte color-only format (DXT1).
	FormatBC1 Format = 1
	// FormatBC2 is the 16-byte format with explicit 4-bit alpha (DXT2/3).
	FormatBC2 Format = 2
	// FormatBC3 is the 16-byte format with interpolated alpha (DXT4/5).
	FormatBC3 Format = 3
)

// BlockSize returns the encoded size of one block in bytes, or 0 for an
// unknown format.
func (f Format) BlockSize() int {
	switch f {
	case FormatBC1:
		return bc1.BlockSize
	case FormatBC2:
		return bc2.BlockSize
	case FormatBC3:
		return bc3.BlockSize
	default:
		return 0
	}
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	return f >= FormatBC1 && f <= FormatBC3
}

func (f Format) String() string {
	switch f {
	case FormatBC1:
		return "bc1"
	case FormatBC2:
		return "bc2"
	case FormatBC3:
		return "bc3"
	default:
		return "unknown"
	}
}
