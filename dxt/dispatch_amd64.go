//go:build amd64 && !noasm

package dxt

import "golang.org/x/sys/cpu"

// detectLevel picks the widest tier the host supports. Unaligned 64-bit
// access is architectural on amd64, so the wide tier is the floor; AVX2
// machines take the unrolled tier.
func detectLevel() Level {
	if cpu.X86.HasAVX2 {
		return LevelWide2
	}
	return LevelWide
}
