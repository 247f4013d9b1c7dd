//go:build arm64 && !noasm

package dxt

import "golang.org/x/sys/cpu"

// detectLevel picks the widest tier the host supports. arm64 handles
// unaligned 64-bit access, so the wide tier is the floor; ASIMD machines
// take the unrolled tier.
func detectLevel() Level {
	if cpu.ARM64.HasASIMD {
		return LevelWide2
	}
	return LevelWide
}
