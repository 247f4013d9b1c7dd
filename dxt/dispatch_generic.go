//go:build (!amd64 && !arm64) || noasm

package dxt

// detectLevel falls back to the portable scalar kernels: either the
// architecture gives no unaligned 64-bit access guarantee, or the noasm
// build tag pinned the scalar tier for reproducible builds.
func detectLevel() Level {
	return LevelScalar
}
