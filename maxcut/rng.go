// Package maxcut - deterministic random streams for MultiStart.
//
// math/rand.Rand is not goroutine-safe; each restart owns its own stream
// derived from the caller's seed and the restart index, so results do not
// depend on goroutine scheduling.
package maxcut

import (
	"math/rand"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// defaultRNGSeed replaces seed 0.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier with the
// SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the independent stream for restart k under seed.
func streamRNG(seed int64, k int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(k))))
}

// randomPartition draws each label uniformly from {0,1}.
//
// Complexity: O(n).
func randomPartition(n int, r *rand.Rand) core.Partition {
	p := core.NewPartition(n)
	for i := 0; i < n; i++ {
		if r.Intn(2) == 1 {
			p.Set(i, 1)
		}
	}

	return p
}
