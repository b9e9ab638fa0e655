// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// impl_random_regular.go - RandomRegular(n, d) by stub matching.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   - cfg.rng is required (else ErrNeedRandSource).
//   - Each attempt shuffles n·d stubs and pairs neighbours; a pairing with a
//     self-loop or a repeated pair is discarded without touching the builder.
//   - After maxStubMatchingAttempts failures: ErrConstructFailed.
//
// Complexity: O(n·d) per attempt.

package builder

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

const (
	methodRandomRegular     = "RandomRegular"
	minRRVertices           = 1
	maxStubMatchingAttempts = 256
)

// RandomRegular returns a Constructor for a random simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}
		b.Grow(n)

		stubCount := n * d
		if stubCount == 0 {
			return nil
		}
		stubs := make([]int, stubCount)
		for i, pos := 0, 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs[pos] = i
				pos++
			}
		}

		rng := cfg.rng
		seen := make(map[[2]int]struct{}, stubCount/2)
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			clear(seen)

			valid := true
			for i := 0; i < stubCount; i += 2 {
				u, v := stubs[i], stubs[i+1]
				if u == v {
					valid = false
					break
				}
				if u > v {
					u, v = v, u
				}
				key := [2]int{u, v}
				if _, dup := seen[key]; dup {
					valid = false
					break
				}
				seen[key] = struct{}{}
			}
			if !valid {
				continue
			}

			for i := 0; i < stubCount; i += 2 {
				if err := addEdge(methodRandomRegular, b, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
