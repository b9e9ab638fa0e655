// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// impl_random_sparse.go - RandomSparse(n, p), the Erdős–Rényi G(n,p) model.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource). With an
//     RNG present one Float64 is drawn per pair even for p ∈ {0,1}, so the
//     stream position after the call depends only on n.
//   - Pairs are visited i ascending, then j > i ascending; {i,j} is kept
//     when rng.Float64() < p.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p) over 0..n-1.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		b.Grow(n)

		var (
			rng  = cfg.rng
			i, j int
			keep bool
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if rng == nil {
					keep = p == probMax
				} else {
					keep = rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(methodRandomSparse, b, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
