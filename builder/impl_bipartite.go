// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Left side is 0..n1-1, right side n1..n1+n2-1; both sides need at least
// one vertex. Every edge crosses the side split, so the max cut is n1·n2.
//
// Complexity: O(n1·n2) edges.

package builder

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

const (
	methodBipartite = "CompleteBipartite"
	minPartSize     = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if n1 < minPartSize || n2 < minPartSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodBipartite, n1, n2, minPartSize, ErrTooFewVertices)
		}
		b.Grow(n1 + n2)

		var u, v int
		for u = 0; u < n1; u++ {
			for v = n1; v < n1+n2; v++ {
				if err := addEdge(methodBipartite, b, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
