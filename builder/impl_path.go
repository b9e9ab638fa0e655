// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// impl_path.go - Path(n) and Empty(n).
//
// Contract:
//   - Path: n ≥ 2, edges {i,i+1} for i = 0..n-2 in ascending order.
//   - Empty: n ≥ 0, no edges; only grows the vertex range.
//
// Complexity: O(n) edges, O(n²) builder growth.

package builder

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

const (
	methodPath   = "Path"
	methodEmpty  = "Empty"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		b.Grow(n)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, b, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Empty returns a Constructor that ensures n vertices exist and adds no edge.
func Empty(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodEmpty, n, ErrTooFewVertices)
		}
		b.Grow(n)

		return nil
	}
}
