// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// impl_complete.go - Complete(n): K_n, n ≥ 1.
//
// The maximum cut of K_n is ⌊n/2⌋·⌈n/2⌉.
//
// Complexity: O(n²) edges.

package builder

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		b.Grow(n)

		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := addEdge(methodComplete, b, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
