// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// impl_star.go - Star(n): centre 0 joined to leaves 1..n-1, n ≥ 2.
//
// The maximum cut of a star is n-1 (centre alone on one side).
//
// Complexity: O(n) edges.

package builder

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
	starCenter   = 0
)

// Star returns a Constructor for K_{1,n-1}.
func Star(n int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		b.Grow(n)
		for leaf := starCenter + 1; leaf < n; leaf++ {
			if err := addEdge(methodStar, b, starCenter, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
