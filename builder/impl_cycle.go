// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// impl_cycle.go - Cycle(n): C_n = Path(n) + closing edge {n-1,0}, n ≥ 3.
//
// Complexity: O(n) edges.

package builder

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor for the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := Path(n)(b, cfg); err != nil {
			return fmt.Errorf("%s: base path P_%d: %w", methodCycle, n, err)
		}

		return addEdge(methodCycle, b, n-1, 0)
	}
}
