// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} on 0..n-2 plus hub n-1, n ≥ 4.
//
// Spokes are emitted in ascending rim order after the rim cycle.
//
// Complexity: O(n) edges.

package builder

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4 // the rim C_{n-1} needs at least 3 vertices
)

// Wheel returns a Constructor for the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(b, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		b.Grow(n)
		hub := n - 1
		for rim := 0; rim < hub; rim++ {
			if err := addEdge(methodWheel, b, hub, rim); err != nil {
				return err
			}
		}

		return nil
	}
}
