// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// impl_grid.go - Grid(rows, cols): orthogonal 4-neighbourhood lattice.
//
// Cell (r,c) is vertex r·cols + c. For each cell in row-major order the
// right neighbour is emitted before the bottom one. Grids are bipartite, so
// the max cut equals the edge count rows·(cols-1) + (rows-1)·cols.
//
// Complexity: O(rows·cols) edges.

package builder

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		b.Grow(rows * cols)

		var r, c, u int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u = r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, b, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, b, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
