// Package core declares Graph, Builder and the sentinel errors returned by
// graph construction and cut evaluation.
package core

import "errors"

// Sentinel errors for graph construction and evaluation.
var (
	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("core: negative vertex count")

	// ErrNonSquare indicates an adjacency structure that is not N×N.
	ErrNonSquare = errors.New("core: adjacency matrix is not square")

	// ErrAsymmetric indicates adjacency(i,j) != adjacency(j,i).
	ErrAsymmetric = errors.New("core: adjacency matrix is not symmetric")

	// ErrSelfLoop indicates a vertex adjacent to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadEntry indicates an integer matrix entry other than 0 or 1.
	ErrBadEntry = errors.New("core: adjacency entry must be 0 or 1")

	// ErrVertexOutOfRange indicates an index outside 0..N-1.
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrPartitionSize indicates a partition whose length differs from the graph order.
	ErrPartitionSize = errors.New("core: partition size does not match graph order")

	// ErrMaskTooWide indicates a uint64 mask conversion for more than MaskWidth vertices.
	ErrMaskTooWide = errors.New("core: partition does not fit in a 64-bit mask")
)

// MaskWidth is the largest order whose partitions fit in a uint64 mask.
const MaskWidth = 64

// Graph is an immutable simple undirected graph over vertices 0..N-1.
//
// adj is the row-major N×N adjacency matrix. neighbors[i] lists the
// neighbours of i in ascending order. upper[i] holds the neighbours j > i of
// vertex i as a bitmask and is populated only when n ≤ MaskWidth.
type Graph struct {
	n         int
	adj       []bool
	neighbors [][]int
	upper     []uint64
	edges     int
}

// Builder accumulates edges before freezing them into a Graph.
//
// Builder is not safe for concurrent use. AddEdge is idempotent: adding an
// existing edge again is a no-op, so constructors can be composed over the
// same vertex range without producing parallel edges.
type Builder struct {
	n   int
	adj []bool
}
