// Package core - construction entry points.
//
// Every constructor validates its input completely and either returns a
// fully formed *Graph or an error wrapping one of the sentinels in types.go.
// No constructor retains a reference to caller-owned slices.
package core

import "fmt"

// NewGraph builds a Graph from a boolean adjacency matrix.
//
// Contract:
//   - adj must be square (len(adj[i]) == len(adj) for every i).
//   - adj[i][i] must be false.
//   - adj[i][j] must equal adj[j][i].
//
// A nil or empty adj yields the empty graph (N = 0).
//
// Complexity: O(N²) time and space.
func NewGraph(adj [][]bool) (*Graph, error) {
	n := len(adj)
	b := NewBuilder(n)

	var i, j int
	for i = 0; i < n; i++ {
		if len(adj[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(adj[i]), n, ErrNonSquare)
		}
	}
	for i = 0; i < n; i++ {
		if adj[i][i] {
			return nil, fmt.Errorf("vertex %d: %w", i, ErrSelfLoop)
		}
		for j = i + 1; j < n; j++ {
			if adj[i][j] != adj[j][i] {
				return nil, fmt.Errorf("entries (%d,%d) and (%d,%d) differ: %w", i, j, j, i, ErrAsymmetric)
			}
			if adj[i][j] {
				b.set(i, j)
			}
		}
	}

	return b.Graph(), nil
}

// NewGraphFromMatrix builds a Graph from a 0/1 integer matrix, the in-memory
// shape of the textual interchange format. Entries other than 0 and 1 are
// rejected with ErrBadEntry; the remaining checks match NewGraph.
//
// Complexity: O(N²).
func NewGraphFromMatrix(m [][]int) (*Graph, error) {
	n := len(m)
	adj := make([][]bool, n)

	var (
		i, j int
		v    int
	)
	for i = 0; i < n; i++ {
		if len(m[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(m[i]), n, ErrNonSquare)
		}
		adj[i] = make([]bool, n)
		for j = 0; j < n; j++ {
			v = m[i][j]
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("entry (%d,%d) = %d: %w", i, j, v, ErrBadEntry)
			}
			adj[i][j] = v == 1
		}
	}

	return NewGraph(adj)
}

// NewGraphFromEdges builds a Graph with n vertices and the given undirected
// edges. Duplicate edges (in either orientation) collapse into one.
//
// Errors: ErrNegativeOrder, ErrVertexOutOfRange, ErrSelfLoop.
//
// Complexity: O(N² + len(edges)).
func NewGraphFromEdges(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrNegativeOrder)
	}
	b := NewBuilder(n)
	for k, e := range edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("edge #%d: %w", k, err)
		}
	}

	return b.Graph(), nil
}

// NewBuilder returns an empty Builder with n isolated vertices.
// A negative n is treated as zero.
func NewBuilder(n int) *Builder {
	if n < 0 {
		n = 0
	}

	return &Builder{n: n, adj: make([]bool, n*n)}
}

// Order returns the current number of vertices.
func (b *Builder) Order() int { return b.n }

// Grow extends the builder to at least n vertices, keeping existing edges.
// Shrinking is not supported; a smaller n is a no-op.
//
// Complexity: O(n²) when the order changes, O(1) otherwise.
func (b *Builder) Grow(n int) {
	if n <= b.n {
		return
	}
	adj := make([]bool, n*n)
	for i := 0; i < b.n; i++ {
		copy(adj[i*n:i*n+b.n], b.adj[i*b.n:(i+1)*b.n])
	}
	b.n, b.adj = n, adj
}

// AddEdge inserts the undirected edge {i,j}. Re-adding an edge is a no-op.
//
// Errors: ErrVertexOutOfRange if either endpoint is outside 0..Order()-1,
// ErrSelfLoop if i == j.
func (b *Builder) AddEdge(i, j int) error {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return fmt.Errorf("edge (%d,%d) with n=%d: %w", i, j, b.n, ErrVertexOutOfRange)
	}
	if i == j {
		return fmt.Errorf("edge (%d,%d): %w", i, j, ErrSelfLoop)
	}
	b.set(i, j)

	return nil
}

// HasEdge reports whether {i,j} has been added. Out-of-range indices yield false.
func (b *Builder) HasEdge(i, j int) bool {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return false
	}

	return b.adj[i*b.n+j]
}

// set stores both orientations of {i,j}; callers have validated the indices.
func (b *Builder) set(i, j int) {
	b.adj[i*b.n+j] = true
	b.adj[j*b.n+i] = true
}

// Graph freezes the current edge set into an immutable Graph. The builder
// stays usable; later edits do not affect graphs already returned.
//
// Complexity: O(N²).
func (b *Builder) Graph() *Graph {
	n := b.n
	g := &Graph{
		n:         n,
		adj:       make([]bool, n*n),
		neighbors: make([][]int, n),
	}
	copy(g.adj, b.adj)

	var i, j int
	for i = 0; i < n; i++ {
		row := g.adj[i*n : (i+1)*n]
		for j = 0; j < n; j++ {
			if row[j] {
				g.neighbors[i] = append(g.neighbors[i], j)
				if j > i {
					g.edges++
				}
			}
		}
	}

	if n <= MaskWidth {
		g.upper = make([]uint64, n)
		for i = 0; i < n; i++ {
			for _, j = range g.neighbors[i] {
				if j > i {
					g.upper[i] |= 1 << uint(j)
				}
			}
		}
	}

	return g
}
