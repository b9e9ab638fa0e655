// Package core - read-only Graph queries.
//
// All methods are safe for concurrent use because a Graph is immutable.
// Out-of-range vertex indices never panic: predicates return false,
// counters return 0 and list accessors return nil.
package core

// Order returns the number of vertices N.
func (g *Graph) Order() int { return g.n }

// EdgeCount returns the number of undirected edges, each counted once.
func (g *Graph) EdgeCount() int { return g.edges }

// Adjacent reports whether {i,j} is an edge. Adjacent(i,i) is always false.
//
// Complexity: O(1).
func (g *Graph) Adjacent(i, j int) bool {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return false
	}

	return g.adj[i*g.n+j]
}

// Degree returns the number of neighbours of i.
func (g *Graph) Degree(i int) int {
	if i < 0 || i >= g.n {
		return 0
	}

	return len(g.neighbors[i])
}

// Neighbors returns a copy of the ascending neighbour list of i.
func (g *Graph) Neighbors(i int) []int {
	if i < 0 || i >= g.n {
		return nil
	}
	out := make([]int, len(g.neighbors[i]))
	copy(out, g.neighbors[i])

	return out
}

// ForEachNeighbor calls fn for every neighbour of i in ascending order
// without allocating.
func (g *Graph) ForEachNeighbor(i int, fn func(j int)) {
	if i < 0 || i >= g.n {
		return
	}
	for _, j := range g.neighbors[i] {
		fn(j)
	}
}

// Edges returns all edges as pairs (i,j) with i < j, sorted lexicographically.
//
// Complexity: O(N + E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	for i := 0; i < g.n; i++ {
		for _, j := range g.neighbors[i] {
			if j > i {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// Matrix returns the adjacency matrix as 0/1 integers (fresh copy).
//
// Complexity: O(N²).
func (g *Graph) Matrix() [][]int {
	out := make([][]int, g.n)
	for i := 0; i < g.n; i++ {
		out[i] = make([]int, g.n)
		for _, j := range g.neighbors[i] {
			out[i][j] = 1
		}
	}

	return out
}

// Density returns E / (N·(N-1)/2), or 0 when N < 2.
func (g *Graph) Density() float64 {
	if g.n < 2 {
		return 0
	}

	return float64(g.edges) / (float64(g.n) * float64(g.n-1) / 2)
}
