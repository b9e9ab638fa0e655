// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order, plus
// the two traversals the Max-Cut tooling builds on: connected components
// and two-colouring.
//
// What
//
//   - BFS(g, start, opts...) explores vertices in non-decreasing distance
//     from start. Neighbours are enqueued in ascending index order, so the
//     visit sequence is fully reproducible.
//   - Components(g) lists connected components.
//   - TwoColoring(g) returns a proper 2-colouring when g is bipartite. Such a
//     colouring cuts every edge, so it certifies that the maximum cut equals
//     EdgeCount; reports use it as an upper-bound shortcut.
//
// Complexity
//
//   - Time:   O(N + E)
//   - Memory: O(N)
//
// Options
//
//   - WithContext(ctx):        cancellation, polled once per dequeued vertex.
//   - WithMaxDepth(d):         do not expand vertices at depth ≥ d (d > 0).
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr, nbr) == false.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation.
//   - ctx.Err() on cancellation; wrapped OnVisit errors.
package bfs
