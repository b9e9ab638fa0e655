// Package core defines the immutable Graph, the Partition type and the cut
// evaluator shared by every Max-Cut solver in this module.
//
// A Graph G = (V,E) is simple and undirected: N vertices indexed 0..N-1 and a
// symmetric adjacency relation without self-loops. It is stored as a flat
// row-major N×N boolean matrix for O(1) edge lookup, together with sorted
// neighbour lists and, for N ≤ 64, per-vertex neighbour bitmasks.
//
// Construction paths:
//
//	NewGraph(adj [][]bool)               // validated square/symmetric/loop-free
//	NewGraphFromMatrix(m [][]int)        // 0/1 entries, same validation
//	NewGraphFromEdges(n, [][2]int)       // edge list, duplicates collapse
//	NewBuilder(n) … AddEdge … Graph()    // incremental, used by builder/ and parsers
//
// Validation happens exactly once, at construction. Solvers receive a *Graph
// and never re-check it. A Graph is never mutated after construction, so any
// number of goroutines may read it concurrently.
//
// Partition maps each vertex to a label in {0,1}. It is backed by a
// github.com/soniakeys/bits bit array of exactly N bits, so it has no width
// limit; Mask/PartitionFromMask convert to and from a uint64 for N ≤ 64.
//
// Cut evaluation:
//
//	CutValue(p)      O(N²)   sum over i<j, Adjacent(i,j), label(i) ≠ label(j)
//	CutValueMask(m)  O(N)    same value via neighbour bitmasks (N ≤ 64)
//	FlipGain(p, i)   O(deg)  cut delta if i alone changes side
//
// Errors:
//
//	ErrNegativeOrder    - vertex count below zero.
//	ErrNonSquare        - adjacency rows of the wrong length.
//	ErrAsymmetric       - adjacency(i,j) ≠ adjacency(j,i).
//	ErrSelfLoop         - adjacency(i,i) set.
//	ErrBadEntry         - integer matrix entry other than 0 or 1.
//	ErrVertexOutOfRange - edge endpoint outside 0..N-1.
//	ErrPartitionSize    - partition length differs from N.
//	ErrMaskTooWide      - mask conversion requested for N > 64.
package core
