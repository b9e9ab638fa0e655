// Package maxcut solves the Maximum Cut problem on simple undirected,
// unweighted graphs built by package core.
//
// What:
//
//   - Exact / ExactContext enumerate every bipartition mask 0..2^N−1 in
//     increasing order and keep the first mask with the largest cut value.
//   - LocalSearch starts from the all-zero labelling and repeatedly sweeps
//     vertices 0..N−1, moving a vertex to the other side whenever more of its
//     neighbours share its side than sit across; it stops after a sweep with
//     no moves. The result is a local optimum under single-vertex flips.
//   - Greedy places vertices one at a time in index order (single pass).
//   - MultiStart runs LocalSearch from the all-zero labelling and from seeded
//     random labellings, keeping the best.
//   - MaxSAT encodes Max-Cut as weighted partial MaxSAT and solves it with
//     gophersat; it is exact and serves as an independent cross-check.
//   - Solve dispatches on Options.Algorithm and records the wall time.
//
// Determinism:
//
//	Every solver is deterministic. Exact and LocalSearch take no seed; ties in
//	the exact search are broken by strict ">" so the smallest best mask wins,
//	also when the mask range is sharded across workers. MultiStart derives one
//	independent stream per restart from Options.Seed (seed 0 maps to a fixed
//	default), so results do not depend on scheduling.
//
// Complexity:
//
//   - Exact:       O(2^N · N) time, O(1) extra space per worker.
//   - LocalSearch: O((E+1) · (N + E)) time worst case, O(N) space.
//   - Greedy:      O(N + E).
//   - MaxSAT:      exponential worst case, usually far below Exact for sparse graphs.
//
// Limits:
//
//	Exact refuses graphs with more than MaxExactVertices (63) vertices and,
//	when Options.ExactLimit > 0, graphs above that limit; both fail fast with
//	ErrTooManyVertices. In practice exhaustive search is usable up to roughly
//	22–24 vertices. The heuristics have no width limit.
//
// Errors:
//
//	ErrNilGraph, ErrTooManyVertices, ErrUnsupportedAlgorithm, ErrBadOptions,
//	ErrCanceled (wraps ctx.Err()), ErrSolverFailed, plus core.ErrPartitionSize
//	from LocalSearchFrom.
package maxcut
