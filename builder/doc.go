// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// Package builder assembles core.Graph fixtures and experiment inputs from
// composable, deterministic constructors.
//
// Model:
//
//   - BuildGraph(opts, cons...) resolves functional options into an immutable
//     builderConfig, runs every Constructor against one core.Builder in order
//     and freezes the result into a core.Graph.
//   - Vertices are indices. A constructor over k vertices grows the builder to
//     at least k and adds edges among 0..k-1; AddEdge is idempotent, so
//     constructors can be overlaid (a Wheel is a Cycle plus spokes).
//   - Stochastic constructors (RandomSparse, RandomRegular) draw from the
//     configured RNG only; there is no time-based seeding. WithSeed(s) makes
//     the output a pure function of (s, constructor list).
//
// Constructors:
//
//	Empty(n)                  n isolated vertices
//	Path(n)                   0-1-…-(n-1)
//	Cycle(n)                  Path(n) plus {n-1,0}, n ≥ 3
//	Star(n)                   centre 0, leaves 1..n-1
//	Wheel(n)                  Cycle(n-1) on 0..n-2, hub n-1
//	Complete(n)               K_n
//	CompleteBipartite(a, b)   left 0..a-1, right a..a+b-1
//	Grid(r, c)                vertex r·c + col, 4-neighbourhood
//	RandomSparse(n, p)        G(n,p): each pair i<j kept when rng.Float64() < p
//	RandomRegular(n, d)       d-regular by stub matching with bounded retries
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
//	ErrConstructFailed. Option constructors panic on nil arguments;
//	graph constructors never panic.
package builder
