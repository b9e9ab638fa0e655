// Package hackathonquantic solves the maximum cut problem on simple,
// unweighted, undirected graphs and compares exact and heuristic solvers on
// random instances.
//
// A cut splits the vertices into two sides; its value is the number of
// edges whose endpoints end up on different sides. Max-Cut asks for the
// split with the largest value.
//
// What is inside:
//
//	core/        immutable Graph, Builder, Partition and cut evaluation
//	maxcut/      exact search over 2^N masks, single-flip local search,
//	             greedy, multi-start and a MaxSAT encoding, behind Solve
//	builder/     deterministic and seeded graph constructors (G(n,p), cycles, grids…)
//	bfs/         breadth-first traversal, components and two-colouring
//	converters/  text adjacency matrices, partition strings, DOT and PNG output
//	report/      CSV result and comparison tables
//	experiment/  batch driver: generate, solve, check, draw, report
//	config/      viper-backed configuration with validation
//	logger/      zap logger construction
//	cmd/maxcut   the command line tool
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
// The 4-cycle is bipartite, so the best cut {0,2} | {1,3} crosses all four
// edges. maxcut.Exact returns mask 0101 (vertices 0 and 2 labelled 1), the
// first mask reaching that value.
//
//	go install github.com/MihaiBandur/HackathonQuantic/cmd/maxcut@latest
package hackathonquantic
