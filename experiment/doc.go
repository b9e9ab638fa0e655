// Package experiment drives batch Max-Cut runs: it samples random graphs,
// solves each with the configured algorithms and writes DOT drawings and CSV
// reports to an output directory.
//
// A batch is a deterministic function of (config, number of graphs already
// in the output directory). Graph k of a batch is G(n, p) with n drawn from
// [MinN, MaxN] and its own seed, both taken from a plan computed up front,
// so the outputs do not depend on Parallelism.
//
// Layout of the output directory:
//
//	graph_000_n17_initial.dot   the sampled graph
//	graph_000_n17_exact.dot     one drawing per algorithm
//	graph_000_n17_exact.png     when PNG rendering is enabled
//	results.csv                 one row per (graph, algorithm)
//	compare.csv                 one row per graph
//
// Graph numbering continues after the graphs already present, counted from
// the "*_initial.dot" files and the IDs recorded in results.csv. Appending to
// CSV files written with another algorithm list is refused.
package experiment
