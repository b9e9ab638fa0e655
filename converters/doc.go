// Package converters moves graphs and partitions in and out of the
// representations used around the solvers:
//
//   - the plain-text adjacency format (first line N, then N rows of N
//     space-separated 0/1 integers, trailing newline);
//   - the textual partition "0 1 1 0", vertex 0 first;
//   - Graphviz DOT documents for the input graph and for a solved partition,
//     built with github.com/emicklei/dot;
//   - PNG images, by shelling out to the Graphviz `dot` binary.
//
// Parsing validates structure here (ErrMalformed, with line numbers) and
// graph invariants in package core (ErrBadEntry, ErrAsymmetric, ErrSelfLoop).
package converters
