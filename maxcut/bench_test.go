// Package maxcut_test provides benchmarks for the Max-Cut solvers.
package maxcut_test

import (
	"context"
	"testing"

	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

// BenchmarkExact16 measures sequential exhaustive search on 16 vertices.
func BenchmarkExact16(b *testing.B) {
	g := randomGraph(b, 16, 0.4, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = maxcut.Exact(g)
	}
}

// BenchmarkExact16_Sharded measures the same search split over 4 workers.
func BenchmarkExact16_Sharded(b *testing.B) {
	g := randomGraph(b, 16, 0.4, 1)
	opts := maxcut.DefaultOptions()
	opts.Workers = 4
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = maxcut.ExactContext(context.Background(), g, opts)
	}
}

// BenchmarkLocalSearch200 measures the heuristic on a sparse 200-vertex graph.
func BenchmarkLocalSearch200(b *testing.B) {
	g := randomGraph(b, 200, 0.05, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = maxcut.LocalSearch(g)
	}
}

// BenchmarkGreedy200 measures the one-pass greedy on the same graph.
func BenchmarkGreedy200(b *testing.B) {
	g := randomGraph(b, 200, 0.05, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = maxcut.Greedy(g)
	}
}
