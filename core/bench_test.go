// Package core_test provides benchmarks for cut evaluation.
package core_test

import (
	"testing"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// BenchmarkCutValue measures the matrix evaluator on a dense 20-vertex graph.
func BenchmarkCutValue(b *testing.B) {
	g := randomGraph(b, 20, 0.5, 11)
	p, _ := core.PartitionFromMask(0xA5A5A, g.Order())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.CutValue(p)
	}
}

// BenchmarkCutValueMask measures the popcount evaluator used by exact search.
func BenchmarkCutValueMask(b *testing.B) {
	g := randomGraph(b, 20, 0.5, 11)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.CutValueMask(uint64(i))
	}
}
