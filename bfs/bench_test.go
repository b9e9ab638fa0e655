package bfs_test

import (
	"testing"

	"github.com/MihaiBandur/HackathonQuantic/bfs"
	"github.com/MihaiBandur/HackathonQuantic/builder"
)

// BenchmarkBFS_Grid measures BFS on a 60×60 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Grid(60, 60))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkTwoColoring measures the bipartiteness check on the same grid.
func BenchmarkTwoColoring(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.Grid(60, 60))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.TwoColoring(g)
	}
}
