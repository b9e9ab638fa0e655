package maxcut_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// graphFromEdges builds a graph or fails the test.
func graphFromEdges(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromEdges(n, edges)
	require.NoError(t, err)

	return g
}

// cycle returns C_n over 0..n-1.
func cycle(t testing.TB, n int) *core.Graph {
	t.Helper()
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return graphFromEdges(t, n, edges...)
}

// star returns K_{1,n-1} centred at 0.
func star(t testing.TB, n int) *core.Graph {
	t.Helper()
	edges := make([][2]int, 0, n-1)
	for leaf := 1; leaf < n; leaf++ {
		edges = append(edges, [2]int{0, leaf})
	}

	return graphFromEdges(t, n, edges...)
}

// randomGraph draws G(n,p) from a fixed seed.
func randomGraph(t testing.TB, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	b := core.NewBuilder(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				require.NoError(t, b.AddEdge(i, j))
			}
		}
	}

	return b.Graph()
}
