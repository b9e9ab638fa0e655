// Package core_test contains shared graph fixtures for the core tests.
package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// Vertex counts used across tests (avoid magic numbers in test bodies).
const (
	N0 = 0
	N1 = 1
	N2 = 2
	N3 = 3
	N4 = 4
	N5 = 5
)

// mustEdges builds a graph from an edge list or fails the test.
func mustEdges(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraphFromEdges(n, edges)
	require.NoError(t, err)

	return g
}

// triangle returns K3.
func triangle(t testing.TB) *core.Graph {
	return mustEdges(t, N3, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})
}

// square returns the 4-cycle 0-1-2-3-0.
func square(t testing.TB) *core.Graph {
	return mustEdges(t, N4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})
}

// randomGraph returns a G(n,p) graph drawn from a fixed seed.
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

// mustLabels builds a partition from labels or fails the test.
func mustLabels(t testing.TB, labels ...int) core.Partition {
	t.Helper()
	p, err := core.PartitionFromLabels(labels)
	require.NoError(t, err)

	return p
}
