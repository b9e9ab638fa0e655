package maxcut_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MihaiBandur/HackathonQuantic/core"
	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

// TestScenarios pins both core solvers on small graphs with known answers.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name      string
		g         func(t testing.TB) *core.Graph
		exactMask uint64
		cut       int
		localMask uint64
		localCut  int
		maxPasses int
	}{
		{
			name:      "empty N=4",
			g:         func(t testing.TB) *core.Graph { return graphFromEdges(t, 4) },
			exactMask: 0, cut: 0,
			localMask: 0, localCut: 0,
			maxPasses: 1,
		},
		{
			name:      "single edge",
			g:         func(t testing.TB) *core.Graph { return graphFromEdges(t, 2, [2]int{0, 1}) },
			exactMask: 0b01, cut: 1,
			localMask: 0b01, localCut: 1,
			maxPasses: 2,
		},
		{
			name:      "triangle",
			g:         func(t testing.TB) *core.Graph { return cycle(t, 3) },
			exactMask: 0b001, cut: 2,
			localMask: 0b001, localCut: 2,
			maxPasses: 2,
		},
		{
			name:      "4-cycle",
			g:         func(t testing.TB) *core.Graph { return cycle(t, 4) },
			exactMask: 0b0101, cut: 4,
			localMask: 0b0101, localCut: 4,
			maxPasses: 2,
		},
		{
			name:      "star N=5",
			g:         func(t testing.TB) *core.Graph { return star(t, 5) },
			exactMask: 0b00001, cut: 4,
			localMask: 0b00001, localCut: 4,
			maxPasses: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := tc.g(t)

			ex, err := maxcut.Exact(g)
			require.NoError(t, err)
			assert.Equal(t, tc.cut, ex.Cut)
			assert.True(t, ex.MaskValid)
			assert.Equal(t, tc.exactMask, ex.Mask)
			assert.Equal(t, uint64(1)<<uint(g.Order()), ex.Evaluated)
			assert.Equal(t, maxcut.AlgoExact, ex.Algorithm)

			ls := maxcut.LocalSearch(g)
			assert.Equal(t, tc.localCut, ls.Cut)
			assert.Equal(t, tc.localMask, ls.Mask)
			assert.LessOrEqual(t, ls.Passes, tc.maxPasses)
			assert.True(t, g.IsLocalOptimum(ls.Partition))
			assert.Equal(t, maxcut.AlgoLocal, ls.Algorithm)
		})
	}
}

func TestSingleEdge_EitherMaskIsOptimal(t *testing.T) {
	g := graphFromEdges(t, 2, [2]int{0, 1})
	res, err := maxcut.Exact(g)
	require.NoError(t, err)
	assert.Contains(t, []uint64{0b01, 0b10}, res.Mask)
}

func TestEmptyOrderGraph(t *testing.T) {
	g := graphFromEdges(t, 0)

	ex, err := maxcut.Exact(g)
	require.NoError(t, err)
	assert.Equal(t, 0, ex.Cut)
	assert.Equal(t, uint64(0), ex.Mask)
	assert.Equal(t, 0, ex.Partition.Len())

	ls := maxcut.LocalSearch(g)
	assert.Equal(t, 0, ls.Cut)
	assert.Equal(t, 1, ls.Passes)
	assert.Equal(t, 0, ls.Flips)

	gr := maxcut.Greedy(g)
	assert.Equal(t, 0, gr.Cut)

	ms, err := maxcut.MaxSAT(g)
	require.NoError(t, err)
	assert.Equal(t, 0, ms.Cut)
}
