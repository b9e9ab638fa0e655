package maxcut_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/MihaiBandur/HackathonQuantic/builder"
	"github.com/MihaiBandur/HackathonQuantic/core"
	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

// SolverSuite runs the properties every algorithm must satisfy through Solve.
type SolverSuite struct {
	suite.Suite
	algo maxcut.Algorithm
}

func (s *SolverSuite) solve(g *core.Graph) maxcut.Result {
	opts := maxcut.DefaultOptions()
	opts.Algorithm = s.algo
	opts.Workers = 2
	res, err := maxcut.Solve(context.Background(), g, opts)
	require.NoError(s.T(), err)
	require.Equal(s.T(), s.algo, res.Algorithm)

	return res
}

func (s *SolverSuite) build(cons ...builder.Constructor) *core.Graph {
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(s.T(), err)

	return g
}

func (s *SolverSuite) exact() bool {
	return s.algo == maxcut.AlgoExact || s.algo == maxcut.AlgoMaxSAT
}

// TestEmpty checks that graphs without edges yield cut 0.
func (s *SolverSuite) TestEmpty() {
	for _, n := range []int{0, 1, 6} {
		res := s.solve(s.build(builder.Empty(n)))
		require.Zero(s.T(), res.Cut)
		require.Equal(s.T(), n, res.Partition.Len())
	}
}

// TestReportedCut checks that Cut matches the returned partition.
func (s *SolverSuite) TestReportedCut() {
	for _, g := range []*core.Graph{
		s.build(builder.Wheel(7)),
		s.build(builder.Grid(3, 4)),
		s.build(builder.Complete(6)),
	} {
		res := s.solve(g)
		cut, err := g.CutValue(res.Partition)
		require.NoError(s.T(), err)
		require.Equal(s.T(), cut, res.Cut)
		require.True(s.T(), res.MaskValid)
	}
}

// TestHalfOfEdges checks the 2·cut ≥ E bound shared by every algorithm.
func (s *SolverSuite) TestHalfOfEdges() {
	g := s.build(builder.Complete(7))
	res := s.solve(g)
	require.GreaterOrEqual(s.T(), 2*res.Cut, g.EdgeCount())
}

// TestBipartiteOptimum checks that exact solvers cut every edge of a
// bipartite graph.
func (s *SolverSuite) TestBipartiteOptimum() {
	if !s.exact() {
		s.T().Skip("heuristic")
	}
	for _, g := range []*core.Graph{
		s.build(builder.CompleteBipartite(3, 4)),
		s.build(builder.Grid(3, 3)),
		s.build(builder.Cycle(8)),
	} {
		require.Equal(s.T(), g.EdgeCount(), s.solve(g).Cut)
	}
}

// TestCompleteGraph checks ⌊n/2⌋·⌈n/2⌉ on K_n for exact solvers.
func (s *SolverSuite) TestCompleteGraph() {
	if !s.exact() {
		s.T().Skip("heuristic")
	}
	for n := 2; n <= 8; n++ {
		require.Equal(s.T(), (n/2)*((n+1)/2), s.solve(s.build(builder.Complete(n))).Cut, "K_%d", n)
	}
}

func TestSolverSuites(t *testing.T) {
	for _, a := range maxcut.Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			suite.Run(t, &SolverSuite{algo: a})
		})
	}
}
