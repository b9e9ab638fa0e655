package maxcut

import (
	"fmt"
	"strconv"

	"github.com/crillab/gophersat/maxsat"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// MaxSAT computes a maximum cut through a weighted partial MaxSAT encoding
// solved by gophersat.
//
// Each vertex i is a boolean x_i (true = label 1). Every edge {i,j}
// contributes two unit-weight soft clauses (x_i ∨ x_j) and (¬x_i ∨ ¬x_j):
// a cut edge satisfies both, an uncut edge violates exactly one. The optimal
// cost is therefore the number of uncut edges and Cut = EdgeCount() − cost.
// Isolated vertices take label 0.
//
// The result is optimal but the partition may differ from Exact's when
// several partitions attain the maximum.
//
// Errors: ErrNilGraph, ErrSolverFailed.
func MaxSAT(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.Order()
	p := core.NewPartition(n)
	if g.EdgeCount() == 0 {
		return newResult(AlgoMaxSAT, p, 0), nil
	}

	edges := g.Edges()
	constrs := make([]maxsat.Constr, 0, 2*len(edges))
	for _, e := range edges {
		a, b := maxsat.Var(vertexVar(e[0])), maxsat.Var(vertexVar(e[1]))
		constrs = append(constrs,
			maxsat.SoftClause(a, b),
			maxsat.SoftClause(a.Negation(), b.Negation()),
		)
	}

	model, cost := maxsat.New(constrs...).Solve()
	if model == nil || cost < 0 {
		return Result{}, fmt.Errorf("no model: %w", ErrSolverFailed)
	}
	for i := 0; i < n; i++ {
		if model[vertexVar(i)] {
			p.Set(i, 1)
		}
	}

	cut, err := g.CutValue(p)
	if err != nil {
		return Result{}, err
	}
	if want := g.EdgeCount() - cost; cut != want {
		return Result{}, fmt.Errorf("model cuts %d edges, cost implies %d: %w", cut, want, ErrSolverFailed)
	}

	return newResult(AlgoMaxSAT, p, cut), nil
}

// vertexVar names the boolean variable of vertex i.
func vertexVar(i int) string { return "x" + strconv.Itoa(i) }
