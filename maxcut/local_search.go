package maxcut

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// LocalSearch runs single-flip local search on g from the all-zero labelling.
//
// Each pass visits vertices 0..N−1 in order and flips vertex i when the
// number of neighbours sharing its side is strictly greater than the number
// on the opposite side; flips take effect immediately for later vertices in
// the same pass. The search stops after the first pass with no flip, so the
// result is a local optimum. Every flip raises the cut by at least one,
// hence Passes ≤ EdgeCount()+1.
//
// A nil graph yields the zero Result.
//
// Complexity: O((E+1) · (N + E)) time worst case, O(N) space.
func LocalSearch(g *core.Graph) Result {
	if g == nil {
		return Result{Algorithm: AlgoLocal}
	}

	return localSearch(g, core.NewPartition(g.Order()), AlgoLocal)
}

// LocalSearchFrom runs the same loop as LocalSearch from a copy of start.
//
// Errors: ErrNilGraph, core.ErrPartitionSize when start.Len() != g.Order().
func LocalSearchFrom(g *core.Graph, start core.Partition) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if start.Len() != g.Order() {
		return Result{}, fmt.Errorf("start of %d vertices for graph of %d: %w", start.Len(), g.Order(), core.ErrPartitionSize)
	}

	return localSearch(g, start.Clone(), AlgoLocal), nil
}

// localSearch improves p in place and packages the result.
func localSearch(g *core.Graph, p core.Partition, algo Algorithm) Result {
	var (
		n       = g.Order()
		passes  int
		flips   int
		changed bool
		i       int
	)
	for {
		passes++
		changed = false
		for i = 0; i < n; i++ {
			same, different := g.SideCounts(p, i)
			if same > different {
				p.Flip(i)
				flips++
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	// Sizes match by construction.
	cut, _ := g.CutValue(p)
	res := newResult(algo, p, cut)
	res.Passes = passes
	res.Flips = flips

	return res
}
