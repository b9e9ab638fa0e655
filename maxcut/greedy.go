package maxcut

import "github.com/MihaiBandur/HackathonQuantic/core"

// Greedy builds a cut in a single pass: vertex 0 goes to side 0 and every
// later vertex u is placed against the already-placed neighbours v < u.
// Placing u on side 0 would cut its placed neighbours on side 1 and vice
// versa; u goes to side 0 only when that cuts strictly more, otherwise to
// side 1.
//
// A nil graph yields the zero Result.
//
// Complexity: O(N + E).
func Greedy(g *core.Graph) Result {
	if g == nil {
		return Result{Algorithm: AlgoGreedy}
	}
	n := g.Order()
	p := core.NewPartition(n)

	var cutIf0, cutIf1 int
	for u := 1; u < n; u++ {
		cutIf0, cutIf1 = 0, 0
		g.ForEachNeighbor(u, func(v int) {
			if v >= u {
				return
			}
			if p.Label(v) == 1 {
				cutIf0++
			} else {
				cutIf1++
			}
		})
		if cutIf0 <= cutIf1 {
			p.Set(u, 1)
		}
	}

	cut, _ := g.CutValue(p)
	res := newResult(AlgoGreedy, p, cut)
	res.Passes = 1

	return res
}
