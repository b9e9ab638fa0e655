package bfs

import (
	"slices"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// sweep explores every component of g in order of its smallest vertex and
// calls visit with the component's BFS order and the depth table. One depth
// table and one queue serve all components, so a sweep allocates O(N) in
// total. order aliases the queue and is valid only during visit.
//
// Complexity: O(N + E).
func sweep(g *core.Graph, visit func(order, depth []int)) {
	n := g.Order()
	depth := make([]int, n)
	for i := range depth {
		depth[i] = Unreached
	}
	queue := make([]int, 0, n)

	var head, start int
	for root := 0; root < n; root++ {
		if depth[root] != Unreached {
			continue
		}
		start = len(queue)
		depth[root] = 0
		queue = append(queue, root)
		for head = start; head < len(queue); head++ {
			v := queue[head]
			g.ForEachNeighbor(v, func(u int) {
				if depth[u] == Unreached {
					depth[u] = depth[v] + 1
					queue = append(queue, u)
				}
			})
		}
		visit(queue[start:], depth)
	}
}

// Components returns the connected components of g, each sorted ascending,
// ordered by their smallest vertex. Isolated vertices form singleton
// components. A nil graph yields nil.
//
// Complexity: O(N + E + N log N).
func Components(g *core.Graph) [][]int {
	if g == nil {
		return nil
	}

	var comps [][]int
	sweep(g, func(order, _ []int) {
		comp := slices.Clone(order)
		slices.Sort(comp)
		comps = append(comps, comp)
	})

	return comps
}

// TwoColoring tries to label g so every edge joins different labels.
//
// Each component is explored from its smallest vertex, which gets label 0;
// every other vertex gets its BFS depth parity. When g is bipartite the
// result is a maximum cut (Cut = EdgeCount) and ok is true. Otherwise the
// parity labelling is still returned with ok false.
//
// Complexity: O(N + E).
func TwoColoring(g *core.Graph) (p core.Partition, ok bool) {
	if g == nil {
		return core.NewPartition(0), true
	}
	p = core.NewPartition(g.Order())
	sweep(g, func(order, depth []int) {
		for _, v := range order {
			p.Set(v, depth[v]&1)
		}
	})

	for _, e := range g.Edges() {
		if p.Label(e[0]) == p.Label(e[1]) {
			return p, false
		}
	}

	return p, true
}
