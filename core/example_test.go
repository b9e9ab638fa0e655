package core_test

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// ExampleGraph_CutValue evaluates a bipartition of the 4-cycle.
func ExampleGraph_CutValue() {
	g, _ := core.NewGraphFromMatrix([][]int{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
	})
	p, _ := core.PartitionFromMask(0b1010, g.Order())

	cut, _ := g.CutValue(p)
	fmt.Println("labels:", p)
	fmt.Println("cut:", cut, "of", g.EdgeCount())
	fmt.Println("local optimum:", g.IsLocalOptimum(p))

	// Output:
	// labels: 0 1 0 1
	// cut: 4 of 4
	// local optimum: true
}

// ExampleBuilder assembles a star incrementally.
func ExampleBuilder() {
	b := core.NewBuilder(4)
	for leaf := 1; leaf < 4; leaf++ {
		_ = b.AddEdge(0, leaf)
	}
	g := b.Graph()
	fmt.Println(g.Order(), g.EdgeCount(), g.Degree(0))
	fmt.Println(g.Edges())

	// Output:
	// 4 3 3
	// [[0 1] [0 2] [0 3]]
}
