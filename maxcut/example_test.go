package maxcut_test

import (
	"context"
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/core"
	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

// ExampleExact solves the 4-cycle exhaustively.
func ExampleExact() {
	g, _ := core.NewGraphFromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	res, err := maxcut.Exact(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("mask=%04b cut=%d evaluated=%d\n", res.Mask, res.Cut, res.Evaluated)
	fmt.Println("labels:", res.Partition)

	// Output:
	// mask=0101 cut=4 evaluated=16
	// labels: 1 0 1 0
}

// ExampleLocalSearch shows the heuristic on a star: one flip of the centre
// cuts every edge, and a second pass confirms the local optimum.
func ExampleLocalSearch() {
	g, _ := core.NewGraphFromEdges(5, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}})

	res := maxcut.LocalSearch(g)
	fmt.Println("cut:", res.Cut, "passes:", res.Passes, "flips:", res.Flips)
	fmt.Println("labels:", res.Partition)

	// Output:
	// cut: 4 passes: 2 flips: 1
	// labels: 1 0 0 0 0
}

// ExampleSolve dispatches by name.
func ExampleSolve() {
	g, _ := core.NewGraphFromEdges(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})

	algo, _ := maxcut.ParseAlgorithm("maxsat")
	opts := maxcut.DefaultOptions()
	opts.Algorithm = algo

	res, err := maxcut.Solve(context.Background(), g, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Algorithm, res.Cut)

	// Output:
	// maxsat 2
}
