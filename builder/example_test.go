package builder_test

import (
	"fmt"

	"github.com/MihaiBandur/HackathonQuantic/builder"
)

// ExampleBuildGraph overlays a star on a cycle over the same vertices.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Star(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.EdgeCount())
	fmt.Println(g.Edges())

	// Output:
	// 4 5
	// [[0 1] [0 2] [0 3] [1 2] [2 3]]
}

// ExampleRandomSparse draws a reproducible random graph.
func ExampleRandomSparse() {
	opts := []builder.BuilderOption{builder.WithSeed(42)}
	a, _ := builder.BuildGraph(opts, builder.RandomSparse(12, 0.3))
	b, _ := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomSparse(12, 0.3))
	fmt.Println(a.Order(), a.EdgeCount() == b.EdgeCount())

	// Output:
	// 12 true
}
