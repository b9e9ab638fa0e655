// Command maxcut solves, generates and benchmarks Max-Cut instances.
//
//	maxcut solve graph.txt --algorithm all --dot drawings
//	maxcut generate --n 12 --p 0.3 --seed 4 --out graph.txt
//	maxcut batch --graphs 5 --min-n 15 --max-n 20 --out results
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := createRootCommand(ctx, &Input{}, version).Execute(); err != nil {
		stop()
		os.Exit(1)
	}
}
