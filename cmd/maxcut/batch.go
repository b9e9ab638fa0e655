package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/MihaiBandur/HackathonQuantic/config"
	"github.com/MihaiBandur/HackathonQuantic/experiment"
)

func newBatchCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate random graphs, solve them and write drawings and CSV reports",
		Args:  cobra.NoArgs,
	}
	fs := cmd.Flags()
	fs.Int(config.KeyGraphs, 5, "number of graphs")
	fs.Int(config.KeyMinN, 15, "smallest graph order")
	fs.Int(config.KeyMaxN, 20, "largest graph order")
	fs.Float64(config.KeyProbability, 0.3, "edge probability")
	fs.Int64(config.KeySeed, 1, "batch seed")
	fs.String(config.KeyOutDir, "maxcut_outputs", "output directory")
	fs.StringSlice(config.KeyAlgorithms, []string{"exact", "local"}, "algorithms to run (exact, local, greedy, multistart, maxsat or all)")
	fs.Int(config.KeyExactLimit, 24, "largest graph accepted by exact search (0 = no limit)")
	fs.Int(config.KeyWorkers, runtime.NumCPU(), "concurrent shards for exact search and multistart")
	fs.Int(config.KeyRestarts, 8, "multistart restarts")
	fs.Int(config.KeyParallelism, 1, "graphs solved concurrently")
	fs.Bool(config.KeyRender, true, "write DOT drawings")
	fs.Bool(config.KeyPNG, false, "render drawings to PNG with graphviz")

	keys := sameKeys(
		config.KeyGraphs, config.KeyMinN, config.KeyMaxN, config.KeyProbability,
		config.KeySeed, config.KeyOutDir, config.KeyAlgorithms, config.KeyExactLimit,
		config.KeyWorkers, config.KeyRestarts, config.KeyParallelism,
		config.KeyRender, config.KeyPNG,
	)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := input.loadConfig(cmd, keys)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		runner, err := experiment.NewRunner(cfg, log)
		if err != nil {
			return err
		}
		outs, err := runner.Run(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, o := range outs {
			for _, res := range o.Results {
				fmt.Fprintf(out, "[%s] %s MaxCut = %d, Time = %.6fs\n",
					o.Job.ID, res.Algorithm, res.Cut, res.Elapsed.Seconds())
			}
		}
		fmt.Fprintf(out, "results: %s\n", filepath.Join(cfg.OutDir, experiment.ResultsFile))

		return nil
	}

	return cmd
}
