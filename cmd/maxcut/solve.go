package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MihaiBandur/HackathonQuantic/config"
	"github.com/MihaiBandur/HackathonQuantic/converters"
	"github.com/MihaiBandur/HackathonQuantic/experiment"
)

func newSolveCommand(ctx context.Context, input *Input) *cobra.Command {
	var (
		dotDir string
		png    bool
	)
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve the graph stored in FILE (text adjacency matrix)",
		Args:  cobra.ExactArgs(1),
	}
	cmd.Flags().StringSliceP("algorithm", "a", []string{"exact", "local"}, "algorithms to run (exact, local, greedy, multistart, maxsat or all)")
	cmd.Flags().Int(config.KeyExactLimit, 24, "largest graph accepted by exact search (0 = no limit)")
	cmd.Flags().Int(config.KeyWorkers, runtime.NumCPU(), "concurrent shards for exact search and multistart")
	cmd.Flags().Int(config.KeyRestarts, 8, "multistart restarts")
	cmd.Flags().Int64(config.KeySeed, 1, "multistart seed")
	cmd.Flags().StringVar(&dotDir, "dot", "", "write DOT drawings into this directory")
	cmd.Flags().BoolVar(&png, "png", false, "also render drawings to PNG with graphviz")

	keys := sameKeys(config.KeyExactLimit, config.KeyWorkers, config.KeyRestarts, config.KeySeed)
	keys["algorithm"] = config.KeyAlgorithms

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, log, err := input.loadConfig(cmd, keys)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		g, err := converters.ReadMatrixFile(args[0])
		if err != nil {
			return err
		}
		runner, err := experiment.NewRunner(cfg, log)
		if err != nil {
			return err
		}
		id := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
		log.Debug("graph loaded", zap.String("graph", id), zap.Int("n", g.Order()), zap.Int("edges", g.EdgeCount()))

		o, err := runner.Solve(ctx, experiment.Job{ID: id, N: g.Order()}, g)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "graph %s: n=%d edges=%d\n", id, g.Order(), g.EdgeCount())
		for _, res := range o.Results {
			fmt.Fprintf(out, "%-10s cut=%d partition=%s time=%.6fs\n",
				res.Algorithm, res.Cut, converters.FormatPartition(res.Partition), res.Elapsed.Seconds())
		}
		for _, issue := range o.Issues {
			fmt.Fprintf(out, "warning: inconsistent results: %s\n", issue)
		}

		if dotDir == "" {
			return nil
		}
		if err = os.MkdirAll(dotDir, 0o755); err != nil {
			return err
		}
		if err = runner.WriteDrawings(ctx, dotDir, &o, png); err != nil {
			return err
		}
		for _, f := range o.Files {
			fmt.Fprintf(out, "wrote %s\n", f)
		}

		return nil
	}

	return cmd
}
