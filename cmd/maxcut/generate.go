package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MihaiBandur/HackathonQuantic/builder"
	"github.com/MihaiBandur/HackathonQuantic/config"
	"github.com/MihaiBandur/HackathonQuantic/converters"
)

func newGenerateCommand(input *Input) *cobra.Command {
	var (
		n    int
		path string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random G(n, p) graph as a text adjacency matrix",
		Args:  cobra.NoArgs,
	}
	cmd.Flags().IntVar(&n, "n", 10, "number of vertices")
	cmd.Flags().Float64(config.KeyProbability, 0.3, "edge probability")
	cmd.Flags().Int64(config.KeySeed, 1, "random seed")
	cmd.Flags().StringVar(&path, "out", "", "output file")
	_ = cmd.MarkFlagRequired("out")

	keys := sameKeys(config.KeyProbability, config.KeySeed)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := input.loadConfig(cmd, keys, config.KeyProbability, config.KeySeed)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(cfg.Seed)},
			builder.RandomSparse(n, cfg.Probability),
		)
		if err != nil {
			return err
		}
		if err = converters.WriteMatrixFile(path, g); err != nil {
			return err
		}
		log.Debug("graph generated",
			zap.Int("n", g.Order()),
			zap.Int("edges", g.EdgeCount()),
			zap.Float64("p", cfg.Probability),
			zap.Int64("seed", cfg.Seed))
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: n=%d edges=%d\n", path, g.Order(), g.EdgeCount())

		return nil
	}

	return cmd
}
