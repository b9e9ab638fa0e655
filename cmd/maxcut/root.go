package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/MihaiBandur/HackathonQuantic/config"
	"github.com/MihaiBandur/HackathonQuantic/logger"
)

// Input holds the persistent flags shared by every subcommand.
type Input struct {
	configFile string
	verbose    bool
}

func createRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "maxcut",
		Short:        "Solve the maximum cut problem on unweighted undirected graphs.",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&input.configFile, "config", "", "config file (yaml, toml or json); defaults to ./maxcut.*")
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newSolveCommand(ctx, input),
		newGenerateCommand(input),
		newBatchCommand(ctx, input),
	)

	return rootCmd
}

// bindFlags binds each flag named in keys to the config key it maps to.
// Flags that do not exist on fs are skipped.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for flag, key := range keys {
		f := fs.Lookup(flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	return nil
}

// loadConfig merges defaults, the config file, the environment and the
// flags listed in keys, then builds the logger the configuration asks for.
// A non-empty only limits validation to those config keys.
func (input *Input) loadConfig(cmd *cobra.Command, keys map[string]string, only ...string) (config.Config, *zap.Logger, error) {
	v := config.New()
	if err := bindFlags(v, cmd.Flags(), keys); err != nil {
		return config.Config{}, nil, err
	}
	cfg, err := config.Load(v, input.configFile, only...)
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := logger.New(cfg.Verbose || input.verbose)
	if err != nil {
		return config.Config{}, nil, err
	}

	return cfg, log, nil
}

// sameKeys maps every name to itself.
func sameKeys(names ...string) map[string]string {
	out := make(map[string]string, len(names))
	for _, n := range names {
		out[n] = n
	}

	return out
}
