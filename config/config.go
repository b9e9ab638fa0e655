package config

import (
	"errors"
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

// ErrInvalid is wrapped by every validation failure returned from Load and
// Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix is prepended (with an underscore) to every environment key.
const EnvPrefix = "MAXCUT"

// Keys shared by viper, the config file and the command-line flags.
const (
	KeyAlgorithms  = "algorithms"
	KeyExactLimit  = "exact-limit"
	KeyWorkers     = "workers"
	KeyRestarts    = "restarts"
	KeySeed        = "seed"
	KeyGraphs      = "graphs"
	KeyMinN        = "min-n"
	KeyMaxN        = "max-n"
	KeyProbability = "p"
	KeyOutDir      = "out"
	KeyRender      = "render"
	KeyPNG         = "png"
	KeyParallelism = "parallelism"
	KeyVerbose     = "verbose"
)

// AllAlgorithms is the algorithm list entry that expands to every solver.
const AllAlgorithms = "all"

// Config is the decoded, validated configuration of one command run.
type Config struct {
	// Algorithms lists solver names in the order they run and appear in reports.
	Algorithms []string `mapstructure:"algorithms" validate:"required,min=1,dive,algorithm"`

	// ExactLimit rejects exhaustive search above this many vertices; 0 disables it.
	ExactLimit int `mapstructure:"exact-limit" validate:"gte=0,lte=63"`

	Workers  int   `mapstructure:"workers" validate:"gte=1"`
	Restarts int   `mapstructure:"restarts" validate:"gte=1"`
	Seed     int64 `mapstructure:"seed"`

	// Batch generation.
	Graphs      int     `mapstructure:"graphs" validate:"gte=1"`
	MinN        int     `mapstructure:"min-n" validate:"gte=1"`
	MaxN        int     `mapstructure:"max-n" validate:"gtefield=MinN"`
	Probability float64 `mapstructure:"p" validate:"gte=0,lte=1"`

	OutDir      string `mapstructure:"out" validate:"required"`
	Render      bool   `mapstructure:"render"`
	PNG         bool   `mapstructure:"png"`
	Parallelism int    `mapstructure:"parallelism" validate:"gte=1"`

	Verbose bool `mapstructure:"verbose"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAlgorithms, []string{"exact", "local"})
	v.SetDefault(KeyExactLimit, 24)
	v.SetDefault(KeyWorkers, runtime.NumCPU())
	v.SetDefault(KeyRestarts, 8)
	v.SetDefault(KeySeed, 1)
	v.SetDefault(KeyGraphs, 5)
	v.SetDefault(KeyMinN, 15)
	v.SetDefault(KeyMaxN, 20)
	v.SetDefault(KeyProbability, 0.3)
	v.SetDefault(KeyOutDir, "maxcut_outputs")
	v.SetDefault(KeyRender, true)
	v.SetDefault(KeyPNG, false)
	v.SetDefault(KeyParallelism, 1)
	v.SetDefault(KeyVerbose, false)
}

// New returns a viper instance with defaults and environment lookup
// configured. Flags may be bound to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file at path into v, decodes the merged
// settings and validates them. With an empty path it looks for "maxcut.*"
// in the working directory and silently continues when none exists.
// When keys are given only those settings are validated, so a command is
// not rejected over values it never reads.
func Load(v *viper.Viper, path string, keys ...string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		v.SetConfigName("maxcut")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("config: read: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Algorithms = normalizeAlgorithms(cfg.Algorithms)

	if err := ValidateKeys(cfg, keys...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// normalizeAlgorithms splits comma-joined entries, lower-cases them, maps
// aliases to canonical names, expands "all" and drops duplicates while
// keeping first-seen order. Unknown names are kept for Validate to report.
func normalizeAlgorithms(in []string) []string {
	out := make([]string, 0, len(in))
	add := func(name string) {
		if a, err := maxcut.ParseAlgorithm(name); err == nil {
			name = a.String()
		}
		if name != "" && !slices.Contains(out, name) {
			out = append(out, name)
		}
	}
	for _, entry := range in {
		for _, name := range strings.Split(entry, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == AllAlgorithms {
				for _, a := range maxcut.Algorithms() {
					add(a.String())
				}
				continue
			}
			add(name)
		}
	}

	return out
}

// SolverAlgorithms resolves Algorithms to maxcut values, preserving order.
func (c Config) SolverAlgorithms() ([]maxcut.Algorithm, error) {
	out := make([]maxcut.Algorithm, 0, len(c.Algorithms))
	for _, name := range c.Algorithms {
		a, err := maxcut.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	return out, nil
}

// SolveOptions returns the maxcut options for running algo under c.
func (c Config) SolveOptions(algo maxcut.Algorithm) maxcut.Options {
	return maxcut.Options{
		Algorithm:  algo,
		ExactLimit: c.ExactLimit,
		Workers:    c.Workers,
		Restarts:   c.Restarts,
		Seed:       c.Seed,
	}
}
