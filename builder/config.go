// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors. It is passed by
// value so constructors cannot affect each other's view of the options.
type builderConfig struct {
	// rng drives stochastic constructors; nil means no randomness available.
	rng *rand.Rand
}

// newBuilderConfig applies options in order (later overrides earlier).
//
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
