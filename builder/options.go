// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// options.go - functional options for BuildGraph.
//
// Option constructors validate their arguments and panic on meaningless
// input; constructors themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand attaches an explicit RNG. The RNG is consumed by stochastic
// constructors in call order and must not be shared across goroutines.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh deterministic RNG from seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
