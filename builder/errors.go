// SPDX-License-Identifier: MIT
// Package: hackathonquantic/builder
//
// errors.go - sentinel errors for the builder package.
//
// Constructors wrap these with method context via %w; callers branch with
// errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the constructor's minimum or otherwise out of its domain.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a randomized
// construction that exhausted its attempts.
var ErrConstructFailed = errors.New("builder: construction failed")
