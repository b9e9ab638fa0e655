// Package maxcut - option validation shared by the dispatcher and the
// option-aware solvers. No logging, no panics; sentinel errors only.
package maxcut

import "fmt"

// validateOptions checks Options without looking at the graph.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.ExactLimit < 0 {
		return fmt.Errorf("exact limit %d: %w", opts.ExactLimit, ErrBadOptions)
	}
	if opts.Workers < 0 {
		return fmt.Errorf("workers %d: %w", opts.Workers, ErrBadOptions)
	}
	if opts.Restarts < 0 {
		return fmt.Errorf("restarts %d: %w", opts.Restarts, ErrBadOptions)
	}
	if opts.Algorithm < 0 || int(opts.Algorithm) >= len(algoNames) {
		return fmt.Errorf("%v: %w", opts.Algorithm, ErrUnsupportedAlgorithm)
	}
	if opts.Algorithm == AlgoMultiStart && opts.Restarts < 1 {
		return fmt.Errorf("multistart needs at least one restart: %w", ErrBadOptions)
	}

	return nil
}

// checkExactSize enforces the hard width ceiling and the caller's limit.
func checkExactSize(n, limit int) error {
	if n > MaxExactVertices {
		return fmt.Errorf("n=%d > %d: %w", n, MaxExactVertices, ErrTooManyVertices)
	}
	if limit > 0 && n > limit {
		return fmt.Errorf("n=%d > limit %d: %w", n, limit, ErrTooManyVertices)
	}

	return nil
}

// workerCount normalises Options.Workers to at least one.
func workerCount(w int) int {
	if w < 1 {
		return 1
	}

	return w
}

// canceled wraps a context error so both ErrCanceled and the context
// sentinel match with errors.Is.
func canceled(err error) error {
	return fmt.Errorf("%w: %w", ErrCanceled, err)
}
