// Package maxcut - unified dispatcher.
//
// Solve validates Options, routes to the selected solver and stamps the
// wall time. Solvers themselves never log and never panic on user input.
package maxcut

import (
	"context"
	"fmt"
	"time"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// Solve runs opts.Algorithm on g.
//
// Errors: ErrNilGraph, ErrBadOptions, ErrUnsupportedAlgorithm, plus whatever
// the selected solver returns (ErrTooManyVertices, ErrCanceled,
// ErrSolverFailed).
func Solve(ctx context.Context, g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, canceled(err)
	}

	var (
		res   Result
		err   error
		start = time.Now()
	)
	switch opts.Algorithm {
	case AlgoExact:
		res, err = ExactContext(ctx, g, opts)
	case AlgoLocal:
		res = LocalSearch(g)
	case AlgoGreedy:
		res = Greedy(g)
	case AlgoMultiStart:
		res, err = MultiStart(ctx, g, opts.Restarts, opts.Seed, opts.Workers)
	case AlgoMaxSAT:
		res, err = MaxSAT(g)
	default:
		return Result{}, fmt.Errorf("%v: %w", opts.Algorithm, ErrUnsupportedAlgorithm)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opts.Algorithm, err)
	}
	res.Elapsed = time.Since(start)

	return res, nil
}
