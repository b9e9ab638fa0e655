package maxcut

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// MultiStart runs LocalSearch from `restarts` starting labellings and keeps
// the best. Restart 0 is the all-zero start, so the result is never worse
// than LocalSearch(g). Restarts k ≥ 1 start from a random labelling drawn
// from a stream derived from (seed, k).
//
// Up to `workers` restarts run concurrently (≤ 1 means sequential). The
// winner is chosen by strict ">" in restart order, so the output depends only
// on (g, restarts, seed). Passes and Flips describe the winning run;
// Evaluated is the number of restarts.
//
// Errors: ErrNilGraph, ErrBadOptions (restarts < 1 or workers < 0),
// ErrCanceled wrapping ctx.Err().
//
// Complexity: restarts × LocalSearch.
func MultiStart(ctx context.Context, g *core.Graph, restarts int, seed int64, workers int) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if restarts < 1 {
		return Result{}, fmt.Errorf("restarts %d: %w", restarts, ErrBadOptions)
	}
	if workers < 0 {
		return Result{}, fmt.Errorf("workers %d: %w", workers, ErrBadOptions)
	}

	n := g.Order()
	runs := make([]Result, restarts)

	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(workerCount(workers))
	for k := 0; k < restarts; k++ {
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return canceled(err)
			}
			start := core.NewPartition(n)
			if k > 0 {
				start = randomPartition(n, streamRNG(seed, k))
			}
			runs[k] = localSearch(g, start, AlgoMultiStart)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	best := runs[0]
	for _, r := range runs[1:] {
		if r.Cut > best.Cut {
			best = r
		}
	}
	best.Evaluated = uint64(restarts)

	return best, nil
}
