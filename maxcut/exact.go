package maxcut

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// ctxCheckMask sets how often exact search polls the context: once every
// ctxCheckMask+1 masks.
const ctxCheckMask = 4095

// Exact returns a maximum cut of g by exhaustive enumeration, sequentially
// and without a size limit beyond MaxExactVertices.
//
// Masks are visited in increasing order starting at 0 (cut 0) and a mask
// replaces the incumbent only when its cut is strictly greater, so the
// returned mask is the smallest one achieving the maximum. A graph with no
// edges yields mask 0, cut 0.
//
// Complexity: O(2^N · N) time, O(1) extra space.
func Exact(g *core.Graph) (Result, error) {
	return ExactContext(context.Background(), g, DefaultOptions())
}

// ExactContext is Exact with cancellation, Options.ExactLimit and optional
// sharding across Options.Workers goroutines. Sharded and sequential runs
// return identical results: each shard keeps its first best mask and shards
// are reduced in ascending mask order with the same strict comparison.
//
// The context is polled every 4096 masks; when it ends, the error wraps both
// ErrCanceled and ctx.Err() and no partial result is returned.
//
// Options.Algorithm is ignored.
func ExactContext(ctx context.Context, g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := validateOptions(Options{ExactLimit: opts.ExactLimit, Workers: opts.Workers}); err != nil {
		return Result{}, err
	}
	n := g.Order()
	if err := checkExactSize(n, opts.ExactLimit); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, canceled(err)
	}

	total := uint64(1) << uint(n)
	shards := uint64(workerCount(opts.Workers))
	if shards > total {
		shards = total
	}

	var (
		bestMask uint64
		bestCut  int
		err      error
	)
	if shards == 1 {
		bestMask, bestCut, err = exactRange(ctx, g, 0, total)
	} else {
		bestMask, bestCut, err = exactSharded(ctx, g, total, shards)
	}
	if err != nil {
		return Result{}, err
	}

	p, err := core.PartitionFromMask(bestMask, n)
	if err != nil {
		return Result{}, err
	}
	res := newResult(AlgoExact, p, bestCut)
	res.Evaluated = total

	return res, nil
}

// exactRange scans masks lo..hi-1 and returns the first mask with the
// largest cut. lo < hi is required.
func exactRange(ctx context.Context, g *core.Graph, lo, hi uint64) (uint64, int, error) {
	var (
		bestMask = lo
		bestCut  = g.CutValueMask(lo)
		mask     uint64
		cut      int
	)
	for mask = lo + 1; mask < hi; mask++ {
		if mask&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return 0, 0, canceled(err)
			}
		}
		cut = g.CutValueMask(mask)
		if cut > bestCut {
			bestCut = cut
			bestMask = mask
		}
	}

	return bestMask, bestCut, nil
}

// exactSharded splits 0..total-1 into contiguous shards, scans them
// concurrently and reduces the per-shard winners in shard order.
func exactSharded(ctx context.Context, g *core.Graph, total, shards uint64) (uint64, int, error) {
	type winner struct {
		mask uint64
		cut  int
	}
	wins := make([]winner, shards)
	size := total / shards

	eg, ectx := errgroup.WithContext(ctx)
	for s := uint64(0); s < shards; s++ {
		lo := s * size
		hi := lo + size
		if s == shards-1 {
			hi = total
		}
		eg.Go(func() error {
			m, c, err := exactRange(ectx, g, lo, hi)
			if err != nil {
				return err
			}
			wins[s] = winner{mask: m, cut: c}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, 0, err
	}

	best := wins[0]
	for _, w := range wins[1:] {
		if w.cut > best.cut {
			best = w
		}
	}

	return best.mask, best.cut, nil
}
