package maxcut_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MihaiBandur/HackathonQuantic/core"
	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

func TestExact_MatchesBruteForceOverPartitions(t *testing.T) {
	g := randomGraph(t, 9, 0.5, 5)
	res, err := maxcut.Exact(g)
	require.NoError(t, err)

	// Reference: slow evaluator over every mask, first strict maximum.
	var (
		wantMask uint64
		wantCut  int
	)
	for mask := uint64(0); mask < 1<<9; mask++ {
		p, err := core.PartitionFromMask(mask, g.Order())
		require.NoError(t, err)
		cut, err := g.CutValue(p)
		require.NoError(t, err)
		if cut > wantCut {
			wantCut, wantMask = cut, mask
		}
	}
	assert.Equal(t, wantCut, res.Cut)
	assert.Equal(t, wantMask, res.Mask)

	cut, err := g.CutValue(res.Partition)
	require.NoError(t, err)
	assert.Equal(t, res.Cut, cut)
}

func TestExact_ShardedEqualsSequential(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4} {
		g := randomGraph(t, 12, 0.4, seed)
		seq, err := maxcut.Exact(g)
		require.NoError(t, err)

		for _, w := range []int{2, 3, 5, 8, 64} {
			opts := maxcut.DefaultOptions()
			opts.Workers = w
			par, err := maxcut.ExactContext(context.Background(), g, opts)
			require.NoError(t, err)
			assert.Equal(t, seq.Cut, par.Cut, "seed %d workers %d", seed, w)
			assert.Equal(t, seq.Mask, par.Mask, "seed %d workers %d", seed, w)
			assert.True(t, seq.Partition.Equal(par.Partition))
		}
	}

	// More workers than masks.
	g := graphFromEdges(t, 2, [2]int{0, 1})
	opts := maxcut.DefaultOptions()
	opts.Workers = 16
	res, err := maxcut.ExactContext(context.Background(), g, opts)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Mask)
}

func TestExact_SizeLimits(t *testing.T) {
	big := core.NewBuilder(maxcut.MaxExactVertices + 1).Graph()
	_, err := maxcut.Exact(big)
	require.ErrorIs(t, err, maxcut.ErrTooManyVertices)

	opts := maxcut.DefaultOptions()
	opts.ExactLimit = 4
	_, err = maxcut.ExactContext(context.Background(), cycle(t, 5), opts)
	require.ErrorIs(t, err, maxcut.ErrTooManyVertices)

	res, err := maxcut.ExactContext(context.Background(), cycle(t, 4), opts)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Cut)

	opts.ExactLimit = -1
	_, err = maxcut.ExactContext(context.Background(), cycle(t, 4), opts)
	require.ErrorIs(t, err, maxcut.ErrBadOptions)

	_, err = maxcut.Exact(nil)
	require.ErrorIs(t, err, maxcut.ErrNilGraph)
}

func TestExact_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := randomGraph(t, 20, 0.3, 9)
	for _, w := range []int{1, 4} {
		opts := maxcut.DefaultOptions()
		opts.Workers = w
		res, err := maxcut.ExactContext(ctx, g, opts)
		require.Error(t, err)
		assert.True(t, errors.Is(err, maxcut.ErrCanceled))
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 0, res.Partition.Len(), "no partial result")
	}
}
