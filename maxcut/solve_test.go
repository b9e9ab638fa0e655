package maxcut_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

func TestSolve_Dispatch(t *testing.T) {
	g := randomGraph(t, 10, 0.4, 12)
	want, err := maxcut.Exact(g)
	require.NoError(t, err)

	for _, algo := range maxcut.Algorithms() {
		t.Run(algo.String(), func(t *testing.T) {
			opts := maxcut.DefaultOptions()
			opts.Algorithm = algo
			res, err := maxcut.Solve(context.Background(), g, opts)
			require.NoError(t, err)
			assert.Equal(t, algo, res.Algorithm)
			assert.LessOrEqual(t, res.Cut, want.Cut)
			assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
		})
	}
}

func TestSolve_Errors(t *testing.T) {
	g := cycle(t, 4)

	_, err := maxcut.Solve(context.Background(), nil, maxcut.DefaultOptions())
	require.ErrorIs(t, err, maxcut.ErrNilGraph)

	opts := maxcut.DefaultOptions()
	opts.Algorithm = maxcut.Algorithm(99)
	_, err = maxcut.Solve(context.Background(), g, opts)
	require.ErrorIs(t, err, maxcut.ErrUnsupportedAlgorithm)

	opts = maxcut.DefaultOptions()
	opts.Workers = -2
	_, err = maxcut.Solve(context.Background(), g, opts)
	require.ErrorIs(t, err, maxcut.ErrBadOptions)

	opts = maxcut.DefaultOptions()
	opts.Algorithm = maxcut.AlgoMultiStart
	opts.Restarts = 0
	_, err = maxcut.Solve(context.Background(), g, opts)
	require.ErrorIs(t, err, maxcut.ErrBadOptions)

	opts = maxcut.DefaultOptions()
	opts.ExactLimit = 3
	_, err = maxcut.Solve(context.Background(), g, opts)
	require.ErrorIs(t, err, maxcut.ErrTooManyVertices)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = maxcut.Solve(ctx, g, maxcut.DefaultOptions())
	require.ErrorIs(t, err, maxcut.ErrCanceled)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]maxcut.Algorithm{
		"exact":      maxcut.AlgoExact,
		" Exact ":    maxcut.AlgoExact,
		"brute":      maxcut.AlgoExact,
		"local":      maxcut.AlgoLocal,
		"heuristic":  maxcut.AlgoLocal,
		"greedy":     maxcut.AlgoGreedy,
		"MULTISTART": maxcut.AlgoMultiStart,
		"maxsat":     maxcut.AlgoMaxSAT,
	}
	for in, want := range cases {
		got, err := maxcut.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := maxcut.ParseAlgorithm("qaoa")
	require.ErrorIs(t, err, maxcut.ErrUnsupportedAlgorithm)

	for _, a := range maxcut.Algorithms() {
		back, err := maxcut.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
	assert.Equal(t, "Algorithm(42)", maxcut.Algorithm(42).String())
}
