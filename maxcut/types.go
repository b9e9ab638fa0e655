package maxcut

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// Sentinel errors returned by the solvers and the dispatcher.
var (
	// ErrNilGraph is returned when a nil *core.Graph is supplied.
	ErrNilGraph = errors.New("maxcut: graph is nil")

	// ErrTooManyVertices is returned by exact search when N exceeds
	// MaxExactVertices or the caller's Options.ExactLimit.
	ErrTooManyVertices = errors.New("maxcut: too many vertices for exhaustive search")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("maxcut: unsupported algorithm")

	// ErrBadOptions is returned for negative limits, worker or restart counts.
	ErrBadOptions = errors.New("maxcut: invalid options")

	// ErrCanceled is returned when the context ends before a solver finishes.
	// The returned error also wraps ctx.Err().
	ErrCanceled = errors.New("maxcut: canceled")

	// ErrSolverFailed is returned when the MaxSAT backend yields no model or a
	// model inconsistent with its reported cost.
	ErrSolverFailed = errors.New("maxcut: solver failed")
)

// MaxExactVertices is the largest order accepted by exact search: the mask
// range 0..2^N−1 must be countable in a uint64 without overflow.
const MaxExactVertices = 63

// Algorithm selects a solver in Solve.
type Algorithm int

const (
	// AlgoExact is exhaustive search over all 2^N masks.
	AlgoExact Algorithm = iota
	// AlgoLocal is single-flip local search from the all-zero labelling.
	AlgoLocal
	// AlgoGreedy is the one-pass constructive greedy.
	AlgoGreedy
	// AlgoMultiStart is local search from several seeded starts.
	AlgoMultiStart
	// AlgoMaxSAT is the MaxSAT encoding solved with gophersat.
	AlgoMaxSAT
)

var algoNames = [...]string{
	AlgoExact:      "exact",
	AlgoLocal:      "local",
	AlgoGreedy:     "greedy",
	AlgoMultiStart: "multistart",
	AlgoMaxSAT:     "maxsat",
}

// String returns the lower-case name used in configuration and reports.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algoNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algoNames[a]
}

// Algorithms returns every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algoNames))
	for i := range algoNames {
		out[i] = Algorithm(i)
	}

	return out
}

// ParseAlgorithm maps a name (case-insensitive, surrounding spaces ignored)
// to an Algorithm. "heuristic" and "brute" are accepted as aliases of
// "local" and "exact".
func ParseAlgorithm(name string) (Algorithm, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	switch s {
	case "brute", "bruteforce":
		return AlgoExact, nil
	case "heuristic":
		return AlgoLocal, nil
	}
	for i, n := range algoNames {
		if n == s {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedAlgorithm)
}

// Options configures Solve and the option-aware solvers.
type Options struct {
	// Algorithm selects the solver.
	Algorithm Algorithm

	// ExactLimit, when > 0, rejects exact search on graphs with more
	// vertices. 0 disables the check (MaxExactVertices still applies).
	ExactLimit int

	// Workers is the number of concurrent shards for exact search and the
	// concurrency limit for MultiStart. 0 or 1 runs sequentially.
	Workers int

	// Restarts is the number of MultiStart runs, including the all-zero one.
	Restarts int

	// Seed drives MultiStart's random starts; 0 selects a fixed default.
	Seed int64
}

// DefaultOptions returns exact search, sequential, 8 restarts, seed 0.
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgoExact,
		Workers:   1,
		Restarts:  8,
	}
}

// Result is the outcome of one solver invocation. It is owned by the caller.
type Result struct {
	// Partition holds the label of every vertex.
	Partition core.Partition

	// Mask encodes Partition with bit i = label(i); meaningful only when
	// MaskValid is true (N ≤ 64).
	Mask      uint64
	MaskValid bool

	// Cut is the number of edges crossing Partition.
	Cut int

	// Algorithm identifies the producing solver.
	Algorithm Algorithm

	// Passes counts local-search sweeps including the final one with no
	// moves; Flips counts vertex moves. Zero for exact solvers.
	Passes int
	Flips  int

	// Evaluated counts candidates examined: masks for Exact, starts for
	// MultiStart.
	Evaluated uint64

	// Elapsed is the wall time measured by Solve.
	Elapsed time.Duration
}

// newResult fills the partition-derived fields of a Result.
func newResult(algo Algorithm, p core.Partition, cut int) Result {
	r := Result{Algorithm: algo, Partition: p, Cut: cut}
	if m, err := p.Mask(); err == nil {
		r.Mask, r.MaskValid = m, true
	}

	return r
}
