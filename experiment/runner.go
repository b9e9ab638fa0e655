package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/MihaiBandur/HackathonQuantic/bfs"
	"github.com/MihaiBandur/HackathonQuantic/builder"
	"github.com/MihaiBandur/HackathonQuantic/config"
	"github.com/MihaiBandur/HackathonQuantic/core"
	"github.com/MihaiBandur/HackathonQuantic/logger"
	"github.com/MihaiBandur/HackathonQuantic/maxcut"
	"github.com/MihaiBandur/HackathonQuantic/report"
)

// Runner executes batches and single-graph runs under one configuration.
// A Runner holds no per-run state and may be reused.
type Runner struct {
	cfg   config.Config
	algos []maxcut.Algorithm
	names []string
	log   *zap.Logger
}

// NewRunner validates cfg and resolves its algorithms. A nil log disables
// logging.
func NewRunner(cfg config.Config, log *zap.Logger) (*Runner, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	algos, err := cfg.SolverAlgorithms()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(algos))
	for i, a := range algos {
		names[i] = a.String()
	}

	return &Runner{cfg: cfg, algos: algos, names: names, log: logger.OrNop(log)}, nil
}

// Algorithms returns the algorithm names in run order.
func (r *Runner) Algorithms() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)

	return out
}

// CountExisting returns the number of graphs a previous batch left in dir:
// the larger of the "*_initial.dot" count and the number of distinct graph
// IDs in results.csv, so numbering continues even when drawings were off.
// A missing directory counts as empty.
func CountExisting(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("experiment: scan %s: %w", dir, err)
	}
	var drawn int
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), initialSuffix) {
			drawn++
		}
	}
	recorded, err := report.CountGraphs(filepath.Join(dir, ResultsFile))
	if err != nil {
		return 0, fmt.Errorf("experiment: %w", err)
	}

	return max(drawn, recorded), nil
}

// Plan returns the jobs of a batch whose numbering starts at existing.
// Sizes and graph seeds come from one stream seeded with Seed+existing.
func (r *Runner) Plan(existing int) []Job {
	var (
		rng  = rand.New(rand.NewSource(r.cfg.Seed + int64(existing)))
		span = r.cfg.MaxN - r.cfg.MinN + 1
		jobs = make([]Job, r.cfg.Graphs)
	)
	for k := range jobs {
		idx := existing + k
		n := r.cfg.MinN + rng.Intn(span)
		jobs[k] = Job{
			Index: idx,
			ID:    fmt.Sprintf("graph_%03d_n%d", idx, n),
			N:     n,
			Seed:  rng.Int63(),
		}
	}

	return jobs
}

// Generate samples the G(n, p) graph of job.
func (r *Runner) Generate(job Job) (*core.Graph, error) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(job.Seed)},
		builder.RandomSparse(job.N, r.cfg.Probability),
	)
	if err != nil {
		return nil, fmt.Errorf("experiment: generate %s: %w", job.ID, err)
	}

	return g, nil
}

// Solve runs every configured algorithm on g, in order, and checks that no
// heuristic beats an exact solver and that exact solvers cut every edge of a
// bipartite graph. Violations are logged as warnings and described in
// Outcome.Issues.
func (r *Runner) Solve(ctx context.Context, job Job, g *core.Graph) (Outcome, error) {
	_, bipartite := bfs.TwoColoring(g)
	out := Outcome{
		Job:        job,
		Graph:      g,
		Results:    make([]maxcut.Result, 0, len(r.algos)),
		Components: len(bfs.Components(g)),
		Bipartite:  bipartite,
	}
	for _, a := range r.algos {
		res, err := maxcut.Solve(ctx, g, r.cfg.SolveOptions(a))
		if err != nil {
			return Outcome{}, fmt.Errorf("experiment: %s: %w", job.ID, err)
		}
		r.log.Debug("solved",
			zap.String("graph", job.ID),
			zap.Stringer("algorithm", a),
			zap.Int("cut", res.Cut),
			zap.Duration("elapsed", res.Elapsed))
		out.Results = append(out.Results, res)
	}
	out.Issues = r.checkDominance(out)
	out.Consistent = len(out.Issues) == 0

	return out, nil
}

// checkDominance lists the ways o contradicts the exact solvers: an exact
// cut below another solver's cut (which also catches two exact solvers that
// disagree) and an exact cut on a bipartite graph below the edge count.
// Each issue is also logged as a warning.
func (r *Runner) checkDominance(o Outcome) []string {
	var issues []string
	for _, e := range o.Results {
		if !isExact(e.Algorithm) {
			continue
		}
		if o.Bipartite && e.Cut != o.Graph.EdgeCount() {
			issues = append(issues, fmt.Sprintf("%s cut %d on a bipartite graph with %d edges",
				e.Algorithm, e.Cut, o.Graph.EdgeCount()))
			r.log.Warn("exact result below edge count of bipartite graph",
				zap.String("graph", o.Job.ID),
				zap.Stringer("exact", e.Algorithm),
				zap.Int("exact_cut", e.Cut),
				zap.Int("edges", o.Graph.EdgeCount()))
		}
		for _, h := range o.Results {
			if h.Cut <= e.Cut {
				continue
			}
			issues = append(issues, fmt.Sprintf("%s cut %d exceeds %s cut %d",
				h.Algorithm, h.Cut, e.Algorithm, e.Cut))
			r.log.Warn("exact result below another solver",
				zap.String("graph", o.Job.ID),
				zap.Stringer("exact", e.Algorithm),
				zap.Int("exact_cut", e.Cut),
				zap.Stringer("other", h.Algorithm),
				zap.Int("other_cut", h.Cut))
		}
	}

	return issues
}

func isExact(a maxcut.Algorithm) bool {
	return a == maxcut.AlgoExact || a == maxcut.AlgoMaxSAT
}

// Run plans, generates and solves a batch, then writes its artifacts in
// graph order. Up to Parallelism graphs are solved concurrently; the first
// failure cancels the rest and nothing is written. A results or comparison
// CSV in OutDir with other columns fails the batch up front with
// report.ErrHeaderMismatch.
func (r *Runner) Run(ctx context.Context) ([]Outcome, error) {
	if err := r.checkExactLimit(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(r.cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("experiment: create %s: %w", r.cfg.OutDir, err)
	}
	if err := r.checkReports(); err != nil {
		return nil, err
	}
	existing, err := CountExisting(r.cfg.OutDir)
	if err != nil {
		return nil, err
	}
	jobs := r.Plan(existing)
	r.log.Info("batch started",
		zap.Int("graphs", len(jobs)),
		zap.Int("first_index", existing),
		zap.Strings("algorithms", r.names),
		zap.String("out", r.cfg.OutDir))

	outs := make([]Outcome, len(jobs))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(r.cfg.Parallelism)
	for i, job := range jobs {
		eg.Go(func() error {
			g, err := r.Generate(job)
			if err != nil {
				return err
			}
			o, err := r.Solve(ectx, job, g)
			if err != nil {
				return err
			}
			outs[i] = o
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if err := r.Write(ctx, outs); err != nil {
		return nil, err
	}
	for _, o := range outs {
		best, _ := o.Best()
		r.log.Info("graph done",
			zap.String("graph", o.Job.ID),
			zap.Int("n", o.Graph.Order()),
			zap.Int("edges", o.Graph.EdgeCount()),
			zap.Int("components", o.Components),
			zap.Bool("bipartite", o.Bipartite),
			zap.Stringer("best", best.Algorithm),
			zap.Int("cut", best.Cut),
			zap.Bool("consistent", o.Consistent))
	}

	return outs, nil
}

// checkReports fails before any solving when the CSV files in OutDir were
// written with other columns.
func (r *Runner) checkReports() error {
	if err := report.CheckHeader(filepath.Join(r.cfg.OutDir, ResultsFile), report.ResultsHeader); err != nil {
		return fmt.Errorf("experiment: %w", err)
	}
	if err := report.CheckHeader(filepath.Join(r.cfg.OutDir, ComparisonFile), report.ComparisonHeader(r.names)); err != nil {
		return fmt.Errorf("experiment: %w", err)
	}

	return nil
}

// checkExactLimit fails fast when exact search could meet a graph it must
// reject.
func (r *Runner) checkExactLimit() error {
	limit := maxcut.MaxExactVertices
	if r.cfg.ExactLimit > 0 && r.cfg.ExactLimit < limit {
		limit = r.cfg.ExactLimit
	}
	for _, a := range r.algos {
		if a == maxcut.AlgoExact && r.cfg.MaxN > limit {
			return fmt.Errorf("max-n %d, limit %d: %w", r.cfg.MaxN, limit, ErrExactTooLarge)
		}
	}

	return nil
}
