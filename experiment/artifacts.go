package experiment

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/MihaiBandur/HackathonQuantic/converters"
	"github.com/MihaiBandur/HackathonQuantic/report"
)

// Write stores the artifacts of outs in OutDir, in slice order: drawings
// when Render is set (plus PNGs when PNG is set), then one results row per
// algorithm and one comparison row per graph. Paths of written drawings are
// appended to each Outcome's Files.
func (r *Runner) Write(ctx context.Context, outs []Outcome) error {
	png := r.cfg.PNG
	if r.cfg.Render {
		for i := range outs {
			if err := r.WriteDrawings(ctx, r.cfg.OutDir, &outs[i], png); err != nil {
				if !errors.Is(err, converters.ErrRendererMissing) {
					return err
				}
				r.log.Warn("png rendering disabled", zap.Error(err))
				png = false
			}
		}
	}

	var (
		rows = make([]report.Row, 0, len(outs)*len(r.algos))
		cmps = make([]report.Comparison, 0, len(outs))
	)
	for _, o := range outs {
		cmp := report.NewComparison(o.Job.ID, o.Graph)
		for _, res := range o.Results {
			rows = append(rows, report.NewRow(o.Job.ID, o.Graph, res))
			cmp.Add(res)
		}
		cmps = append(cmps, cmp)
	}
	if err := report.AppendResultsFile(filepath.Join(r.cfg.OutDir, ResultsFile), rows); err != nil {
		return err
	}

	return report.AppendComparisonFile(filepath.Join(r.cfg.OutDir, ComparisonFile), r.names, cmps)
}

// WriteDrawings writes "<id>_initial.dot" and one "<id>_<algo>.dot" per
// result into dir, rendering each to PNG when png is set. When Graphviz is
// missing the DOT files are kept and the returned error wraps
// converters.ErrRendererMissing.
func (r *Runner) WriteDrawings(ctx context.Context, dir string, o *Outcome, png bool) error {
	id := o.Job.ID
	doc, err := converters.InitialDOT(o.Graph)
	if err != nil {
		return fmt.Errorf("experiment: %s: %w", id, err)
	}
	paths := []string{filepath.Join(dir, id+initialSuffix)}
	if err = converters.WriteDOTFile(paths[0], doc); err != nil {
		return fmt.Errorf("experiment: %s: %w", id, err)
	}
	for _, res := range o.Results {
		name := id + "_" + res.Algorithm.String()
		if doc, err = converters.PartitionDOT(o.Graph, res.Partition, name); err != nil {
			return fmt.Errorf("experiment: %s: %w", name, err)
		}
		path := filepath.Join(dir, name+dotExt)
		if err = converters.WriteDOTFile(path, doc); err != nil {
			return fmt.Errorf("experiment: %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	o.Files = append(o.Files, paths...)
	if !png {
		return nil
	}

	for _, p := range paths {
		out, err := converters.RenderPNG(ctx, p)
		if err != nil {
			return fmt.Errorf("experiment: %s: %w", id, err)
		}
		o.Files = append(o.Files, out)
	}

	return nil
}
