package experiment

import (
	"errors"

	"github.com/MihaiBandur/HackathonQuantic/core"
	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

// ErrExactTooLarge is returned by NewRunner when exact search is requested
// for graphs larger than the exact limit allows.
var ErrExactTooLarge = errors.New("experiment: max-n exceeds exact search limit")

// Output file names inside Config.OutDir.
const (
	ResultsFile    = "results.csv"
	ComparisonFile = "compare.csv"

	initialSuffix = "_initial.dot"
	dotExt        = ".dot"
)

// Job is one planned graph of a batch.
type Job struct {
	Index int
	ID    string
	N     int
	Seed  int64
}

// Outcome is everything a batch learned about one graph.
type Outcome struct {
	Job     Job
	Graph   *core.Graph
	Results []maxcut.Result

	// Components is the number of connected components. Bipartite graphs
	// have a maximum cut equal to their edge count.
	Components int
	Bipartite  bool

	// Consistent is false when a heuristic beat an exact solver or an exact
	// solver missed the edge count of a bipartite graph, which can only mean
	// a defect.
	Consistent bool

	// Issues describes each inconsistency behind a false Consistent.
	Issues []string

	// Files lists the artifacts written for this graph.
	Files []string
}

// Best returns the result with the largest cut; the first one wins ties.
func (o Outcome) Best() (maxcut.Result, bool) {
	if len(o.Results) == 0 {
		return maxcut.Result{}, false
	}
	best := o.Results[0]
	for _, r := range o.Results[1:] {
		if r.Cut > best.Cut {
			best = r
		}
	}

	return best, true
}
