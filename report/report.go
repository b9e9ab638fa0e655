// Package report writes solver outcomes as CSV.
//
// Two tables are produced. The results table holds one row per
// (graph, algorithm) run:
//
//	Graph ID,Nodes,Edges,Algorithm,Cut Value,Execution Time (s)
//
// The comparison table holds one row per graph, with one cut column and one
// timing column per algorithm:
//
//	id,n,edges,exact,local,t_exact,t_local
//
// The *File variants append to an existing file and write the header only
// when they create the file (or find it empty). An existing file must carry
// the same header, else ErrHeaderMismatch. Times are seconds with six
// decimals.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/MihaiBandur/HackathonQuantic/core"
	"github.com/MihaiBandur/HackathonQuantic/maxcut"
)

var (
	// ErrMissingAlgorithm is returned when a comparison row lacks a cut for
	// one of the table's algorithms.
	ErrMissingAlgorithm = errors.New("report: comparison row missing algorithm")

	// ErrHeaderMismatch is returned when appending to a table whose existing
	// header differs from the columns being written.
	ErrHeaderMismatch = errors.New("report: existing header has different columns")
)

// ResultsHeader is the first line of a results table.
var ResultsHeader = []string{"Graph ID", "Nodes", "Edges", "Algorithm", "Cut Value", "Execution Time (s)"}

// Row is one solver run on one graph.
type Row struct {
	GraphID   string
	Nodes     int
	Edges     int
	Algorithm string
	Cut       int
	Elapsed   time.Duration
}

// NewRow captures res on g under id.
func NewRow(id string, g *core.Graph, res maxcut.Result) Row {
	return Row{
		GraphID:   id,
		Nodes:     g.Order(),
		Edges:     g.EdgeCount(),
		Algorithm: res.Algorithm.String(),
		Cut:       res.Cut,
		Elapsed:   res.Elapsed,
	}
}

func (r Row) record() []string {
	return []string{
		r.GraphID,
		strconv.Itoa(r.Nodes),
		strconv.Itoa(r.Edges),
		r.Algorithm,
		strconv.Itoa(r.Cut),
		seconds(r.Elapsed),
	}
}

// Comparison is every algorithm's outcome on one graph.
type Comparison struct {
	GraphID string
	Nodes   int
	Edges   int
	Cuts    map[string]int
	Times   map[string]time.Duration
}

// NewComparison returns an empty comparison row for g.
func NewComparison(id string, g *core.Graph) Comparison {
	return Comparison{
		GraphID: id,
		Nodes:   g.Order(),
		Edges:   g.EdgeCount(),
		Cuts:    make(map[string]int),
		Times:   make(map[string]time.Duration),
	}
}

// Add records res under its algorithm name.
func (c Comparison) Add(res maxcut.Result) {
	name := res.Algorithm.String()
	c.Cuts[name] = res.Cut
	c.Times[name] = res.Elapsed
}

func (c Comparison) record(algos []string) ([]string, error) {
	out := make([]string, 0, 3+2*len(algos))
	out = append(out, c.GraphID, strconv.Itoa(c.Nodes), strconv.Itoa(c.Edges))
	for _, a := range algos {
		cut, ok := c.Cuts[a]
		if !ok {
			return nil, fmt.Errorf("%s: %q: %w", c.GraphID, a, ErrMissingAlgorithm)
		}
		out = append(out, strconv.Itoa(cut))
	}
	for _, a := range algos {
		out = append(out, seconds(c.Times[a]))
	}

	return out, nil
}

// ComparisonHeader returns the comparison table header for algos.
func ComparisonHeader(algos []string) []string {
	out := make([]string, 0, 3+2*len(algos))
	out = append(out, "id", "n", "edges")
	out = append(out, algos...)
	for _, a := range algos {
		out = append(out, "t_"+a)
	}

	return out
}

// WriteResults writes rows to w, preceded by ResultsHeader when header is set.
func WriteResults(w io.Writer, header bool, rows []Row) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(ResultsHeader); err != nil {
			return fmt.Errorf("report: write header: %w", err)
		}
	}
	for _, r := range rows {
		if err := cw.Write(r.record()); err != nil {
			return fmt.Errorf("report: write %s: %w", r.GraphID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteComparison writes rows to w with one column pair per algorithm, in
// the order of algos.
func WriteComparison(w io.Writer, header bool, algos []string, rows []Comparison) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(ComparisonHeader(algos)); err != nil {
			return fmt.Errorf("report: write header: %w", err)
		}
	}
	for _, c := range rows {
		rec, err := c.record(algos)
		if err != nil {
			return err
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("report: write %s: %w", c.GraphID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// AppendResultsFile appends rows to the results table at path.
//
// Errors: ErrHeaderMismatch when path already holds another table.
func AppendResultsFile(path string, rows []Row) error {
	return appendFile(path, ResultsHeader, func(w io.Writer, header bool) error {
		return WriteResults(w, header, rows)
	})
}

// AppendComparisonFile appends rows to the comparison table at path.
//
// Errors: ErrHeaderMismatch when path already holds a table with other
// algorithm columns; nothing is written in that case.
func AppendComparisonFile(path string, algos []string, rows []Comparison) error {
	return appendFile(path, ComparisonHeader(algos), func(w io.Writer, header bool) error {
		return WriteComparison(w, header, algos, rows)
	})
}

// CheckHeader reports whether rows with the given header can be appended
// to the table at path. A missing or empty file always qualifies.
//
// Errors: ErrHeaderMismatch, or the error met while reading path.
func CheckHeader(path string, header []string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("report: open %s: %w", path, err)
	}
	defer f.Close()

	return checkHeader(f, path, header)
}

// checkHeader compares the first record of r with header. An empty r
// qualifies.
func checkHeader(r io.Reader, path string, header []string) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	got, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("report: read header of %s: %w", path, err)
	}
	if !slices.Equal(got, header) {
		return fmt.Errorf("%s has %q, want %q: %w", path, got, header, ErrHeaderMismatch)
	}

	return nil
}

// CountGraphs returns the number of distinct graph IDs in the first column
// of the table at path, header excluded. A missing file counts as empty.
func CountGraphs(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("report: open %s: %w", path, err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("report: read %s: %w", path, err)
	}
	if len(recs) == 0 {
		return 0, nil
	}
	seen := make(map[string]struct{}, len(recs))
	for _, rec := range recs[1:] {
		if len(rec) > 0 && rec[0] != "" {
			seen[rec[0]] = struct{}{}
		}
	}

	return len(seen), nil
}

func appendFile(path string, header []string, write func(w io.Writer, header bool) error) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("report: open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("report: close %s: %w", path, cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("report: stat %s: %w", path, err)
	}
	empty := info.Size() == 0
	if !empty {
		// Reads start at offset 0; O_APPEND still sends writes to the end.
		if err = checkHeader(f, path, header); err != nil {
			return err
		}
	}

	return write(f, empty)
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}
