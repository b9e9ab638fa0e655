package converters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// maxLineBytes bounds one text row (≈ 2 bytes per vertex).
const maxLineBytes = 1 << 22

// MaxMatrixOrder is the largest header ParseMatrix accepts: a row of N
// entries needs about 2N bytes and must fit in maxLineBytes.
const MaxMatrixOrder = maxLineBytes / 2

// ParseMatrix reads the text adjacency format from r.
//
// Blank lines are ignored. The header must be a single non-negative integer
// N followed by exactly N rows of N integers; anything after the last row is
// an error. Headers above MaxMatrixOrder are rejected before any row is
// read. Entry values and symmetry are checked by core.NewGraphFromMatrix.
func ParseMatrix(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		line   int
		n      = -1
		matrix [][]int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if n < 0 {
			v, err := strconv.Atoi(text)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("line %d: header %q is not a vertex count: %w", line, text, ErrMalformed)
			}
			if v > MaxMatrixOrder {
				return nil, fmt.Errorf("line %d: vertex count %d above %d: %w", line, v, MaxMatrixOrder, ErrMalformed)
			}
			n = v
			continue
		}
		if len(matrix) == n {
			return nil, fmt.Errorf("line %d: data after %d rows: %w", line, n, ErrMalformed)
		}
		fields := strings.Fields(text)
		if len(fields) != n {
			return nil, fmt.Errorf("line %d: %d entries, want %d: %w", line, len(fields), n, ErrMalformed)
		}
		row := make([]int, n)
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %q: %w", line, j+1, f, ErrMalformed)
			}
			row[j] = v
		}
		matrix = append(matrix, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}
	if n < 0 {
		return nil, fmt.Errorf("missing header: %w", ErrMalformed)
	}
	if len(matrix) != n {
		return nil, fmt.Errorf("got %d rows, want %d: %w", len(matrix), n, ErrMalformed)
	}

	return core.NewGraphFromMatrix(matrix)
}

// FormatMatrix writes g in the text adjacency format.
func FormatMatrix(w io.Writer, g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	n := g.Order()
	bw.WriteString(strconv.Itoa(n))
	bw.WriteByte('\n')

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			if g.Adjacent(i, j) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// ReadMatrixFile parses the text adjacency file at path.
func ReadMatrixFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := ParseMatrix(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteMatrixFile writes g to path, creating or truncating it.
func WriteMatrixFile(path string, g *core.Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = FormatMatrix(f, g); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
