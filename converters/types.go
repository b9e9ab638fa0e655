package converters

import "errors"

// Sentinel errors for conversion.
var (
	// ErrMalformed indicates text that does not follow the expected layout.
	ErrMalformed = errors.New("converters: malformed input")

	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrRendererMissing indicates the Graphviz `dot` executable is not on PATH.
	ErrRendererMissing = errors.New("converters: graphviz dot not found")
)

// DOT styling, shared by the initial and partition renderings.
const (
	dotFont         = "Arial"
	colorLabelOne   = "lightblue"
	colorLabelZero  = "lightcoral"
	colorInitial    = "white"
	colorCutEdge    = "black"
	colorUncutEdge  = "gray"
	styleCutEdge    = "bold"
	styleUncutEdge  = "dashed"
	initialGraphID  = "InitialGraph"
	defaultResultID = "MaxCut"
)
