package converters

import (
	"fmt"
	"os"
	"strconv"

	"github.com/emicklei/dot"

	"github.com/MihaiBandur/HackathonQuantic/core"
)

// InitialDOT renders g before solving: white filled nodes labelled by
// index and plain edges, graph id "InitialGraph".
func InitialDOT(g *core.Graph) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	d := dot.NewGraph(dot.Undirected)
	d.ID(initialGraphID)

	nodes := make([]dot.Node, g.Order())
	for i := range nodes {
		nodes[i] = d.Node(strconv.Itoa(i)).
			Attr("style", "filled").
			Attr("fillcolor", colorInitial).
			Attr("fontname", dotFont)
	}
	for _, e := range g.Edges() {
		d.Edge(nodes[e[0]], nodes[e[1]])
	}

	return d.String(), nil
}

// PartitionDOT renders a solved partition. Vertices labelled 1 are filled
// light blue and vertices labelled 0 light coral; cut edges are black and
// bold, the others gray and dashed. An empty name selects "MaxCut".
//
// Errors: ErrNilGraph, core.ErrPartitionSize.
func PartitionDOT(g *core.Graph, p core.Partition, name string) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	if p.Len() != g.Order() {
		return "", fmt.Errorf("partition of %d vertices for graph of %d: %w", p.Len(), g.Order(), core.ErrPartitionSize)
	}
	if name == "" {
		name = defaultResultID
	}
	d := dot.NewGraph(dot.Undirected)
	d.ID(name)

	nodes := make([]dot.Node, g.Order())
	for i := range nodes {
		fill := colorLabelZero
		if p.Label(i) == 1 {
			fill = colorLabelOne
		}
		nodes[i] = d.Node(strconv.Itoa(i)).
			Attr("style", "filled").
			Attr("fillcolor", fill).
			Attr("fontname", dotFont)
	}
	for _, e := range g.Edges() {
		color, style := colorUncutEdge, styleUncutEdge
		if p.Label(e[0]) != p.Label(e[1]) {
			color, style = colorCutEdge, styleCutEdge
		}
		d.Edge(nodes[e[0]], nodes[e[1]]).Attr("color", color).Attr("style", style)
	}

	return d.String(), nil
}

// WriteDOTFile writes a rendered DOT document to path.
func WriteDOTFile(path, doc string) error {
	return os.WriteFile(path, []byte(doc), 0o644)
}
