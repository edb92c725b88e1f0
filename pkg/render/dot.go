package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/EmileRolley/project-coca/pkg/graph"
	"github.com/EmileRolley/project-coca/pkg/reduction"
)

// ToDOT renders the decoded component hierarchy in Graphviz DOT format.
// Each node is a homogeneous component annotated with its level and
// vertices, solid edges point from parent to child, and dashed edges show
// the translator placement between components.
func ToDOT(g *graph.EdgeConGraph, h *reduction.Hierarchy, assignment map[int]graph.Edge) string {
	var buf bytes.Buffer
	buf.WriteString("digraph hierarchy {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=rounded];\n")
	buf.WriteString("\n")

	for c := 0; c < len(h.Parent); c++ {
		fmt.Fprintf(&buf, "  c%d [label=%q];\n", c, componentLabel(g, h, c))
	}

	buf.WriteString("\n")
	for c, parent := range h.Parent {
		if parent >= 0 {
			fmt.Fprintf(&buf, "  c%d -> c%d;\n", parent, c)
		}
	}

	indices := maps.Keys(assignment)
	slices.Sort(indices)
	for _, i := range indices {
		edge := assignment[i]
		fmt.Fprintf(&buf, "  c%d -> c%d [style=dashed, dir=none, label=%q];\n",
			g.ComponentOf(edge.U), g.ComponentOf(edge.V), fmt.Sprintf("t%d (%d,%d)", i, edge.U, edge.V))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func componentLabel(g *graph.EdgeConGraph, h *reduction.Hierarchy, c int) string {
	vertices := []string{}
	for _, v := range g.ComponentVertices(c) {
		vertices = append(vertices, fmt.Sprintf("%d", v))
	}
	label := fmt.Sprintf("C%d {%s}", c, strings.Join(vertices, ","))
	if h.Level[c] >= 0 {
		label += fmt.Sprintf("\nlevel %d", h.Level[c])
	}
	return label
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
