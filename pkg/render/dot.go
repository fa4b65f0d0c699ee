package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/paulmach/orb"

	"github.com/solrun/vegakort/pkg/roadgraph"
)

// Options configures node-link rendering.
type Options struct {
	// EdgeLabels annotates every edge with its road classification and,
	// when present, the attached 15-minute traffic count.
	EdgeLabels bool
}

// ToDOT converts a road graph to Graphviz DOT format. Nodes are labeled by
// their coordinates; traffic-bearing edges are drawn bold. The resulting
// DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *roadgraph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph roadnet {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  node [shape=point, width=0.08];\n")
	buf.WriteString("\n")

	for _, p := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q;\n", nodeID(p))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := edgeAttrs(e, opts)
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -- %q;\n", nodeID(e.U), nodeID(e.V))
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", nodeID(e.U), nodeID(e.V), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p orb.Point) string {
	return fmt.Sprintf("%g,%g", p[0], p[1])
}

func edgeAttrs(e *roadgraph.Edge, opts Options) []string {
	var attrs []string
	if opts.EdgeLabels {
		label := e.RoadType
		if e.Traffic != nil {
			label = fmt.Sprintf("%s\n15min: %.0f", e.RoadType, e.Traffic.FifteenMin)
		}
		attrs = append(attrs, fmt.Sprintf("label=%q", label))
	}
	if e.Traffic != nil {
		attrs = append(attrs, "penwidth=2.5")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
