package render

import (
	"bytes"
	"fmt"
	"math/rand"
	"time"

	"github.com/matzehuels/sprawl/pkg/graph"
)

// Nodes below this count are placed on a fixed horizontal line instead of
// being run through the force-directed engine, which produces degenerate
// layouts for tiny graphs.
const forceLayoutThreshold = 5

// linearSpacing is the horizontal gap between pinned nodes, in points.
const linearSpacing = 54.0

// graphTitle is drawn above the rendered graph.
const graphTitle = "Randomly Generated Graph with Colored Edges and Node Borders"

// Options configures DOT generation.
type Options struct {
	// EdgeThickness is the pen width of node borders. Zero means 1.
	EdgeThickness float64

	// FigSize is the maximum drawing size in inches per axis. Zero means 10.
	FigSize int

	// Rand supplies the per-edge color draws. When nil a time-seeded source
	// is used, so edge colors differ between runs.
	Rand *rand.Rand
}

func (o *Options) setDefaults() {
	if o.EdgeThickness == 0 {
		o.EdgeThickness = 1
	}
	if o.FigSize == 0 {
		o.FigSize = 10
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

// ToDOT converts a Digraph to Graphviz DOT format.
// Nodes are lightblue filled circles with black borders; each edge gets a
// color drawn at random from a fixed palette. Graphs with fewer than five
// nodes carry pinned positions on a horizontal line and should be laid out
// with [LayoutFor]'s engine choice.
func ToDOT(g *graph.Digraph, opts Options) string {
	opts.setDefaults()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  label=%q;\n", graphTitle)
	buf.WriteString("  labelloc=\"t\";\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	fmt.Fprintf(&buf, "  size=\"%d,%d!\";\n", opts.FigSize, opts.FigSize)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=lightblue, color=black, penwidth=%.2f, fontsize=8, fontname=\"Helvetica-Bold\"];\n",
		opts.EdgeThickness)
	buf.WriteString("\n")

	pinned := g.NodeCount() < forceLayoutThreshold
	for i, n := range g.Nodes() {
		if pinned {
			fmt.Fprintf(&buf, "  %d [pos=\"%.1f,0!\"];\n", n, float64(i)*linearSpacing)
		} else {
			fmt.Fprintf(&buf, "  %d;\n", n)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -> %d [color=%q];\n", e.From, e.To, pickColor(opts.Rand))
	}

	buf.WriteString("}\n")
	return buf.String()
}
