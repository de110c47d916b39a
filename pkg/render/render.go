package render

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-graphviz"
)

// Output formats supported by the renderer.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// LayoutFor returns the Graphviz engine for a graph of the given size:
// the spring-model fdp engine for five or more nodes, neato below that so
// the pinned linear positions emitted by [ToDOT] are honored.
func LayoutFor(nodeCount int) graphviz.Layout {
	if nodeCount < forceLayoutThreshold {
		return graphviz.NEATO
	}
	return graphviz.FDP
}

// RenderSVG renders a DOT graph to SVG using the given layout engine.
func RenderSVG(ctx context.Context, dot string, layout graphviz.Layout) ([]byte, error) {
	return renderFormat(ctx, dot, layout, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using the given layout engine.
func RenderPNG(ctx context.Context, dot string, layout graphviz.Layout) ([]byte, error) {
	return renderFormat(ctx, dot, layout, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, layout graphviz.Layout, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(layout)

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

// TimestampedFilename returns the output name used when saving to file,
// e.g. "generated_graph_20260829_143201.png".
func TimestampedFilename(t time.Time) string {
	return fmt.Sprintf("generated_graph_%s.png", t.Format("20060102_150405"))
}
