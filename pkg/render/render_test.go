package render

import (
	"context"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sprawl/pkg/gen"
	"github.com/matzehuels/sprawl/pkg/graph"
)

func TestToDOT_Basic(t *testing.T) {
	g := graph.FromConnections(gen.Connections{0: {1, 2}, 1: {0}, 2: {0}, 3: {0}, 4: {0}})

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if !strings.Contains(dot, "Randomly Generated Graph") {
		t.Error("ToDOT() output missing title label")
	}
	if !strings.Contains(dot, "shape=circle") {
		t.Error("ToDOT() output missing circle node shape")
	}
	if !strings.Contains(dot, "fillcolor=lightblue") {
		t.Error("ToDOT() output missing lightblue fill")
	}
	if !strings.Contains(dot, "0 -> 1") {
		t.Error("ToDOT() output missing edge 0 -> 1")
	}
	// Five nodes use the force layout, so no pinned positions.
	if strings.Contains(dot, "pos=") {
		t.Error("ToDOT() pinned positions emitted for a force-layout graph")
	}
}

func TestToDOT_SmallGraphPinned(t *testing.T) {
	g := graph.FromConnections(gen.Connections{0: {1}, 1: {2}, 2: {0}})

	dot := ToDOT(g, Options{})

	if !strings.Contains(dot, `pos="0.0,0!"`) {
		t.Error("ToDOT() missing pinned position for first node")
	}
	if !strings.Contains(dot, `pos="54.0,0!"`) {
		t.Error("ToDOT() missing pinned position for second node")
	}
	if !strings.Contains(dot, `pos="108.0,0!"`) {
		t.Error("ToDOT() missing pinned position for third node")
	}
}

func TestToDOT_Options(t *testing.T) {
	g := graph.FromConnections(gen.Connections{0: {1}, 1: {0}})

	dot := ToDOT(g, Options{EdgeThickness: 2.5, FigSize: 12})

	if !strings.Contains(dot, "penwidth=2.50") {
		t.Errorf("ToDOT() missing custom penwidth: %s", dot)
	}
	if !strings.Contains(dot, `size="12,12!"`) {
		t.Errorf("ToDOT() missing custom size: %s", dot)
	}
}

func TestToDOT_EdgeColors(t *testing.T) {
	g := graph.FromConnections(gen.Connections{0: {1, 2, 3}, 1: {0}, 2: {0}, 3: {0}, 4: {0}})
	rng := rand.New(rand.NewSource(7))

	dot := ToDOT(g, Options{Rand: rng})

	colored := 0
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "->") && strings.Contains(line, "color=") {
			colored++
		}
	}
	if colored != g.EdgeCount() {
		t.Errorf("colored edges = %d, want %d", colored, g.EdgeCount())
	}

	// Same seed produces the same color assignment.
	again := ToDOT(g, Options{Rand: rand.New(rand.NewSource(7))})
	if dot != again {
		t.Error("ToDOT() not deterministic for a fixed random source")
	}
}

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		nodes int
		want  graphviz.Layout
	}{
		{2, graphviz.NEATO},
		{4, graphviz.NEATO},
		{5, graphviz.FDP},
		{200, graphviz.FDP},
	}

	for _, tt := range tests {
		if got := LayoutFor(tt.nodes); got != tt.want {
			t.Errorf("LayoutFor(%d) = %v, want %v", tt.nodes, got, tt.want)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	// Simple DOT that should render
	dot := `digraph G { a -> b; }`
	svg, err := RenderSVG(context.Background(), dot, graphviz.FDP)
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}

	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	// Invalid DOT syntax
	dot := `not valid DOT {{{`
	_, err := RenderSVG(context.Background(), dot, graphviz.FDP)
	if err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

func TestTimestampedFilename(t *testing.T) {
	ts := time.Date(2026, 8, 29, 14, 32, 1, 0, time.UTC)
	got := TimestampedFilename(ts)
	want := "generated_graph_20260829_143201.png"
	if got != want {
		t.Errorf("TimestampedFilename() = %q, want %q", got, want)
	}
}
