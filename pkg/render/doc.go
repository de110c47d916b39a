// Package render draws generated graphs as node-link diagrams using Graphviz.
//
// # Overview
//
// Rendering is a two-step pipeline: [ToDOT] converts a Digraph into DOT
// text with per-edge random colors, and [RenderPNG] or [RenderSVG] runs it
// through Graphviz. Layout is force-directed (fdp, a spring model) for five
// or more nodes; smaller graphs are pinned to a horizontal line and laid
// out with neato so the pins are honored.
//
//	dot := render.ToDOT(g, render.Options{FigSize: 10})
//	png, err := render.RenderPNG(ctx, dot, render.LayoutFor(g.NodeCount()))
//
// Edge colors come from a fixed palette of X11 color names, sampled with
// the Options.Rand source; pin the source to make renders reproducible.
package render
