// Package pipeline provides the core generate → render pipeline for sprawl.
//
// This package implements the shared execution path used by both the CLI
// and the HTTP API. Centralizing it keeps parameter defaults, caching, and
// instrumentation consistent across entry points.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: Produce a random connections map and build the digraph
//  2. Render: Draw the graph via Graphviz (or serialize it as JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    NumRecords:           100,
//	    MultiConnectionRatio: 0.8,
//	    MinConnections:       2,
//	    MaxConnections:       3,
//	    Format:               pipeline.FormatPNG,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifact
package pipeline

import (
	"math/rand"

	"github.com/matzehuels/sprawl/pkg/errors"
	"github.com/matzehuels/sprawl/pkg/gen"
	"github.com/matzehuels/sprawl/pkg/graph"
	"github.com/matzehuels/sprawl/pkg/render"
)

// Output formats accepted by Options.Format.
const (
	FormatPNG  = render.FormatPNG
	FormatSVG  = render.FormatSVG
	FormatJSON = render.FormatJSON
)

// DefaultFormat is the output format used when none is requested.
const DefaultFormat = FormatPNG

// Options configures one pipeline execution.
type Options struct {
	// Generation parameters.
	NumRecords           int
	MultiConnectionRatio float64
	MinConnections       int
	MaxConnections       int

	// Seed pins the random source for generation and edge coloring.
	// Nil means time-seeded, non-reproducible output.
	Seed *int64

	// Render parameters.
	EdgeThickness float64
	FigSize       int
	Format        string

	// Refresh bypasses the render cache.
	Refresh bool
}

// DefaultOptions returns options populated with the standard generation
// and render defaults: 100 nodes, 0.8 multi-connection ratio, 2-3
// connections per multi node, 10-inch PNG output.
func DefaultOptions() Options {
	return Options{
		NumRecords:           gen.DefaultNumRecords,
		MultiConnectionRatio: gen.DefaultMultiConnectionRatio,
		MinConnections:       gen.DefaultMinConnections,
		MaxConnections:       gen.DefaultMaxConnections,
		EdgeThickness:        1,
		FigSize:              10,
		Format:               DefaultFormat,
	}
}

// SetDefaults fills in zero-valued render fields. Generation parameters
// pass through untouched: a zero NumRecords must reach validation and fail
// there, and a zero MultiConnectionRatio is a valid all-single graph.
// Callers that want full defaults start from DefaultOptions.
func (o *Options) SetDefaults() {
	if o.EdgeThickness == 0 {
		o.EdgeThickness = 1
	}
	if o.FigSize == 0 {
		o.FigSize = 10
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
}

// ValidateFormat checks that the requested format is supported.
func ValidateFormat(format string) error {
	switch format {
	case FormatPNG, FormatSVG, FormatJSON:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat,
		"invalid format: %s (must be 'png', 'svg', or 'json')", format)
}

// params converts the generation options into serializable provenance.
func (o *Options) params() graph.Params {
	return graph.Params{
		NumRecords:           o.NumRecords,
		MultiConnectionRatio: o.MultiConnectionRatio,
		MinConnections:       o.MinConnections,
		MaxConnections:       o.MaxConnections,
	}
}

// colorRand returns the random source for edge colors. A pinned seed is
// offset so edge colors don't replay the generation draw sequence.
func (o *Options) colorRand() *rand.Rand {
	if o.Seed == nil {
		return nil // render falls back to a time-seeded source
	}
	return rand.New(rand.NewSource(*o.Seed + 1))
}
