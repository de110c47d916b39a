package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sprawl/pkg/cache"
	"github.com/matzehuels/sprawl/pkg/gen"
	"github.com/matzehuels/sprawl/pkg/graph"
	"github.com/matzehuels/sprawl/pkg/observability"
	"github.com/matzehuels/sprawl/pkg/render"
)

// artifactTTL bounds how long rendered artifacts stay in the cache.
const artifactTTL = 7 * 24 * time.Hour

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Logger: logger}
}

// Close releases the runner's cache resources.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Result holds the outputs of one pipeline execution.
type Result struct {
	Graph    *graph.Digraph
	Meta     graph.Meta
	Artifact []byte // rendered bytes in the requested format
	Format   string
	CacheHit bool // artifact came from cache

	Stats struct {
		GenerateTime time.Duration
		RenderTime   time.Duration
	}
}

// Execute runs the complete generate → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	opts.SetDefaults()
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}

	result := &Result{Format: opts.Format}

	genStart := time.Now()
	g, meta, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Graph = g
	result.Meta = meta
	result.Stats.GenerateTime = time.Since(genStart)

	r.Logger.Info("generated graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.GenerateTime)

	renderStart := time.Now()
	artifact, hit, err := r.Render(ctx, g, meta, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifact = artifact
	result.CacheHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(artifact),
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate produces a fresh random graph from the options. Generation
// parameters are used as given: out-of-range values fail validation
// rather than being replaced by defaults.
func (r *Runner) Generate(ctx context.Context, opts Options) (*graph.Digraph, graph.Meta, error) {
	observability.Pipeline().OnGenerateStart(ctx, opts.NumRecords)
	start := time.Now()

	var genOpts []gen.Option
	if opts.Seed != nil {
		genOpts = append(genOpts, gen.WithSeed(*opts.Seed))
	}
	conns, err := gen.New(genOpts...).Generate(
		opts.NumRecords, opts.MultiConnectionRatio, opts.MinConnections, opts.MaxConnections)
	if err != nil {
		observability.Pipeline().OnGenerateComplete(ctx, opts.NumRecords, 0, time.Since(start), err)
		return nil, graph.Meta{}, err
	}

	g := graph.FromConnections(conns)
	observability.Pipeline().OnGenerateComplete(ctx, opts.NumRecords, g.EdgeCount(), time.Since(start), nil)

	return g, graph.NewMeta(opts.params(), opts.Seed), nil
}

// Render draws an existing graph in the requested format, consulting the
// artifact cache first. The boolean return reports a cache hit.
//
// JSON output is the serialized graph itself and is never cached - the
// serialization is cheaper than the cache round trip.
func (r *Runner) Render(ctx context.Context, g *graph.Digraph, meta graph.Meta, opts Options) ([]byte, bool, error) {
	opts.SetDefaults()
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, false, err
	}

	if opts.Format == FormatJSON {
		data, err := graph.MarshalGraph(g, meta)
		return data, false, err
	}

	graphData, err := graph.MarshalGraph(g, graph.Meta{})
	if err != nil {
		return nil, false, err
	}
	key := cache.ArtifactKey(graphData, opts.Format, opts.EdgeThickness, opts.FigSize, opts.Seed)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Format, g.NodeCount())
	start := time.Now()

	dot := render.ToDOT(g, render.Options{
		EdgeThickness: opts.EdgeThickness,
		FigSize:       opts.FigSize,
		Rand:          opts.colorRand(),
	})
	layout := render.LayoutFor(g.NodeCount())

	var data []byte
	switch opts.Format {
	case FormatPNG:
		data, err = render.RenderPNG(ctx, dot, layout)
	case FormatSVG:
		data, err = render.RenderSVG(ctx, dot, layout)
	}
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, data, artifactTTL); err != nil {
		r.Logger.Debug("cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return data, false, nil
}
