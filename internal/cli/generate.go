package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sprawl/pkg/config"
	"github.com/matzehuels/sprawl/pkg/gen"
	"github.com/matzehuels/sprawl/pkg/graph"
	"github.com/matzehuels/sprawl/pkg/pipeline"
	"github.com/matzehuels/sprawl/pkg/render"
)

// newGenerateCmd creates the generate command.
//
// Default parameters: 100 nodes, 0.8 multi-connection ratio, 2-3
// connections per multi-connection node, 10-inch figure.
func newGenerateCmd() *cobra.Command {
	var (
		opts       pipeline.Options
		configPath string
		seed       int64
		saveToFile bool
		output     string
		plain      bool
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random graph and display or save it",
		Long: `Generate a random directed graph.

Nodes are split into two populations: single-connection nodes with exactly
one outgoing edge and multi-connection nodes with several. Without flags the
graph is shown as an interactive adjacency browser; --save-to-file renders a
timestamped image into the working directory instead, and --output writes
the graph as a JSON artifact for later 'sprawl render' runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			applyConfig(cmd, cfg, &opts)
			if cmd.Flags().Changed("seed") {
				opts.Seed = &seed
			}
			if err := pipeline.ValidateFormat(opts.Format); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), opts, generateOutput{
				saveToFile: saveToFile,
				jsonPath:   output,
				plain:      plain,
				noCache:    noCache,
			})
		},
	}

	cmd.Flags().IntVar(&opts.NumRecords, "num-records", gen.DefaultNumRecords, "number of nodes in the graph (2-200)")
	cmd.Flags().Float64Var(&opts.MultiConnectionRatio, "multi-connection-ratio", gen.DefaultMultiConnectionRatio, "fraction of nodes with multiple connections")
	cmd.Flags().IntVar(&opts.MinConnections, "min-connections", gen.DefaultMinConnections, "minimum connections per multi-connection node")
	cmd.Flags().IntVar(&opts.MaxConnections, "max-connections", gen.DefaultMaxConnections, "maximum connections per multi-connection node")
	cmd.Flags().Int64Var(&seed, "seed", 0, "pin the random source for reproducible output")
	cmd.Flags().Float64Var(&opts.EdgeThickness, "edge-thickness", 1, "thickness of node borders")
	cmd.Flags().IntVar(&opts.FigSize, "fig-size", 10, "figure size in inches")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "output format: png (default), svg, json")
	cmd.Flags().BoolVar(&saveToFile, "save-to-file", false, "save a timestamped image instead of displaying")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the graph as JSON to this path")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the adjacency listing instead of the interactive browser")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&configPath, "config", "", "path to sprawl.toml (default: XDG config dir)")

	return cmd
}

// applyConfig fills option fields from the config file for every flag the
// user did not set explicitly. Flags win over the file, the file wins over
// built-in defaults.
func applyConfig(cmd *cobra.Command, cfg config.Config, opts *pipeline.Options) {
	flags := cmd.Flags()
	if !flags.Changed("num-records") {
		opts.NumRecords = cfg.Generate.NumRecords
	}
	if !flags.Changed("multi-connection-ratio") {
		opts.MultiConnectionRatio = cfg.Generate.MultiConnectionRatio
	}
	if !flags.Changed("min-connections") {
		opts.MinConnections = cfg.Generate.MinConnections
	}
	if !flags.Changed("max-connections") {
		opts.MaxConnections = cfg.Generate.MaxConnections
	}
	if !flags.Changed("edge-thickness") {
		opts.EdgeThickness = cfg.Render.EdgeThickness
	}
	if !flags.Changed("fig-size") {
		opts.FigSize = cfg.Render.FigSize
	}
	if opts.Format == "" {
		opts.Format = cfg.Render.Format
	}
}

// generateOutput bundles the destinations requested for a generated graph.
type generateOutput struct {
	saveToFile bool
	jsonPath   string
	plain      bool
	noCache    bool
}

// runGenerate generates a graph and routes it to the requested outputs.
func runGenerate(ctx context.Context, opts pipeline.Options, out generateOutput) error {
	logger := loggerFromContext(ctx)
	runner := newRunner(ctx, out.noCache)
	defer runner.Close()

	p := newProgress(logger)
	g, meta, err := runner.Generate(ctx, opts)
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Generated %d nodes, %d edges", g.NodeCount(), g.EdgeCount()))

	if out.jsonPath != "" {
		if err := graph.WriteGraphFile(g, meta, out.jsonPath); err != nil {
			return fmt.Errorf("write graph: %w", err)
		}
		printSuccess("Saved graph")
		printFile(out.jsonPath)
	}

	if out.saveToFile {
		if err := renderToFile(ctx, runner, g, meta, opts); err != nil {
			return err
		}
	}

	if out.jsonPath != "" || out.saveToFile {
		return nil
	}

	if out.plain {
		fmt.Println(g.AdjacencyList())
		return nil
	}
	return browseGraph(g, meta)
}

// renderToFile renders the graph and writes it under a timestamped name in
// the working directory, e.g. generated_graph_20260829_143201.png.
func renderToFile(ctx context.Context, runner *pipeline.Runner, g *graph.Digraph, meta graph.Meta, opts pipeline.Options) error {
	spinner := newSpinner(ctx, "Rendering graph...")
	spinner.Start()

	data, cacheHit, err := runner.Render(ctx, g, meta, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}

	path := outputFilename(opts.Format, time.Now())
	if err := writeFile(path, data); err != nil {
		return err
	}

	printSuccess("Saved graph image")
	printFile(path)
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	return nil
}

// outputFilename returns the timestamped artifact name for the format.
func outputFilename(format string, t time.Time) string {
	name := render.TimestampedFilename(t)
	if format != "" && format != render.FormatPNG {
		name = strings.TrimSuffix(name, ".png") + "." + format
	}
	return name
}
