package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sprawl/pkg/config"
	"github.com/matzehuels/sprawl/pkg/graph"
	"github.com/matzehuels/sprawl/pkg/pipeline"
)

// newRenderCmd creates the render command for drawing stored graph files.
func newRenderCmd() *cobra.Command {
	var (
		opts       pipeline.Options
		configPath string
		seed       int64
		output     string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a stored graph to an image",
		Long: `Render a graph JSON file produced by 'sprawl generate --output'.

The graph structure is taken from the file, so rendering the same file twice
with the same options produces the same image; results are cached locally
for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if !flags.Changed("edge-thickness") {
				opts.EdgeThickness = cfg.Render.EdgeThickness
			}
			if !flags.Changed("fig-size") {
				opts.FigSize = cfg.Render.FigSize
			}
			if opts.Format == "" {
				opts.Format = cfg.Render.Format
			}
			if flags.Changed("seed") {
				opts.Seed = &seed
			}
			if err := pipeline.ValidateFormat(opts.Format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], output, opts, noCache)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "output format: png (default), svg, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().Float64Var(&opts.EdgeThickness, "edge-thickness", 1, "thickness of node borders")
	cmd.Flags().IntVar(&opts.FigSize, "fig-size", 10, "figure size in inches")
	cmd.Flags().Int64Var(&seed, "seed", 0, "pin the edge color source for reproducible images")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when a cached artifact exists")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().StringVar(&configPath, "config", "", "path to sprawl.toml (default: XDG config dir)")

	return cmd
}

// runRender loads the graph from input and renders it to the requested format.
func runRender(ctx context.Context, input, output string, opts pipeline.Options, noCache bool) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	g, meta, err := graph.ReadGraphFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())

	runner := newRunner(ctx, noCache)
	defer runner.Close()

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

	path := output
	if path == "" {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.Format
	}
	if err := writeFile(path, data); err != nil {
		return err
	}

	printSuccess("Rendered graph")
	printFile(path)
	printStats(g.NodeCount(), g.EdgeCount(), cacheHit)
	return nil
}

// writeFile writes rendered bytes with 0644 permissions.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
