package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sprawl/internal/api"
)

// newServeCmd creates the serve command exposing the pipeline over HTTP.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an HTTP server for graph generation",
		Long: `Start an HTTP server exposing the graph pipeline.

Endpoints:
  GET /healthz    health check
  GET /v1/graph   generate and render a graph

Query parameters for /v1/graph mirror the generate command flags:
num_records, multi_connection_ratio, min_connections, max_connections,
seed, edge_thickness, fig_size, and format (json, png, svg).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			runner := newRunner(ctx, noCache)
			defer runner.Close()

			printInfo("Serving on %s", addr)
			printDetail("Press Ctrl+C to stop")
			return api.New(addr, runner, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}
