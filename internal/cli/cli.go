// Package cli implements the sprawl command-line interface.
//
// This package provides commands for generating random directed graphs,
// rendering them as images, serving them over HTTP, and managing the local
// render cache. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Create a random graph and display or save it
//   - render: Draw a previously saved graph JSON file
//   - serve: Expose generation over an HTTP API
//   - cache: Manage the render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sprawl/pkg/buildinfo"
	"github.com/matzehuels/sprawl/pkg/cache"
	"github.com/matzehuels/sprawl/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "sprawl"

// Execute runs the sprawl CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "sprawl",
		Short:        "Sprawl generates and draws random directed graphs",
		Long:         `Sprawl is a CLI tool for generating random directed graphs with a controllable mix of single- and multi-connection nodes, rendered with a force-directed layout and colored edges.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// newRunner creates a pipeline runner for CLI use.
func newRunner(ctx context.Context, noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), loggerFromContext(ctx))
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	c, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return c
}

// cacheDir returns the cache directory using XDG standard (~/.cache/sprawl/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
