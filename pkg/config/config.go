// Package config loads sprawl's optional TOML configuration file.
//
// The file provides defaults for generation and rendering parameters; flags
// always win over the file, and the file wins over built-in defaults.
// Lookup order: an explicit --config path, then $XDG_CONFIG_HOME/sprawl/
// sprawl.toml, then ~/.config/sprawl/sprawl.toml. A missing file is not an
// error - built-in defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sprawl/pkg/gen"
)

// appName is the directory name used under the XDG config root.
const appName = "sprawl"

// FileName is the expected configuration file name.
const FileName = "sprawl.toml"

// Config holds the file-provided defaults.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Render   RenderConfig   `toml:"render"`
}

// GenerateConfig defaults the graph shape parameters.
type GenerateConfig struct {
	NumRecords           int     `toml:"num_records"`
	MultiConnectionRatio float64 `toml:"multi_connection_ratio"`
	MinConnections       int     `toml:"min_connections"`
	MaxConnections       int     `toml:"max_connections"`
}

// RenderConfig defaults the drawing parameters.
type RenderConfig struct {
	EdgeThickness float64 `toml:"edge_thickness"`
	FigSize       int     `toml:"fig_size"`
	Format        string  `toml:"format"`
}

// Default returns the built-in defaults: 100 nodes, 0.8 multi-connection
// ratio, 2-3 connections per multi node, 10-inch PNG output.
func Default() Config {
	return Config{
		Generate: GenerateConfig{
			NumRecords:           gen.DefaultNumRecords,
			MultiConnectionRatio: gen.DefaultMultiConnectionRatio,
			MinConnections:       gen.DefaultMinConnections,
			MaxConnections:       gen.DefaultMaxConnections,
		},
		Render: RenderConfig{
			EdgeThickness: 1,
			FigSize:       10,
			Format:        "png",
		},
	}
}

// Load reads the configuration from path. An empty path falls back to the
// XDG location; a missing file at the fallback location yields Default().
// An explicitly named file that does not exist is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		dir, err := Dir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(dir, FileName)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Dir returns the configuration directory using the XDG standard
// (~/.config/sprawl/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
