// Package cli implements the circuitkit command-line interface.
//
// This package provides commands for building commutation DAGs from
// circuit manifests, rendering them as visualizations, serializing
// circuits to OpenQASM, and managing the artifact cache. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - build: Parse a circuit manifest and build its commutation DAG
//   - render: Generate DOT, SVG, or PNG visualizations of the DAG
//   - qasm: Serialize a circuit to OpenQASM 2.0
//   - cache: Manage the rendered-artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The
// logger travels through context.Context so library code can trace DAG
// construction.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/circuitkit/circuitkit/pkg/buildinfo"
	"github.com/circuitkit/circuitkit/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "circuitkit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a timestamped logger writing to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "circuitkit",
		Short:        "Circuitkit analyzes quantum circuits through their commutation structure",
		Long:         `Circuitkit is a CLI tool for building and visualizing commutation DAGs of quantum circuits: the graph whose edges are exactly the ordering constraints between non-commuting operations.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.qasmCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newArtifactCache returns the cache used for rendered artifacts. With
// noCache set, or when no cache directory can be resolved, caching is
// disabled rather than failing the command.
func newArtifactCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		printWarning("Artifact cache disabled: %v", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		printWarning("Artifact cache disabled: %v", err)
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/circuitkit/).
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
