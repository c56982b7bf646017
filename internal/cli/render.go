package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/circuitkit/circuitkit/pkg/cache"
	"github.com/circuitkit/circuitkit/pkg/dag"
	"github.com/circuitkit/circuitkit/pkg/render"
)

// artifactTTL bounds how long rendered artifacts stay valid in the cache.
const artifactTTL = 30 * 24 * time.Hour

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path
	format   string // output format: "svg", "png", "dot", "json"
	detailed bool   // include wires and parameters in node labels
	refresh  bool   // bypass the artifact cache
	noCache  bool   // disable the artifact cache entirely
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "dot": true, "json": true}

// renderCommand creates the render command for visualizing commutation DAGs.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "render <circuit.toml>",
		Short: "Render a circuit's commutation DAG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'svg', 'png', 'dot', or 'json')", opts.format)
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input path with the format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot, json")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include wires and parameters in node labels")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if a cached artifact exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	g, f, err := c.buildGraph(input, false)
	if err != nil {
		return err
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}

	store := newArtifactCache(opts.noCache)
	defer store.Close()

	// Rendered artifacts are keyed by the circuit's structural hash, so
	// editing the manifest invalidates the entry.
	key := cache.Key("artifact", fmt.Sprintf("%016x", f.Circuit.Hash()), opts.format, opts.detailed)

	cached := false
	var data []byte
	if !opts.refresh {
		if hit, ok, err := store.Get(ctx, key); err == nil && ok {
			data, cached = hit, true
			c.Logger.Debug("artifact cache hit", "key", key)
		}
	}

	if data == nil {
		data, err = renderArtifact(ctx, g, opts)
		if err != nil {
			return err
		}
		if err := store.Set(ctx, key, data, artifactTTL); err != nil {
			c.Logger.Debug("artifact cache write failed", "error", err)
		}
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Rendered %s", input)
	printStats(g.NodeCount(), len(g.Edges()), cached)
	printFile(out)
	return nil
}

func renderArtifact(ctx context.Context, g *dag.Graph, opts *renderOpts) ([]byte, error) {
	if opts.format == "json" {
		var buf bytes.Buffer
		if err := render.WriteJSON(g, &buf); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	dot := render.ToDOT(g, render.Options{Detailed: opts.detailed})
	switch opts.format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return render.RenderSVG(ctx, dot)
	case "png":
		return render.RenderPNG(ctx, dot)
	}
	return nil, fmt.Errorf("invalid format: %s", opts.format)
}
