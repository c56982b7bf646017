package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/circuitkit/circuitkit/pkg/circuitfile"
	"github.com/circuitkit/circuitkit/pkg/commutation"
	"github.com/circuitkit/circuitkit/pkg/dag"
	"github.com/circuitkit/circuitkit/pkg/render"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	jsonOut string // write the DAG as JSON to this path
	noMemo  bool   // disable commutation verdict memoization
}

// buildCommand creates the build command: parse a circuit manifest and
// construct its commutation DAG.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build <circuit.toml>",
		Short: "Build the commutation DAG of a circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.jsonOut, "json", "", "export the DAG as JSON to the given path")
	cmd.Flags().BoolVar(&opts.noMemo, "no-memo", false, "disable commutation verdict memoization")

	return cmd
}

func (c *CLI) runBuild(input string, opts *buildOpts) error {
	g, f, err := c.buildGraph(input, opts.noMemo)
	if err != nil {
		return err
	}

	specs := f.Circuit.Specs()
	if f.Name != "" {
		fmt.Println(StyleTitle.Render(f.Name))
	}
	printSuccess("Built commutation DAG for %s", input)
	printStats(g.NodeCount(), len(g.Edges()), false)
	printKeyValue("wires", fmt.Sprintf("%d", specs.NumWires))
	printKeyValue("parameters", fmt.Sprintf("%d (%d trainable)", specs.NumParams, specs.NumTrainable))
	printKeyValue("measurements", fmt.Sprintf("%d", specs.NumMeasured))

	gates := make([]string, 0, len(specs.GateTypes))
	for name := range specs.GateTypes {
		gates = append(gates, name)
	}
	sort.Strings(gates)
	for _, name := range gates {
		printDetail("%s ×%d", name, specs.GateTypes[name])
	}

	if opts.jsonOut != "" {
		if err := render.ExportJSON(g, opts.jsonOut); err != nil {
			return err
		}
		printFile(opts.jsonOut)
	}
	return nil
}

// buildGraph parses a manifest and constructs its commutation DAG. A
// memoized oracle is used unless disabled; verdicts are cached in memory
// for the lifetime of the command.
func (c *CLI) buildGraph(input string, noMemo bool) (*dag.Graph, *circuitfile.File, error) {
	f, err := circuitfile.Parse(input)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("parsed manifest", "name", f.Name, "ops", len(f.Circuit.Operations()))

	dagOpts := []dag.Option{dag.WithLogger(c.Logger)}
	if !noMemo {
		memo := commutation.NewMemo(nil, nil)
		dagOpts = append(dagOpts, dag.WithOracle(memo.IsCommuting))
	}

	g, err := dag.FromCircuit(f.Circuit, dagOpts...)
	if err != nil {
		var unsupported *commutation.UnsupportedError
		if errors.As(err, &unsupported) {
			printError("Circuit contains an operation outside the commutation model: %s", unsupported.Op)
		}
		return nil, nil, err
	}
	return g, f, nil
}
