package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/circuitkit/circuitkit/pkg/circuitfile"
	"github.com/circuitkit/circuitkit/pkg/tape"
)

// qasmOpts holds the command-line flags for the qasm command.
type qasmOpts struct {
	output     string // output file path; stdout when empty
	precision  int    // significant digits for parameters; 0 is full precision
	measureAll bool   // measure every register at the end
}

// qasmCommand creates the qasm command for OpenQASM 2.0 serialization.
func (c *CLI) qasmCommand() *cobra.Command {
	var opts qasmOpts

	cmd := &cobra.Command{
		Use:   "qasm <circuit.toml>",
		Short: "Serialize a circuit to OpenQASM 2.0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runQASM(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&opts.precision, "precision", 0, "significant digits for parameters (0 for full precision)")
	cmd.Flags().BoolVar(&opts.measureAll, "measure-all", false, "measure every register at the end")

	return cmd
}

func (c *CLI) runQASM(input string, opts *qasmOpts) error {
	f, err := circuitfile.Parse(input)
	if err != nil {
		return err
	}

	qasm, err := f.Circuit.ToOpenQASM(tape.QASMOptions{
		Precision:  opts.precision,
		MeasureAll: opts.measureAll,
	})
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Print(qasm)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(qasm), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Serialized %s", input)
	printFile(opts.output)
	return nil
}
