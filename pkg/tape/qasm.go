package tape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/circuitkit/circuitkit/pkg/ops"
)

// QASMOptions controls OpenQASM serialization.
type QASMOptions struct {
	// Precision limits parameter formatting to the given number of
	// significant digits. Zero means full precision.
	Precision int

	// MeasureAll measures every register at the end regardless of the
	// circuit's measurements. Some consumers require all registers
	// measured; it is the safe default.
	MeasureAll bool
}

// qasmName resolves an operation to its OpenQASM 2.0 gate name, or ""
// when the serializer has no equivalent.
func qasmName(op *ops.Operation) string {
	controls := len(op.ControlWires())
	if !op.IsControlled() {
		controls = 0
	}

	switch op.Kind() {
	case ops.KindPauliX:
		switch controls {
		case 0:
			return "x"
		case 1:
			return "cx"
		case 2:
			return "ccx"
		}
	case ops.KindPauliY:
		if controls == 0 {
			return "y"
		}
	case ops.KindPauliZ:
		switch controls {
		case 0:
			return "z"
		case 1:
			return "cz"
		}
	case ops.KindHadamard:
		if controls == 0 {
			return "h"
		}
	case ops.KindS:
		if controls == 0 {
			if op.IsAdjoint() {
				return "sdg"
			}
			return "s"
		}
	case ops.KindT:
		if controls == 0 {
			if op.IsAdjoint() {
				return "tdg"
			}
			return "t"
		}
	case ops.KindIdentity:
		if controls == 0 {
			return "id"
		}
	case ops.KindRX:
		switch controls {
		case 0:
			return "rx"
		case 1:
			return "crx"
		}
	case ops.KindRY:
		switch controls {
		case 0:
			return "ry"
		case 1:
			return "cry"
		}
	case ops.KindRZ:
		switch controls {
		case 0:
			return "rz"
		case 1:
			return "crz"
		}
	case ops.KindPhaseShift, ops.KindU1:
		if controls == 0 {
			return "u1"
		}
	case ops.KindU2:
		if controls == 0 {
			return "u2"
		}
	case ops.KindU3:
		if controls == 0 {
			return "u3"
		}
	case ops.KindSWAP:
		switch controls {
		case 0:
			return "swap"
		case 1:
			return "cswap"
		}
	}
	return ""
}

// ToOpenQASM serializes the circuit as an OpenQASM 2.0 program.
// Operations outside the QASM gate set are decomposed first (two levels,
// stopping at QASM-native gates); anything still unserializable is an
// error naming the gate.
func (c *Circuit) ToOpenQASM(opts QASMOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")

	universe := c.Wires()
	if len(universe) == 0 {
		return sb.String(), nil
	}

	fmt.Fprintf(&sb, "qreg q[%d];\n", len(universe))
	fmt.Fprintf(&sb, "creg c[%d];\n", len(universe))

	expanded := c.Expand(2, func(op *ops.Operation) bool {
		return qasmName(op) != ""
	})

	for _, op := range expanded.Operations() {
		gate := qasmName(op)
		if gate == "" {
			return "", fmt.Errorf("operation %s is not supported by the QASM serializer", op.Name())
		}

		labels := make([]string, 0, len(op.Wires()))
		for _, w := range op.Wires() {
			labels = append(labels, fmt.Sprintf("q[%d]", universe.Index(w)))
		}

		params := ""
		if op.NumParams() > 0 {
			formatted := make([]string, 0, op.NumParams())
			for _, p := range op.Parameters() {
				if opts.Precision > 0 {
					formatted = append(formatted, strconv.FormatFloat(p, 'g', opts.Precision, 64))
				} else {
					formatted = append(formatted, strconv.FormatFloat(p, 'g', -1, 64))
				}
			}
			params = "(" + strings.Join(formatted, ",") + ")"
		}

		fmt.Fprintf(&sb, "%s%s %s;\n", gate, params, strings.Join(labels, ","))
	}

	if opts.MeasureAll {
		for i := range universe {
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", i, i)
		}
		return sb.String(), nil
	}

	var measured []int
	seen := make(map[int]bool)
	for _, m := range c.measurements {
		for _, w := range m.Wires() {
			idx := universe.Index(w)
			if idx >= 0 && !seen[idx] {
				seen[idx] = true
				measured = append(measured, idx)
			}
		}
	}
	for _, idx := range measured {
		fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", idx, idx)
	}
	return sb.String(), nil
}
