// Package circuitfile parses TOML circuit manifests into circuits.
//
// A manifest lists operations and measurements in execution order:
//
//	name = "bell"
//
//	[[op]]
//	gate = "Hadamard"
//	wires = ["q0"]
//
//	[[op]]
//	gate = "CNOT"
//	wires = ["q0", "q1"]
//
//	[[measure]]
//	type = "expval"
//	observable = "PauliZ"
//	wires = ["q0"]
//
// Wire labels are free-form strings. They are mapped to dense integer
// wires in first-seen order; the mapping is returned alongside the
// circuit so consumers can report in the manifest's labels.
package circuitfile

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/circuitkit/circuitkit/pkg/ops"
	"github.com/circuitkit/circuitkit/pkg/tape"
)

type manifest struct {
	Name     string         `toml:"name"`
	Ops      []opEntry      `toml:"op"`
	Measures []measureEntry `toml:"measure"`
}

type opEntry struct {
	Gate     string    `toml:"gate"`
	Wires    []string  `toml:"wires"`
	Controls []string  `toml:"controls"`
	Params   []float64 `toml:"params"`
	Adjoint  bool      `toml:"adjoint"`
}

type measureEntry struct {
	Type       string   `toml:"type"`
	Observable string   `toml:"observable"`
	Wires      []string `toml:"wires"`
}

// Labels is the bidirectional mapping between a manifest's string wire
// labels and the circuit's integer wires.
type Labels struct {
	byName  map[string]int
	byIndex []string
}

// Wire returns the integer wire for a manifest label.
func (l *Labels) Wire(label string) (int, bool) {
	w, ok := l.byName[label]
	return w, ok
}

// Label returns the manifest label for an integer wire, or "" when the
// wire is out of range.
func (l *Labels) Label(w int) string {
	if w < 0 || w >= len(l.byIndex) {
		return ""
	}
	return l.byIndex[w]
}

// Len returns the number of distinct labels.
func (l *Labels) Len() int { return len(l.byIndex) }

func (l *Labels) wire(label string) int {
	if w, ok := l.byName[label]; ok {
		return w
	}
	w := len(l.byIndex)
	l.byName[label] = w
	l.byIndex = append(l.byIndex, label)
	return w
}

// File is a parsed circuit manifest.
type File struct {
	Name    string
	Circuit *tape.Circuit
	Labels  *Labels
}

// Parse reads and parses a circuit manifest at path.
func Parse(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	parsed, err := ParseReader(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return parsed, nil
}

// ParseReader parses a circuit manifest from r.
func ParseReader(r io.Reader) (*File, error) {
	var m manifest
	if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}

	labels := &Labels{byName: make(map[string]int)}

	operations := make([]*ops.Operation, 0, len(m.Ops))
	for i, entry := range m.Ops {
		op, err := buildOp(entry, labels)
		if err != nil {
			return nil, fmt.Errorf("op %d: %w", i, err)
		}
		operations = append(operations, op)
	}

	measurements := make([]tape.Measurement, 0, len(m.Measures))
	for i, entry := range m.Measures {
		meas, err := buildMeasurement(entry, labels)
		if err != nil {
			return nil, fmt.Errorf("measure %d: %w", i, err)
		}
		measurements = append(measurements, meas)
	}

	circuit, err := tape.New(operations, measurements)
	if err != nil {
		return nil, err
	}
	return &File{Name: m.Name, Circuit: circuit, Labels: labels}, nil
}

func buildOp(entry opEntry, labels *Labels) (*ops.Operation, error) {
	if entry.Gate == "" {
		return nil, fmt.Errorf("missing gate name")
	}

	ws := make([]int, 0, len(entry.Controls)+len(entry.Wires))
	// Controls come first, matching the catalog's controlled-gate wire
	// order.
	for _, label := range entry.Controls {
		ws = append(ws, labels.wire(label))
	}
	numControls := len(ws)
	for _, label := range entry.Wires {
		ws = append(ws, labels.wire(label))
	}

	var op *ops.Operation
	if numControls > 0 {
		base, berr := ops.FromName(entry.Gate, ws[numControls:], entry.Params)
		if berr == nil {
			op = ops.Ctrl(base, ws[:numControls]...)
		} else {
			// Controlled catalog names (CNOT, CRZ, Toffoli) take their
			// controls as part of the wire list rather than as a base
			// gate to wrap.
			full, ferr := ops.FromName(entry.Gate, ws, entry.Params)
			if ferr != nil {
				return nil, ferr
			}
			if !full.IsControlled() || len(full.ControlWires()) != numControls {
				return nil, berr
			}
			op = full
		}
	} else {
		var err error
		op, err = ops.FromName(entry.Gate, ws, entry.Params)
		if err != nil {
			return nil, err
		}
	}

	if entry.Adjoint {
		op = op.Adjoint()
	}
	return op, nil
}

func buildMeasurement(entry measureEntry, labels *Labels) (tape.Measurement, error) {
	var rt tape.ReturnType
	switch entry.Type {
	case "expval":
		rt = tape.Expval
	case "var":
		rt = tape.Var
	case "sample":
		rt = tape.Sample
	case "probs":
		rt = tape.Probs
	case "state":
		rt = tape.State
	default:
		return tape.Measurement{}, fmt.Errorf("unknown measurement type %q", entry.Type)
	}

	ws := make([]int, 0, len(entry.Wires))
	for _, label := range entry.Wires {
		ws = append(ws, labels.wire(label))
	}

	if entry.Observable == "" {
		return tape.NewMeasurement(rt, ws...), nil
	}

	obs, err := ops.FromName(entry.Observable, ws, nil)
	if err != nil {
		return tape.Measurement{}, fmt.Errorf("observable: %w", err)
	}
	return tape.NewObservableMeasurement(rt, obs), nil
}
