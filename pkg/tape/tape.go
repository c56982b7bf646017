// Package tape records quantum circuits as an ordered list of operations
// and measurements, the intermediate representation the rest of the
// project works on. A Circuit tracks where every numeric parameter lives
// (which operation, which slot), which parameters are trainable, and
// derived metadata such as the wire universe and resource counts. It
// supports structural transformations: decomposition to a target gate set,
// inversion, and serialization to OpenQASM.
package tape

import (
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"sort"

	"github.com/circuitkit/circuitkit/pkg/ops"
	"github.com/circuitkit/circuitkit/pkg/wires"
)

var (
	// ErrEmptyCircuit is returned by New when the circuit has no
	// operations and no measurements.
	ErrEmptyCircuit = errors.New("circuit has no operations or measurements")

	// ErrParamIndex is returned for parameter indices outside the
	// circuit's flat parameter space.
	ErrParamIndex = errors.New("parameter index out of range")

	// ErrParamCount is returned by SetParameters when the number of
	// values does not match the selected parameter set.
	ErrParamCount = errors.New("parameter count mismatch")
)

// ReturnType classifies what a measurement returns.
type ReturnType int

const (
	Expval ReturnType = iota
	Var
	Sample
	Probs
	State
)

var returnTypeNames = [...]string{"expval", "var", "sample", "probs", "state"}

func (r ReturnType) String() string {
	if int(r) < len(returnTypeNames) {
		return returnTypeNames[r]
	}
	return fmt.Sprintf("ReturnType(%d)", int(r))
}

// Measurement is a terminal measurement: a return type with either an
// observable or an explicit wire list. State measurements have neither.
type Measurement struct {
	Type       ReturnType
	Observable *ops.Operation
	wires      wires.Wires
}

// NewMeasurement builds a measurement over explicit wires.
func NewMeasurement(t ReturnType, ws ...int) Measurement {
	return Measurement{Type: t, wires: wires.New(ws...)}
}

// NewObservableMeasurement builds a measurement of an observable; the
// measurement's wires are the observable's.
func NewObservableMeasurement(t ReturnType, obs *ops.Operation) Measurement {
	return Measurement{Type: t, Observable: obs}
}

// Wires returns the wires the measurement acts on.
func (m Measurement) Wires() wires.Wires {
	if m.Observable != nil {
		return m.Observable.Wires()
	}
	return m.wires.Clone()
}

// ParamRef locates one flat parameter: the operation's index in the
// circuit and the parameter's slot within that operation.
type ParamRef struct {
	Op   int
	Slot int
}

// Circuit is an ordered sequence of operations followed by measurements.
// The operation list is fixed at construction; parameter values can be
// replaced through SetParameters, which preserves structure.
type Circuit struct {
	operations   []*ops.Operation
	measurements []Measurement

	universe  wires.Wires
	parInfo   []ParamRef
	trainable []int
}

// New builds a circuit and computes its metadata. Every operation must
// act on at least one wire except Barrier, which may span the whole
// register when given none.
func New(operations []*ops.Operation, measurements []Measurement) (*Circuit, error) {
	if len(operations) == 0 && len(measurements) == 0 {
		return nil, ErrEmptyCircuit
	}
	for i, op := range operations {
		if len(op.Wires()) == 0 && op.Kind() != ops.KindBarrier {
			return nil, fmt.Errorf("operation %d (%s) acts on no wires", i, op.Name())
		}
	}

	c := &Circuit{
		operations:   append([]*ops.Operation(nil), operations...),
		measurements: append([]Measurement(nil), measurements...),
	}
	c.update()
	return c, nil
}

// update recomputes derived metadata: the wire universe, the parameter
// provenance table, and the default all-trainable index set.
func (c *Circuit) update() {
	sets := make([]wires.Wires, 0, len(c.operations)+len(c.measurements))
	for _, op := range c.operations {
		sets = append(sets, op.Wires())
	}
	for _, m := range c.measurements {
		sets = append(sets, m.Wires())
	}
	c.universe = wires.Union(sets...)

	c.parInfo = c.parInfo[:0]
	for i, op := range c.operations {
		for slot := 0; slot < op.NumParams(); slot++ {
			c.parInfo = append(c.parInfo, ParamRef{Op: i, Slot: slot})
		}
	}

	c.trainable = make([]int, len(c.parInfo))
	for i := range c.trainable {
		c.trainable[i] = i
	}
}

// Operations returns the circuit's operations in order.
func (c *Circuit) Operations() []*ops.Operation {
	out := make([]*ops.Operation, len(c.operations))
	copy(out, c.operations)
	return out
}

// Measurements returns the circuit's measurements in order.
func (c *Circuit) Measurements() []Measurement {
	out := make([]Measurement, len(c.measurements))
	copy(out, c.measurements)
	return out
}

// Wires returns the circuit's wire universe: every wire any operation or
// measurement touches, in first-seen order.
func (c *Circuit) Wires() wires.Wires { return c.universe.Clone() }

// NumParams returns the size of the flat parameter space.
func (c *Circuit) NumParams() int { return len(c.parInfo) }

// TrainableParams returns the trainable parameter indices, sorted.
func (c *Circuit) TrainableParams() []int {
	out := make([]int, len(c.trainable))
	copy(out, c.trainable)
	return out
}

// SetTrainable selects which flat parameter indices are trainable.
// Indices are deduplicated and sorted; out-of-range indices are an error.
func (c *Circuit) SetTrainable(indices []int) error {
	seen := make(map[int]bool, len(indices))
	clean := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(c.parInfo) {
			return fmt.Errorf("%w: %d (circuit has %d parameters)", ErrParamIndex, idx, len(c.parInfo))
		}
		if !seen[idx] {
			seen[idx] = true
			clean = append(clean, idx)
		}
	}
	sort.Ints(clean)
	c.trainable = clean
	return nil
}

// OperationForParam resolves a flat parameter index to its operation
// index and parameter slot.
func (c *Circuit) OperationForParam(idx int) (opIndex, slot int, err error) {
	if idx < 0 || idx >= len(c.parInfo) {
		return 0, 0, fmt.Errorf("%w: %d (circuit has %d parameters)", ErrParamIndex, idx, len(c.parInfo))
	}
	ref := c.parInfo[idx]
	return ref.Op, ref.Slot, nil
}

// GetParameters returns the circuit's parameter values in flat order.
// With trainableOnly set, only trainable indices are included.
func (c *Circuit) GetParameters(trainableOnly bool) []float64 {
	indices := c.trainable
	if !trainableOnly {
		indices = make([]int, len(c.parInfo))
		for i := range indices {
			indices[i] = i
		}
	}
	out := make([]float64, 0, len(indices))
	for _, idx := range indices {
		ref := c.parInfo[idx]
		out = append(out, c.operations[ref.Op].Parameters()[ref.Slot])
	}
	return out
}

// SetParameters replaces parameter values. With trainableOnly set, values
// map onto the trainable indices in order; otherwise onto the whole flat
// parameter space. Operation structure is untouched.
func (c *Circuit) SetParameters(values []float64, trainableOnly bool) error {
	indices := c.trainable
	if !trainableOnly {
		indices = make([]int, len(c.parInfo))
		for i := range indices {
			indices[i] = i
		}
	}
	if len(values) != len(indices) {
		return fmt.Errorf("%w: got %d values for %d parameters", ErrParamCount, len(values), len(indices))
	}

	// Group new values per operation so each op is rebuilt once.
	updated := make(map[int][]float64)
	for i, idx := range indices {
		ref := c.parInfo[idx]
		params, ok := updated[ref.Op]
		if !ok {
			params = c.operations[ref.Op].Parameters()
		}
		params[ref.Slot] = values[i]
		updated[ref.Op] = params
	}
	for opIdx, params := range updated {
		op, err := c.operations[opIdx].WithParameters(params)
		if err != nil {
			return err
		}
		c.operations[opIdx] = op
	}
	return nil
}

// Specs summarizes the circuit's resources.
type Specs struct {
	GateTypes    map[string]int
	GateSizes    map[int]int
	NumOps       int
	NumWires     int
	NumParams    int
	NumTrainable int
	NumMeasured  int
}

// Specs computes the circuit's resource summary.
func (c *Circuit) Specs() Specs {
	s := Specs{
		GateTypes:    make(map[string]int),
		GateSizes:    make(map[int]int),
		NumOps:       len(c.operations),
		NumWires:     len(c.universe),
		NumParams:    len(c.parInfo),
		NumTrainable: len(c.trainable),
		NumMeasured:  len(c.measurements),
	}
	for _, op := range c.operations {
		s.GateTypes[op.Name()]++
		s.GateSizes[len(op.Wires())]++
	}
	return s
}

// Hash returns an FNV-1a fingerprint of the circuit's structure:
// operation kinds, wires, parameters, measurements, and the trainable
// index set. Circuits with equal hashes are structurally identical up to
// hash collisions.
func (c *Circuit) Hash() uint64 {
	h := fnv.New64a()
	writeUint := func(u uint64) {
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(u >> (8 * i))
		}
		h.Write(buf[:])
	}
	writeInt := func(v int) { writeUint(uint64(int64(v))) }
	for _, op := range c.operations {
		writeInt(int(op.Kind()))
		for _, w := range op.Wires() {
			writeInt(w)
		}
		writeInt(-1)
		for _, p := range op.Parameters() {
			writeUint(math.Float64bits(p))
		}
		if op.IsAdjoint() {
			writeInt(-2)
		}
	}
	for _, m := range c.measurements {
		writeInt(-3)
		writeInt(int(m.Type))
		if m.Observable != nil {
			writeInt(int(m.Observable.Kind()))
		}
		for _, w := range m.Wires() {
			writeInt(w)
		}
	}
	for _, t := range c.trainable {
		writeInt(-4)
		writeInt(t)
	}
	return h.Sum64()
}
