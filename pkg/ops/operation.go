// Package ops defines quantum operation descriptors: the gate catalog, the
// controlled-operation wrapper, and on-demand unitary matrices.
//
// An [Operation] is a single circuit instruction: a [Kind], the wires it
// acts on (optionally split into control and target wires), and numeric
// parameters. Operations are created through the catalog constructors
// ([Hadamard], [RX], [CNOT], ...) or the generic [Ctrl] wrapper and are
// treated as read-only after construction; the only mutable state is the
// memoized matrix, which is computed at most once per operation.
package ops

import (
	"errors"
	"fmt"
	"strings"

	"github.com/circuitkit/circuitkit/pkg/wires"
)

var (
	// ErrMatrixUndefined is returned by [Operation.Matrix] for kinds
	// without a defined unitary (barriers, markers, state preparations,
	// templates).
	ErrMatrixUndefined = errors.New("matrix undefined for operation")

	// ErrNoDecompositionShortcut is returned by [CtrlDecomposition] when
	// no special-case decomposition exists for the base kind. Callers
	// route this to their generic fallback path; it is not a failure.
	ErrNoDecompositionShortcut = errors.New("no controlled decomposition shortcut")

	// ErrNoDecomposition is returned by [Decompose] when the operation
	// has no decomposition at all.
	ErrNoDecomposition = errors.New("no decomposition defined")
)

// Operation is one circuit instruction.
type Operation struct {
	kind     Kind
	targets  wires.Wires
	controls wires.Wires // empty unless controlled
	params   []float64
	adj      bool // adjoint marker for gates without a closed-form inverse

	mat Matrix // memoized unitary
}

// newOp builds an uncontrolled operation.
func newOp(kind Kind, targets wires.Wires, params ...float64) *Operation {
	return &Operation{kind: kind, targets: targets, params: params}
}

// Kind returns the operation's kind. For controlled operations this is the
// base kind; use [Operation.IsControlled] to distinguish.
func (o *Operation) Kind() Kind { return o.kind }

// BaseKind is an alias of Kind, named for call sites that deal with
// controlled operations explicitly.
func (o *Operation) BaseKind() Kind { return o.kind }

// IsControlled reports whether the operation has control wires.
func (o *Operation) IsControlled() bool { return len(o.controls) > 0 }

// Wires returns all wires the operation acts on, control wires first.
func (o *Operation) Wires() wires.Wires {
	if len(o.controls) == 0 {
		return o.targets.Clone()
	}
	return wires.Union(o.controls, o.targets)
}

// ControlWires returns the control wires. For uncontrolled operations the
// control set equals the full wire set, matching the convention that both
// partitions cover the operation.
func (o *Operation) ControlWires() wires.Wires {
	if len(o.controls) == 0 {
		return o.targets.Clone()
	}
	return o.controls.Clone()
}

// TargetWires returns the target wires.
func (o *Operation) TargetWires() wires.Wires { return o.targets.Clone() }

// Parameters returns the operation's numeric parameters.
func (o *Operation) Parameters() []float64 {
	out := make([]float64, len(o.params))
	copy(out, o.params)
	return out
}

// NumParams returns the number of parameters.
func (o *Operation) NumParams() int { return len(o.params) }

// WithParameters returns a copy of o with the given parameters and a
// cleared matrix memo. The number of parameters must match.
func (o *Operation) WithParameters(params []float64) (*Operation, error) {
	if len(params) != len(o.params) {
		return nil, fmt.Errorf("operation %s takes %d parameters, got %d", o.Name(), len(o.params), len(params))
	}
	cp := *o
	cp.params = make([]float64, len(params))
	copy(cp.params, params)
	cp.mat = nil
	return &cp, nil
}

// Name returns a human-readable name: the kind name, wrapped in C(...)
// once per control wire, with a trailing dagger for adjoint-marked gates.
func (o *Operation) Name() string {
	name := o.kind.String()
	for range o.controls {
		name = "C(" + name + ")"
	}
	if o.adj {
		name += "†"
	}
	return name
}

// Label returns a compact display label including wires, e.g.
// "CRZ(2,0)" or "RX(0)".
func (o *Operation) Label() string {
	w := o.Wires()
	parts := make([]string, len(w))
	for i, l := range w {
		parts[i] = fmt.Sprintf("%d", l)
	}
	return o.Name() + "(" + strings.Join(parts, ",") + ")"
}

// IsAdjoint reports whether the operation carries the adjoint marker.
func (o *Operation) IsAdjoint() bool { return o.adj }

// Matrix materializes the operation's unitary matrix, memoizing the
// result. The matrix dimension is 2^n for an n-wire operation; controlled
// operations embed the base matrix as the final diagonal block.
func (o *Operation) Matrix() (Matrix, error) {
	if o.mat != nil {
		return o.mat, nil
	}

	base, err := baseMatrix(o.kind, o.params, len(o.targets))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, o.Name())
	}
	m := base
	if len(o.controls) > 0 {
		total := (1 << len(o.controls)) * len(base)
		m = BlockDiag(Identity(total-len(base)), base)
	}
	if o.adj {
		m = m.Dagger()
	}
	o.mat = m
	return m, nil
}

// Remap returns a copy of o with every wire label translated through m.
// The memoized matrix is preserved: relabeling does not change the
// unitary's entries, only which wires it is attached to.
func (o *Operation) Remap(m *wires.Map) *Operation {
	cp := *o
	cp.targets = m.Apply(o.targets)
	if len(o.controls) > 0 {
		cp.controls = m.Apply(o.controls)
	}
	return &cp
}

// selfInverse kinds satisfy U² = I.
func selfInverse(k Kind) bool {
	switch k {
	case KindHadamard, KindPauliX, KindPauliY, KindPauliZ, KindSWAP, KindIdentity, KindBarrier, KindWireCut:
		return true
	}
	return false
}

// negatedParams kinds invert by negating every parameter.
func negatedParams(k Kind) bool {
	switch k {
	case KindRX, KindRY, KindRZ, KindPhaseShift, KindU1, KindMultiRZ, KindIsingXX, KindIsingYY, KindIsingZZ:
		return true
	}
	return false
}

// Adjoint returns the inverse operation. Rotation-family gates negate
// their parameters (a Rot additionally reverses them), self-inverse gates
// return an equivalent copy, and everything else toggles the adjoint
// marker so the matrix is daggered on demand.
func (o *Operation) Adjoint() *Operation {
	cp := *o
	cp.mat = nil
	switch {
	case selfInverse(o.kind):
		return &cp
	case negatedParams(o.kind):
		cp.params = make([]float64, len(o.params))
		for i, p := range o.params {
			cp.params[i] = -p
		}
		return &cp
	case o.kind == KindRot:
		// Rot(φ,θ,ω)⁻¹ = Rot(−ω,−θ,−φ)
		cp.params = []float64{-o.params[2], -o.params[1], -o.params[0]}
		return &cp
	default:
		cp.adj = !o.adj
		return &cp
	}
}

// IsStatePreparation reports whether the operation prepares a state and
// must stay in front of the circuit under inversion.
func (o *Operation) IsStatePreparation() bool {
	switch o.kind {
	case KindStatePrep, KindBasisState, KindQubitDensityMatrix, KindMottonenStatePrep:
		return true
	}
	return false
}
