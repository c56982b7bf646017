package ops

import (
	"math"

	"github.com/circuitkit/circuitkit/pkg/wires"
)

// Ctrl wraps base with the given control wires. The result keeps the base
// kind and parameters; the control wires precede the target wires in the
// combined wire sequence. Controls already present on base accumulate.
func Ctrl(base *Operation, controls ...int) *Operation {
	cp := *base
	cp.controls = wires.Union(wires.New(controls...), base.controls)
	cp.mat = nil
	return &cp
}

// Controlled constructors for the standard catalog.

// CNOT creates a controlled-X with control c and target t.
func CNOT(c, t int) *Operation { return Ctrl(PauliX(t), c) }

// CY creates a controlled-Y with control c and target t.
func CY(c, t int) *Operation { return Ctrl(PauliY(t), c) }

// CZ creates a controlled-Z with control c and target t.
func CZ(c, t int) *Operation { return Ctrl(PauliZ(t), c) }

// CSWAP creates a controlled SWAP (Fredkin) with control c.
func CSWAP(c, a, b int) *Operation { return Ctrl(SWAP(a, b), c) }

// Toffoli creates a doubly-controlled X with controls c1, c2 and target t.
func Toffoli(c1, c2, t int) *Operation { return Ctrl(PauliX(t), c1, c2) }

// MultiControlledX creates an X gate controlled on every wire in controls.
func MultiControlledX(controls []int, t int) *Operation {
	return Ctrl(PauliX(t), controls...)
}

// CRX creates a controlled X-rotation.
func CRX(theta float64, c, t int) *Operation { return Ctrl(RX(theta, t), c) }

// CRY creates a controlled Y-rotation.
func CRY(theta float64, c, t int) *Operation { return Ctrl(RY(theta, t), c) }

// CRZ creates a controlled Z-rotation.
func CRZ(theta float64, c, t int) *Operation { return Ctrl(RZ(theta, t), c) }

// CRot creates a controlled generic rotation.
func CRot(phi, theta, omega float64, c, t int) *Operation {
	return Ctrl(Rot(phi, theta, omega, t), c)
}

// CPhase creates a controlled phase shift.
func CPhase(phi float64, c, t int) *Operation { return Ctrl(PhaseShift(phi, t), c) }

// CtrlDecomposition returns the single-control decomposition shortcut for
// op, when one exists for its base kind. Shortcuts are defined for
// controlled PauliY, SWAP, PhaseShift, RX, RY, and RZ with exactly one
// control wire; every other shape returns ErrNoDecompositionShortcut so
// callers can fall back to their generic expansion path.
func CtrlDecomposition(op *Operation) ([]*Operation, error) {
	if !op.IsControlled() || len(op.controls) != 1 {
		return nil, ErrNoDecompositionShortcut
	}
	c := op.controls[0]
	targets := op.targets

	switch op.kind {
	case KindPauliY:
		t := targets[0]
		return []*Operation{CRY(math.Pi, c, t), S(c)}, nil

	case KindSWAP:
		a, b := targets[0], targets[1]
		return []*Operation{
			Toffoli(c, b, a),
			Toffoli(c, a, b),
			Toffoli(c, b, a),
		}, nil

	case KindPhaseShift:
		t := targets[0]
		phi := op.params[0]
		return []*Operation{
			PhaseShift(phi/2, c),
			CNOT(c, t),
			PhaseShift(-phi/2, t),
			CNOT(c, t),
			PhaseShift(phi/2, t),
		}, nil

	case KindRX:
		t := targets[0]
		phi := op.params[0]
		return []*Operation{
			RZ(math.Pi/2, t),
			RY(phi/2, t),
			CNOT(c, t),
			RY(-phi/2, t),
			CNOT(c, t),
			RZ(-math.Pi/2, t),
		}, nil

	case KindRY:
		t := targets[0]
		phi := op.params[0]
		return []*Operation{
			RY(phi/2, t),
			CNOT(c, t),
			RY(-phi/2, t),
			CNOT(c, t),
		}, nil

	case KindRZ:
		t := targets[0]
		phi := op.params[0]
		return []*Operation{
			PhaseShift(phi/2, t),
			CNOT(c, t),
			PhaseShift(-phi/2, t),
			CNOT(c, t),
		}, nil
	}
	return nil, ErrNoDecompositionShortcut
}

// Decompose returns a decomposition of op into simpler catalog gates.
// Controlled operations try the single-control shortcut first; a generic
// Rot expands into its Euler-angle factors; a CRot expands into the
// two-CNOT controlled-rotation identity. Everything else returns
// ErrNoDecomposition.
func Decompose(op *Operation) ([]*Operation, error) {
	if op.IsControlled() {
		if decomp, err := CtrlDecomposition(op); err == nil {
			return decomp, nil
		}
		if op.kind == KindRot && len(op.controls) == 1 {
			c := op.controls[0]
			t := op.targets[0]
			phi, theta, omega := op.params[0], op.params[1], op.params[2]
			return []*Operation{
				RZ((phi-omega)/2, t),
				CNOT(c, t),
				RZ(-(phi+omega)/2, t),
				RY(-theta/2, t),
				CNOT(c, t),
				RY(theta/2, t),
				RZ(omega, t),
			}, nil
		}
		return nil, ErrNoDecomposition
	}

	if op.kind == KindRot {
		t := op.targets[0]
		return []*Operation{
			RZ(op.params[0], t),
			RY(op.params[1], t),
			RZ(op.params[2], t),
		}, nil
	}
	return nil, ErrNoDecomposition
}
