package ops

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/circuitkit/circuitkit/pkg/wires"
)

// Single-qubit gates.

// Hadamard creates a Hadamard gate on wire w.
func Hadamard(w int) *Operation { return newOp(KindHadamard, wires.New(w)) }

// PauliX creates a Pauli-X gate on wire w.
func PauliX(w int) *Operation { return newOp(KindPauliX, wires.New(w)) }

// PauliY creates a Pauli-Y gate on wire w.
func PauliY(w int) *Operation { return newOp(KindPauliY, wires.New(w)) }

// PauliZ creates a Pauli-Z gate on wire w.
func PauliZ(w int) *Operation { return newOp(KindPauliZ, wires.New(w)) }

// S creates a phase-π/2 gate on wire w.
func S(w int) *Operation { return newOp(KindS, wires.New(w)) }

// T creates a phase-π/4 gate on wire w.
func T(w int) *Operation { return newOp(KindT, wires.New(w)) }

// SX creates a square-root-of-X gate on wire w.
func SX(w int) *Operation { return newOp(KindSX, wires.New(w)) }

// IdentityOp creates an identity placeholder on wire w.
func IdentityOp(w int) *Operation { return newOp(KindIdentity, wires.New(w)) }

// Parametrized single-qubit rotations.

// RX creates an X-rotation by theta on wire w.
func RX(theta float64, w int) *Operation { return newOp(KindRX, wires.New(w), theta) }

// RY creates a Y-rotation by theta on wire w.
func RY(theta float64, w int) *Operation { return newOp(KindRY, wires.New(w), theta) }

// RZ creates a Z-rotation by theta on wire w.
func RZ(theta float64, w int) *Operation { return newOp(KindRZ, wires.New(w), theta) }

// PhaseShift creates a phase shift by phi on wire w.
func PhaseShift(phi float64, w int) *Operation { return newOp(KindPhaseShift, wires.New(w), phi) }

// U1 creates a U1 phase gate on wire w. U1 is matrix-identical to
// PhaseShift but keeps its own kind for table lookups.
func U1(phi float64, w int) *Operation { return newOp(KindU1, wires.New(w), phi) }

// U2 creates a two-parameter generic rotation on wire w.
func U2(phi, delta float64, w int) *Operation { return newOp(KindU2, wires.New(w), phi, delta) }

// U3 creates a three-parameter generic rotation on wire w.
func U3(theta, phi, delta float64, w int) *Operation {
	return newOp(KindU3, wires.New(w), theta, phi, delta)
}

// Rot creates the generic single-qubit rotation RZ(omega)·RY(theta)·RZ(phi).
func Rot(phi, theta, omega float64, w int) *Operation {
	return newOp(KindRot, wires.New(w), phi, theta, omega)
}

// Multi-qubit gates.

// SWAP creates a SWAP between wires a and b.
func SWAP(a, b int) *Operation { return newOp(KindSWAP, wires.New(a, b)) }

// ISWAP creates an ISWAP between wires a and b.
func ISWAP(a, b int) *Operation { return newOp(KindISWAP, wires.New(a, b)) }

// SISWAP creates a square-root-of-ISWAP between wires a and b.
func SISWAP(a, b int) *Operation { return newOp(KindSISWAP, wires.New(a, b)) }

// IsingXX creates an XX-coupling rotation on wires a and b.
func IsingXX(theta float64, a, b int) *Operation {
	return newOp(KindIsingXX, wires.New(a, b), theta)
}

// IsingYY creates a YY-coupling rotation on wires a and b.
func IsingYY(theta float64, a, b int) *Operation {
	return newOp(KindIsingYY, wires.New(a, b), theta)
}

// IsingZZ creates a ZZ-coupling rotation on wires a and b.
func IsingZZ(theta float64, a, b int) *Operation {
	return newOp(KindIsingZZ, wires.New(a, b), theta)
}

// MultiRZ creates a parity Z-rotation across the given wires.
func MultiRZ(theta float64, ws ...int) *Operation {
	return newOp(KindMultiRZ, wires.New(ws...), theta)
}

// Markers and preparations.

// Barrier creates a barrier marker across the given wires.
// Barriers never commute with anything, including other barriers.
func Barrier(ws ...int) *Operation { return newOp(KindBarrier, wires.New(ws...)) }

// WireCut creates a wire-cut marker on wire w.
func WireCut(w int) *Operation { return newOp(KindWireCut, wires.New(w)) }

// StatePrep creates a state-preparation instruction on the given wires.
func StatePrep(ws ...int) *Operation { return newOp(KindStatePrep, wires.New(ws...)) }

// BasisState creates a basis-state preparation on the given wires.
func BasisState(ws ...int) *Operation { return newOp(KindBasisState, wires.New(ws...)) }

// Generic constructs an operation of any kind without parameter
// validation. It covers template and channel kinds that have no dedicated
// constructor; such operations participate in commutation analysis but
// have no defined matrix.
func Generic(k Kind, ws ...int) *Operation {
	return newOp(k, wires.New(ws...))
}

// baseMatrix returns the unitary of an uncontrolled kind, or
// ErrMatrixUndefined for kinds without one.
func baseMatrix(k Kind, params []float64, numTargets int) (Matrix, error) {
	inv := complex(1/math.Sqrt2, 0)
	switch k {
	case KindHadamard:
		return Matrix{{inv, inv}, {inv, -inv}}, nil
	case KindPauliX:
		return Matrix{{0, 1}, {1, 0}}, nil
	case KindPauliY:
		return Matrix{{0, -1i}, {1i, 0}}, nil
	case KindPauliZ:
		return Matrix{{1, 0}, {0, -1}}, nil
	case KindIdentity:
		return Identity(1 << numTargets), nil
	case KindS:
		return Matrix{{1, 0}, {0, 1i}}, nil
	case KindT:
		return Matrix{{1, 0}, {0, cmplx.Exp(1i * math.Pi / 4)}}, nil
	case KindSX:
		return Matrix{
			{0.5 + 0.5i, 0.5 - 0.5i},
			{0.5 - 0.5i, 0.5 + 0.5i},
		}, nil
	case KindSWAP:
		return Matrix{
			{1, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
		}, nil
	case KindISWAP:
		return Matrix{
			{1, 0, 0, 0},
			{0, 0, 1i, 0},
			{0, 1i, 0, 0},
			{0, 0, 0, 1},
		}, nil
	case KindSISWAP:
		return Matrix{
			{1, 0, 0, 0},
			{0, inv, 1i * inv, 0},
			{0, 1i * inv, inv, 0},
			{0, 0, 0, 1},
		}, nil
	case KindRX:
		c, s := rotHalf(params[0])
		return Matrix{{c, -1i * s}, {-1i * s, c}}, nil
	case KindRY:
		c, s := rotHalf(params[0])
		return Matrix{{c, -s}, {s, c}}, nil
	case KindRZ:
		e := cmplx.Exp(complex(0, params[0]/2))
		return Matrix{{1 / e, 0}, {0, e}}, nil
	case KindPhaseShift, KindU1:
		return Matrix{{1, 0}, {0, cmplx.Exp(complex(0, params[0]))}}, nil
	case KindRot:
		return rotMatrix(params[0], params[1], params[2]), nil
	case KindU2:
		phi, delta := params[0], params[1]
		return Matrix{
			{inv, -inv * cmplx.Exp(complex(0, delta))},
			{inv * cmplx.Exp(complex(0, phi)), inv * cmplx.Exp(complex(0, phi+delta))},
		}, nil
	case KindU3:
		theta, phi, delta := params[0], params[1], params[2]
		c, s := rotHalf(theta)
		return Matrix{
			{c, -s * cmplx.Exp(complex(0, delta))},
			{s * cmplx.Exp(complex(0, phi)), c * cmplx.Exp(complex(0, phi+delta))},
		}, nil
	case KindIsingXX:
		c, s := rotHalf(params[0])
		m := NewMatrix(4)
		for i := 0; i < 4; i++ {
			m[i][i] = c
			m[i][3-i] = -1i * s
		}
		return m, nil
	case KindIsingYY:
		c, s := rotHalf(params[0])
		m := NewMatrix(4)
		for i := 0; i < 4; i++ {
			m[i][i] = c
		}
		m[0][3] = 1i * s
		m[3][0] = 1i * s
		m[1][2] = -1i * s
		m[2][1] = -1i * s
		return m, nil
	case KindIsingZZ:
		e := cmplx.Exp(complex(0, params[0]/2))
		return Matrix{
			{1 / e, 0, 0, 0},
			{0, e, 0, 0},
			{0, 0, e, 0},
			{0, 0, 0, 1 / e},
		}, nil
	case KindMultiRZ:
		n := 1 << numTargets
		m := NewMatrix(n)
		for i := 0; i < n; i++ {
			// parity of the basis index sets the rotation sign
			sign := 1.0
			if parity(i) {
				sign = -1.0
			}
			m[i][i] = cmplx.Exp(complex(0, -sign*params[0]/2))
		}
		return m, nil
	}
	return nil, ErrMatrixUndefined
}

// rotHalf returns cos(theta/2) and sin(theta/2) as complex values.
func rotHalf(theta float64) (complex128, complex128) {
	return complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)
}

// rotMatrix is the generic rotation RZ(omega)·RY(theta)·RZ(phi).
func rotMatrix(phi, theta, omega float64) Matrix {
	c, s := rotHalf(theta)
	ep := func(x float64) complex128 { return cmplx.Exp(complex(0, x)) }
	return Matrix{
		{ep(-(phi+omega)/2) * c, -ep((phi-omega)/2) * s},
		{ep(-(phi-omega)/2) * s, ep((phi+omega)/2) * c},
	}
}

// parity reports whether the odd bits dominate: true when the number of
// set bits in i is odd.
func parity(i int) bool {
	count := 0
	for ; i > 0; i >>= 1 {
		count += i & 1
	}
	return count%2 == 1
}

// FromName constructs a catalog operation from its name, wire list, and
// parameters. Controlled gate names (CNOT, CZ, CRZ, Toffoli, ...) read
// their control wires from the front of the wire list, matching the order
// used in circuit manifests and QASM. Unknown names produce an error.
func FromName(name string, ws []int, params []float64) (*Operation, error) {
	need := func(wires, nparams int) error {
		if len(ws) != wires {
			return fmt.Errorf("gate %s takes %d wires, got %d", name, wires, len(ws))
		}
		if len(params) != nparams {
			return fmt.Errorf("gate %s takes %d parameters, got %d", name, nparams, len(params))
		}
		return nil
	}

	one := func(build func(w int) *Operation) (*Operation, error) {
		if err := need(1, 0); err != nil {
			return nil, err
		}
		return build(ws[0]), nil
	}

	switch name {
	case "Hadamard", "H":
		return one(Hadamard)
	case "PauliX", "X":
		return one(PauliX)
	case "PauliY", "Y":
		return one(PauliY)
	case "PauliZ", "Z":
		return one(PauliZ)
	case "S":
		return one(S)
	case "T":
		return one(T)
	case "SX":
		return one(SX)
	case "Identity", "I":
		return one(IdentityOp)
	case "RX":
		if err := need(1, 1); err != nil {
			return nil, err
		}
		return RX(params[0], ws[0]), nil
	case "RY":
		if err := need(1, 1); err != nil {
			return nil, err
		}
		return RY(params[0], ws[0]), nil
	case "RZ":
		if err := need(1, 1); err != nil {
			return nil, err
		}
		return RZ(params[0], ws[0]), nil
	case "PhaseShift", "P":
		if err := need(1, 1); err != nil {
			return nil, err
		}
		return PhaseShift(params[0], ws[0]), nil
	case "U1":
		if err := need(1, 1); err != nil {
			return nil, err
		}
		return U1(params[0], ws[0]), nil
	case "U2":
		if err := need(1, 2); err != nil {
			return nil, err
		}
		return U2(params[0], params[1], ws[0]), nil
	case "U3":
		if err := need(1, 3); err != nil {
			return nil, err
		}
		return U3(params[0], params[1], params[2], ws[0]), nil
	case "Rot":
		if err := need(1, 3); err != nil {
			return nil, err
		}
		return Rot(params[0], params[1], params[2], ws[0]), nil
	case "SWAP":
		if err := need(2, 0); err != nil {
			return nil, err
		}
		return SWAP(ws[0], ws[1]), nil
	case "ISWAP":
		if err := need(2, 0); err != nil {
			return nil, err
		}
		return ISWAP(ws[0], ws[1]), nil
	case "SISWAP":
		if err := need(2, 0); err != nil {
			return nil, err
		}
		return SISWAP(ws[0], ws[1]), nil
	case "IsingXX":
		if err := need(2, 1); err != nil {
			return nil, err
		}
		return IsingXX(params[0], ws[0], ws[1]), nil
	case "IsingYY":
		if err := need(2, 1); err != nil {
			return nil, err
		}
		return IsingYY(params[0], ws[0], ws[1]), nil
	case "IsingZZ":
		if err := need(2, 1); err != nil {
			return nil, err
		}
		return IsingZZ(params[0], ws[0], ws[1]), nil
	case "MultiRZ":
		if len(ws) == 0 {
			return nil, fmt.Errorf("gate MultiRZ needs at least one wire")
		}
		if len(params) != 1 {
			return nil, fmt.Errorf("gate MultiRZ takes 1 parameter, got %d", len(params))
		}
		return MultiRZ(params[0], ws...), nil
	case "Barrier":
		return Barrier(ws...), nil
	case "WireCut":
		if err := need(1, 0); err != nil {
			return nil, err
		}
		return WireCut(ws[0]), nil
	case "StatePrep", "QubitStateVector":
		return StatePrep(ws...), nil
	case "BasisState":
		return BasisState(ws...), nil
	case "CNOT", "CX":
		if err := need(2, 0); err != nil {
			return nil, err
		}
		return CNOT(ws[0], ws[1]), nil
	case "CY":
		if err := need(2, 0); err != nil {
			return nil, err
		}
		return CY(ws[0], ws[1]), nil
	case "CZ":
		if err := need(2, 0); err != nil {
			return nil, err
		}
		return CZ(ws[0], ws[1]), nil
	case "CSWAP":
		if err := need(3, 0); err != nil {
			return nil, err
		}
		return CSWAP(ws[0], ws[1], ws[2]), nil
	case "Toffoli", "CCX":
		if err := need(3, 0); err != nil {
			return nil, err
		}
		return Toffoli(ws[0], ws[1], ws[2]), nil
	case "CRX":
		if err := need(2, 1); err != nil {
			return nil, err
		}
		return CRX(params[0], ws[0], ws[1]), nil
	case "CRY":
		if err := need(2, 1); err != nil {
			return nil, err
		}
		return CRY(params[0], ws[0], ws[1]), nil
	case "CRZ":
		if err := need(2, 1); err != nil {
			return nil, err
		}
		return CRZ(params[0], ws[0], ws[1]), nil
	case "CRot":
		if err := need(2, 3); err != nil {
			return nil, err
		}
		return CRot(params[0], params[1], params[2], ws[0], ws[1]), nil
	case "ControlledPhaseShift", "CPhase":
		if err := need(2, 1); err != nil {
			return nil, err
		}
		return CPhase(params[0], ws[0], ws[1]), nil
	}
	return nil, fmt.Errorf("unknown gate %q", name)
}
