package ops

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestMulIdentity(t *testing.T) {
	h, err := Hadamard(0).Matrix()
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	if got := h.Mul(Identity(2)); !got.EqualApprox(h) {
		t.Errorf("H * I = %v, want H", got)
	}
}

func TestGateUnitarity(t *testing.T) {
	gates := []*Operation{
		Hadamard(0),
		PauliX(0),
		PauliY(0),
		PauliZ(0),
		S(0),
		T(0),
		SX(0),
		RX(0.3, 0),
		RY(1.1, 0),
		RZ(-0.7, 0),
		PhaseShift(0.25, 0),
		Rot(0.1, 0.2, 0.3, 0),
		U2(0.4, 0.5, 0),
		U3(0.1, 0.2, 0.3, 0),
		SWAP(0, 1),
		ISWAP(0, 1),
		SISWAP(0, 1),
		IsingXX(0.2, 0, 1),
		IsingYY(0.2, 0, 1),
		IsingZZ(0.2, 0, 1),
		CNOT(0, 1),
		CZ(0, 1),
		CRZ(0.5, 0, 1),
		Toffoli(0, 1, 2),
	}
	for _, op := range gates {
		m, err := op.Matrix()
		if err != nil {
			t.Errorf("%s: Matrix() error = %v", op.Label(), err)
			continue
		}
		if got := m.Mul(m.Dagger()); !got.EqualApprox(Identity(m.Dim())) {
			t.Errorf("%s: U * U† != I", op.Label())
		}
	}
}

func TestControlledMatrixBlockStructure(t *testing.T) {
	// CNOT embeds X as the final diagonal block.
	m, err := CNOT(0, 1).Matrix()
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	want := Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
	if !m.EqualApprox(want) {
		t.Errorf("CNOT matrix = %v, want %v", m, want)
	}
}

func TestAdjointMatrixInverts(t *testing.T) {
	for _, op := range []*Operation{S(0), T(0), RX(0.3, 0), Rot(0.1, 0.2, 0.3, 0), ISWAP(0, 1)} {
		m, err := op.Matrix()
		if err != nil {
			t.Fatalf("%s: Matrix() error = %v", op.Label(), err)
		}
		inv, err := op.Adjoint().Matrix()
		if err != nil {
			t.Fatalf("%s†: Matrix() error = %v", op.Label(), err)
		}
		if got := m.Mul(inv); !got.EqualApprox(Identity(m.Dim())) {
			t.Errorf("%s: U * U⁻¹ != I", op.Label())
		}
	}
}

func TestKron(t *testing.T) {
	x, _ := PauliX(0).Matrix()
	got := Identity(2).Kron(x)
	want := Matrix{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
	if !got.EqualApprox(want) {
		t.Errorf("I ⊗ X = %v, want %v", got, want)
	}
}

func TestBlockDiag(t *testing.T) {
	got := BlockDiag(Identity(2), Matrix{{0, 1}, {1, 0}})
	want := Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
	if !got.EqualApprox(want) {
		t.Errorf("BlockDiag = %v, want %v", got, want)
	}
}

func TestEqualApproxFailsClosed(t *testing.T) {
	a := Identity(2)
	b := Identity(2)
	b[0][0] = complex(1+10*AbsTol+10*RelTol, 0)
	if a.EqualApprox(b) {
		t.Error("EqualApprox accepted a difference outside tolerance")
	}
	if a.EqualApprox(Identity(4)) {
		t.Error("EqualApprox accepted mismatched dimensions")
	}
}

func TestEmbedSingleWire(t *testing.T) {
	x, _ := PauliX(0).Matrix()

	// X on wire 1 of a 2-wire register: wire 0 is the high bit, so the
	// embedding is I ⊗ X.
	got := Embed(x, []int{1}, 2)
	want := Identity(2).Kron(x)
	if !got.EqualApprox(want) {
		t.Errorf("Embed(X, [1], 2) = %v, want I ⊗ X", got)
	}

	// X on wire 0 is X ⊗ I.
	got = Embed(x, []int{0}, 2)
	want = x.Kron(Identity(2))
	if !got.EqualApprox(want) {
		t.Errorf("Embed(X, [0], 2) = %v, want X ⊗ I", got)
	}
}

func TestEmbedWireOrder(t *testing.T) {
	// Embedding CNOT with reversed positions swaps control and target.
	cnot, _ := CNOT(0, 1).Matrix()
	reversed := Embed(cnot, []int{1, 0}, 2)

	// CNOT with control on wire 1: |x y> -> |x⊕y y>.
	want := Matrix{
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
	}
	if !reversed.EqualApprox(want) {
		t.Errorf("Embed(CNOT, [1 0], 2) = %v, want %v", reversed, want)
	}
}

func TestCommute(t *testing.T) {
	z, _ := PauliZ(0).Matrix()
	s, _ := S(0).Matrix()
	x, _ := PauliX(0).Matrix()

	if !Commute(z, s) {
		t.Error("Commute(Z, S) = false, want true")
	}
	if Commute(z, x) {
		t.Error("Commute(Z, X) = true, want false")
	}
}

func TestRotationMatrixValues(t *testing.T) {
	m, err := RZ(math.Pi, 0).Matrix()
	if err != nil {
		t.Fatalf("Matrix() error = %v", err)
	}
	if got := m[0][0]; cmplx.Abs(got-cmplx.Exp(-1i*math.Pi/2)) > AbsTol {
		t.Errorf("RZ(π)[0][0] = %v, want e^{-iπ/2}", got)
	}
}
