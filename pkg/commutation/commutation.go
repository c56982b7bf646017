// Package commutation decides whether pairs of quantum operations commute.
//
// The oracle combines a fixed pairwise lookup table over the supported gate
// kinds with a short decision procedure: rotations are canonicalized first,
// rotations that reduce to the identity short-circuit, disjoint operations
// always commute, and controlled operations are split into their control
// and target parts so each part can be checked against the table. A small
// number of parametric pairs fall back to a dense matrix check.
package commutation

import (
	"fmt"
	"math"

	"github.com/circuitkit/circuitkit/pkg/ops"
	"github.com/circuitkit/circuitkit/pkg/wires"
)

// UnsupportedError is returned when one of the operations has no
// commutation relation defined, such as channels or arbitrary
// multi-qubit unitaries.
type UnsupportedError struct {
	// Op is the display name of the offending operation.
	Op string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("operation %s is not supported by the commutation oracle", e.Op)
}

// IsCommuting reports whether two operations commute. The check is
// symmetric: IsCommuting(a, b) and IsCommuting(b, a) agree. An
// UnsupportedError is returned when either operation's kind has no
// commutation relation defined; the boolean result is meaningless in
// that case.
func IsCommuting(a, b *ops.Operation) (bool, error) {
	if a.Kind().IsUnsupported() {
		return false, &UnsupportedError{Op: a.Name()}
	}
	if b.Kind().IsUnsupported() {
		return false, &UnsupportedError{Op: b.Name()}
	}

	a = Simplify(a)
	b = Simplify(b)

	// A parametric gate whose parameters all vanish modulo 2*Pi acts as
	// the identity and commutes with everything except the marker
	// pseudo-gates. U2 is excluded: it is a fixed basis change for every
	// parameter value.
	if isIdentityLike(a) {
		return !isMarker(b), nil
	}
	if isIdentityLike(b) {
		return !isMarker(a), nil
	}

	if wires.Disjoint(a.Wires(), b.Wires()) {
		return true, nil
	}

	// Structured templates and state preparations have no pairwise
	// commutation relation on overlapping wires.
	if a.Kind().IsTemplate() || b.Kind().IsTemplate() {
		return false, nil
	}

	aCRot := a.IsControlled() && a.Kind() == ops.KindRot
	bCRot := b.IsControlled() && b.Kind() == ops.KindRot

	if aCRot && bCRot {
		return crotPair(a, b), nil
	}
	if a.Kind().IsRotationFamily() && b.Kind().IsRotationFamily() {
		switch {
		case aCRot:
			return crotVersusRotation(a, b), nil
		case bCRot:
			return crotVersusRotation(b, a), nil
		default:
			return matricesCommute(a, b), nil
		}
	}

	switch {
	case a.IsControlled() && b.IsControlled():
		return bothControlled(a, b), nil
	case a.IsControlled():
		return oneControlled(a, b), nil
	case b.IsControlled():
		return oneControlled(b, a), nil
	}

	// The swap-family rows hold only for gates acting on the same wire
	// pair. Overlapping on a single wire chains the permutations, which
	// never commute.
	if swapFamily(a.Kind()) && swapFamily(b.Kind()) &&
		len(wires.Shared(a.Wires(), b.Wires())) != len(a.Wires()) {
		return false, nil
	}
	return tableCommute(a.Kind(), b.Kind()), nil
}

// swapFamily reports whether k permutes its wire pair.
func swapFamily(k ops.Kind) bool {
	return k == ops.KindSWAP || k == ops.KindISWAP || k == ops.KindSISWAP
}

func isIdentityLike(op *ops.Operation) bool {
	params := op.Parameters()
	if len(params) == 0 || op.Kind() == ops.KindU2 {
		return false
	}
	for _, p := range params {
		if !zeroMod(p, 2*math.Pi) {
			return false
		}
	}
	return true
}

func isMarker(op *ops.Operation) bool {
	return op.Kind() == ops.KindBarrier || op.Kind() == ops.KindWireCut
}

// crotPair decides two controlled Rot gates that resisted
// simplification. Overlapping controls alone never force an ordering
// because both gates are diagonal on the shared wire.
func crotPair(a, b *ops.Operation) bool {
	cc := len(wires.Shared(a.ControlWires(), b.ControlWires())) > 0
	tt := len(wires.Shared(a.TargetWires(), b.TargetWires())) > 0
	switch {
	case cc && tt:
		return matricesCommute(a, b)
	case cc:
		return true
	case tt:
		pa, pb := a.Parameters(), b.Parameters()
		ma, _ := ops.Rot(pa[0], pa[1], pa[2], a.TargetWires()[0]).Matrix()
		mb, _ := ops.Rot(pb[0], pb[1], pb[2], b.TargetWires()[0]).Matrix()
		return ops.Commute(ma, mb)
	}
	return false
}

// crotVersusRotation decides a controlled Rot against an uncontrolled
// rotation. When only the control wire overlaps, the control part is
// diagonal and the table answers; otherwise the target blocks commute
// exactly when their dense matrices do.
func crotVersusRotation(crot, rot *ops.Operation) bool {
	if wires.Disjoint(crot.TargetWires(), rot.Wires()) {
		return tableCommute(ops.KindCtrl, rot.Kind())
	}
	p := crot.Parameters()
	mc, _ := ops.Rot(p[0], p[1], p[2], crot.TargetWires()[0]).Matrix()
	mr, err := rot.Matrix()
	if err != nil {
		return false
	}
	return ops.Commute(mc, mr)
}

func matricesCommute(a, b *ops.Operation) bool {
	ma, errA := a.Matrix()
	mb, errB := b.Matrix()
	if errA != nil || errB != nil || ma.Dim() != mb.Dim() {
		return false
	}
	return ops.Commute(ma, mb)
}

// bothControlled splits two controlled operations into control and
// target parts and checks each overlapping pairing against the table.
// Controls behave like the ctrl pseudo-kind, targets like their base
// kind.
func bothControlled(a, b *ops.Operation) bool {
	cc := len(wires.Shared(a.ControlWires(), b.ControlWires())) > 0
	tt := len(wires.Shared(a.TargetWires(), b.TargetWires())) > 0
	ct := len(wires.Shared(a.ControlWires(), b.TargetWires())) > 0
	tc := len(wires.Shared(a.TargetWires(), b.ControlWires())) > 0

	base1, base2 := a.BaseKind(), b.BaseKind()

	switch {
	case cc && !tt && !ct && !tc:
		return true
	case !cc && tt && !ct && !tc:
		return tableCommute(base1, base2)
	case cc && tt && !ct && !tc:
		return tableCommute(base1, base2)
	case ct && tc && !tt:
		return tableCommute(ops.KindCtrl, base2) && tableCommute(base1, ops.KindCtrl)
	case ct && !tc && tt:
		return tableCommute(ops.KindCtrl, base2) && tableCommute(base1, base2)
	case tc && !ct && tt:
		return tableCommute(base1, ops.KindCtrl) && tableCommute(base1, base2)
	case tc && !ct && !tt:
		return tableCommute(base1, ops.KindCtrl)
	case ct && !tc && !tt:
		return tableCommute(ops.KindCtrl, base2)
	case tc && ct && tt:
		return tableCommute(base1, ops.KindCtrl) &&
			tableCommute(ops.KindCtrl, base2) &&
			tableCommute(base1, base2)
	}
	return false
}

// oneControlled decides a controlled operation against a plain one. The
// plain operation must commute with every part of the controlled gate
// it overlaps.
func oneControlled(ctrl, plain *ops.Operation) bool {
	ct := len(wires.Shared(ctrl.ControlWires(), plain.Wires())) > 0
	tt := len(wires.Shared(ctrl.TargetWires(), plain.Wires())) > 0
	switch {
	case ct && tt:
		return tableCommute(ctrl.BaseKind(), plain.Kind()) &&
			tableCommute(ops.KindCtrl, plain.Kind())
	case ct:
		return tableCommute(ops.KindCtrl, plain.Kind())
	case tt:
		return tableCommute(ctrl.BaseKind(), plain.Kind())
	}
	return false
}
