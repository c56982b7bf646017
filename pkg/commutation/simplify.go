package commutation

import (
	"math"

	"github.com/circuitkit/circuitkit/pkg/ops"
)

// floorMod reduces x modulo m with the result taking the sign of m, so
// floorMod(x, 2*Pi) lies in [0, 2*Pi) and floorMod(x, -2*Pi) in (-2*Pi, 0].
func floorMod(x, m float64) float64 {
	return x - m*math.Floor(x/m)
}

// closeMod reports whether x reduced modulo m is approximately want.
func closeMod(x, m, want float64) bool {
	r := floorMod(x, m)
	return math.Abs(r-want) <= ops.AbsTol+ops.RelTol*math.Abs(want)
}

// zeroMod reports whether x is approximately a multiple of m. Both ends of
// the reduced interval count: a value just below 2*Pi reduces to nearly
// 2*Pi rather than nearly zero.
func zeroMod(x, m float64) bool {
	r := floorMod(x, m)
	return math.Abs(r) <= ops.AbsTol || math.Abs(r-m) <= ops.AbsTol
}

// Simplify canonicalizes a general rotation into a simpler named gate when
// its parameters allow it. Rot and controlled Rot reduce to an axis
// rotation or a Hadamard, U2 to RX or RY, and U3 to a single-axis
// rotation. Operations that do not match any reduction are returned
// unchanged. The input is never mutated.
func Simplify(op *ops.Operation) *ops.Operation {
	switch {
	case op.Kind() == ops.KindRot && !op.IsControlled():
		return simplifyRot(op, false)
	case op.Kind() == ops.KindRot && op.IsControlled():
		return simplifyRot(op, true)
	case op.Kind() == ops.KindU2:
		return simplifyU2(op)
	case op.Kind() == ops.KindU3:
		return simplifyU3(op)
	}
	return op
}

func simplifyRot(op *ops.Operation, controlled bool) *ops.Operation {
	p := op.Parameters()
	target := op.TargetWires()[0]

	var out *ops.Operation
	switch {
	case closeMod(p[0], 2*math.Pi, math.Pi/2) && closeMod(p[2], -2*math.Pi, -math.Pi/2):
		out = ops.RX(p[1], target)
	case zeroMod(p[0], 2*math.Pi) && zeroMod(p[2], 2*math.Pi):
		out = ops.RY(p[1], target)
	case zeroMod(p[1], 2*math.Pi):
		out = ops.RZ(p[0]+p[2], target)
	case closeMod(p[0], 2*math.Pi, math.Pi) &&
		closeMod(p[1], 2*math.Pi, math.Pi/2) &&
		zeroMod(p[2], 2*math.Pi):
		out = ops.Hadamard(target)
	default:
		return op
	}
	if controlled {
		return ops.Ctrl(out, op.ControlWires()...)
	}
	return out
}

func simplifyU2(op *ops.Operation) *ops.Operation {
	p := op.Parameters()
	target := op.TargetWires()[0]
	switch {
	case zeroMod(p[1], 2*math.Pi) && zeroMod(p[0]+p[1], 2*math.Pi):
		return ops.RY(math.Pi/2, target)
	case zeroMod(p[1], math.Pi/2) && zeroMod(p[0]+p[1], 2*math.Pi):
		return ops.RX(p[1], target)
	}
	return op
}

func simplifyU3(op *ops.Operation) *ops.Operation {
	p := op.Parameters()
	target := op.TargetWires()[0]
	switch {
	case zeroMod(p[2], 2*math.Pi) && zeroMod(p[1], 2*math.Pi) && !zeroMod(p[0], 2*math.Pi):
		return ops.RZ(p[0], target)
	case closeMod(p[2], 2*math.Pi, math.Pi/2) && zeroMod(p[1]+p[1], 2*math.Pi) && !zeroMod(p[1], 2*math.Pi):
		return ops.RX(p[1], target)
	case zeroMod(p[2], 2*math.Pi) && !zeroMod(p[1], 2*math.Pi) && zeroMod(p[1]+p[1], 2*math.Pi):
		return ops.RY(p[0], target)
	}
	return op
}
