package tape

import (
	"github.com/circuitkit/circuitkit/pkg/ops"
)

// Expand decomposes the circuit's operations up to depth levels. stopAt
// marks operations that must be kept as-is; operations without a known
// decomposition are also kept. Measurements carry over unchanged. A depth
// of zero returns the circuit itself.
func (c *Circuit) Expand(depth int, stopAt func(*ops.Operation) bool) *Circuit {
	if depth <= 0 {
		return c
	}
	if stopAt == nil {
		stopAt = func(*ops.Operation) bool { return false }
	}

	expanded := expandOps(c.operations, depth, stopAt)
	out := &Circuit{
		operations:   expanded,
		measurements: append([]Measurement(nil), c.measurements...),
	}
	out.update()
	return out
}

func expandOps(operations []*ops.Operation, depth int, stopAt func(*ops.Operation) bool) []*ops.Operation {
	if depth == 0 {
		return operations
	}
	var out []*ops.Operation
	for _, op := range operations {
		if stopAt(op) {
			out = append(out, op)
			continue
		}
		decomp, err := ops.Decompose(op)
		if err != nil {
			// No decomposition known, keep the operation whole.
			out = append(out, op)
			continue
		}
		out = append(out, expandOps(decomp, depth-1, stopAt)...)
	}
	return out
}

// Adjoint returns the circuit's inverse: state preparations stay at the
// front, every other operation is adjointed and the sequence reversed.
// Trainable parameter indices are remapped to follow their operations to
// the new positions in the flat parameter space.
func (c *Circuit) Adjoint() *Circuit {
	var preps, rest []int
	for i, op := range c.operations {
		if op.IsStatePreparation() {
			preps = append(preps, i)
		} else {
			rest = append(rest, i)
		}
	}

	// Old flat indices grouped per operation, then laid out in the new
	// order: preparations first, the remaining groups reversed.
	groups := make([][]int, len(c.operations))
	next := 0
	for i, op := range c.operations {
		groups[i] = make([]int, op.NumParams())
		for s := range groups[i] {
			groups[i][s] = next
			next++
		}
	}

	var newOrder []int
	for _, i := range preps {
		newOrder = append(newOrder, groups[i]...)
	}
	for j := len(rest) - 1; j >= 0; j-- {
		newOrder = append(newOrder, groups[rest[j]]...)
	}

	oldToNew := make(map[int]int, len(newOrder))
	for newIdx, oldIdx := range newOrder {
		oldToNew[oldIdx] = newIdx
	}

	inverted := make([]*ops.Operation, 0, len(c.operations))
	for _, i := range preps {
		inverted = append(inverted, c.operations[i])
	}
	for j := len(rest) - 1; j >= 0; j-- {
		inverted = append(inverted, c.operations[rest[j]].Adjoint())
	}

	out := &Circuit{
		operations:   inverted,
		measurements: append([]Measurement(nil), c.measurements...),
	}
	out.update()

	remapped := make([]int, 0, len(c.trainable))
	for _, t := range c.trainable {
		remapped = append(remapped, oldToNew[t])
	}
	// Indices come from this circuit's parameter space, so they stay in
	// range after the remap.
	_ = out.SetTrainable(remapped)
	return out
}
