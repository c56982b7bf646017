// Package wires provides ordered sets of wire labels and dense relabeling.
//
// A wire is an addressable qubit line. Operations declare which wires they
// act on as an ordered sequence of distinct integer labels. Labels are
// opaque: circuits may use sparse or arbitrary integers, and [Relabel]
// produces the dense 0..n-1 space the DAG builder works in, together with
// a reversible mapping for downstream reporting.
package wires

import "slices"

// Wires is an ordered sequence of distinct wire labels.
// Order is significant: for a controlled operation the control wires
// precede the target wires in the combined sequence.
type Wires []int

// New creates a Wires from labels, dropping duplicates while preserving
// first-occurrence order.
func New(labels ...int) Wires {
	w := make(Wires, 0, len(labels))
	for _, l := range labels {
		if !slices.Contains(w, l) {
			w = append(w, l)
		}
	}
	return w
}

// Contains reports whether label is in w.
func (w Wires) Contains(label int) bool {
	return slices.Contains(w, label)
}

// Index returns the position of label in w, or -1 if absent.
func (w Wires) Index(label int) int {
	return slices.Index(w, label)
}

// Equal reports whether w and other hold the same labels in the same order.
func (w Wires) Equal(other Wires) bool {
	return slices.Equal(w, other)
}

// Clone returns a copy of w.
func (w Wires) Clone() Wires {
	return slices.Clone(w)
}

// Shared returns the labels present in both a and b, in a's order.
func Shared(a, b Wires) Wires {
	var shared Wires
	for _, l := range a {
		if b.Contains(l) {
			shared = append(shared, l)
		}
	}
	return shared
}

// Disjoint reports whether a and b have no label in common.
func Disjoint(a, b Wires) bool {
	for _, l := range a {
		if b.Contains(l) {
			return false
		}
	}
	return true
}

// Union returns the labels of all sets combined, deduplicated, in
// first-occurrence order across the inputs.
func Union(sets ...Wires) Wires {
	var all Wires
	for _, s := range sets {
		for _, l := range s {
			if !all.Contains(l) {
				all = append(all, l)
			}
		}
	}
	return all
}

// Map is a reversible relabeling between original wire labels and the
// dense 0..n-1 space.
type Map struct {
	toDense    map[int]int
	toOriginal []int
}

// Relabel builds a dense relabeling of universe: the i-th distinct label
// maps to i. The returned Map translates in both directions.
func Relabel(universe Wires) *Map {
	m := &Map{
		toDense:    make(map[int]int, len(universe)),
		toOriginal: make([]int, 0, len(universe)),
	}
	for _, l := range universe {
		if _, ok := m.toDense[l]; ok {
			continue
		}
		m.toDense[l] = len(m.toOriginal)
		m.toOriginal = append(m.toOriginal, l)
	}
	return m
}

// Len returns the number of labels in the mapping.
func (m *Map) Len() int { return len(m.toOriginal) }

// ToDense translates an original label to its dense counterpart.
// The second return is false when the label was not part of the universe.
func (m *Map) ToDense(label int) (int, bool) {
	d, ok := m.toDense[label]
	return d, ok
}

// ToOriginal translates a dense label back to the original.
// The second return is false when dense is out of range.
func (m *Map) ToOriginal(dense int) (int, bool) {
	if dense < 0 || dense >= len(m.toOriginal) {
		return 0, false
	}
	return m.toOriginal[dense], true
}

// Apply translates every label in w to the dense space.
// Labels outside the universe are translated to -1.
func (m *Map) Apply(w Wires) Wires {
	out := make(Wires, len(w))
	for i, l := range w {
		d, ok := m.toDense[l]
		if !ok {
			d = -1
		}
		out[i] = d
	}
	return out
}
