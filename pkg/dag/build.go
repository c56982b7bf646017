package dag

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/circuitkit/circuitkit/pkg/commutation"
	"github.com/circuitkit/circuitkit/pkg/ops"
	"github.com/circuitkit/circuitkit/pkg/tape"
	"github.com/circuitkit/circuitkit/pkg/wires"
)

// Option customizes DAG construction.
type Option func(*builder)

type builder struct {
	oracle commutation.Oracle
	logger *log.Logger
}

// WithOracle swaps the commutation oracle, e.g. for a Memo-wrapped one.
func WithOracle(oracle commutation.Oracle) Option {
	return func(b *builder) { b.oracle = oracle }
}

// WithLogger enables debug tracing of DAG construction.
func WithLogger(logger *log.Logger) Option {
	return func(b *builder) { b.logger = logger }
}

// FromCircuit builds the commutation DAG of a circuit. Wire labels are
// remapped to the dense range 0..n-1 in first-seen order before
// construction; the mapping is retained on the graph for reporting in the
// original labels. Observables are remapped the same way and attached.
func FromCircuit(circuit *tape.Circuit, opts ...Option) (*Graph, error) {
	b := &builder{oracle: commutation.IsCommuting, logger: log.Default()}
	for _, opt := range opts {
		opt(b)
	}

	universe := circuit.Wires()
	remap := wires.Relabel(universe)

	dense := make(wires.Wires, len(universe))
	for i := range dense {
		dense[i] = i
	}

	g := New(dense, b.oracle)
	g.remap = remap

	for _, m := range circuit.Measurements() {
		if m.Observable == nil {
			continue
		}
		g.observables = append(g.observables, Observable{
			Name:  m.Observable.Name(),
			Wires: remap.Apply(m.Observable.Wires()),
		})
	}

	operations := circuit.Operations()
	b.logger.Debug("building commutation DAG", "ops", len(operations), "wires", len(universe))

	for _, op := range operations {
		remapped := op.Remap(remap)
		if remapped.Kind() == ops.KindBarrier && len(remapped.Wires()) == 0 {
			// A wire-less barrier is a global fence: it spans every
			// wire of the circuit, so it orders against everything.
			remapped = ops.Barrier([]int(dense)...)
		}
		before := len(g.edges)
		if err := g.AddNode(remapped); err != nil {
			return nil, fmt.Errorf("building commutation DAG: %w", err)
		}
		b.logger.Debug("added node",
			"id", g.NodeCount()-1,
			"op", remapped.Label(),
			"edges", len(g.edges)-before)
	}

	g.Finalize()
	b.logger.Debug("finalized commutation DAG", "nodes", g.NodeCount(), "edges", len(g.edges))
	return g, nil
}

// WireMap returns the mapping between the circuit's original wire labels
// and the graph's dense wire space, nil for graphs not built from a
// circuit.
func (g *Graph) WireMap() *wires.Map { return g.remap }
