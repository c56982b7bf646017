package dag_test

import (
	"fmt"

	"github.com/circuitkit/circuitkit/pkg/dag"
	"github.com/circuitkit/circuitkit/pkg/ops"
	"github.com/circuitkit/circuitkit/pkg/wires"
)

func ExampleGraph_basic() {
	// Three operations on one wire that pairwise refuse to commute form
	// a chain, not a triangle: the X -> Z constraint is already implied.
	g := dag.New(wires.New(0), nil)
	_ = g.AddNode(ops.PauliX(0))
	_ = g.AddNode(ops.Hadamard(0))
	_ = g.AddNode(ops.PauliZ(0))
	g.Finalize()

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", g.Edges())
	// Output:
	// Nodes: 3
	// Edges: [[0 1] [1 2]]
}

func ExampleGraph_queries() {
	// A Z on the control wire commutes with the CNOT; an X on the
	// control does not.
	g := dag.New(wires.New(0, 1), nil)
	_ = g.AddNode(ops.CNOT(0, 1))
	_ = g.AddNode(ops.PauliZ(0))
	_ = g.AddNode(ops.PauliX(0))
	g.Finalize()

	fmt.Println("Predecessors of Z:", g.Predecessors(1))
	fmt.Println("Predecessors of X:", g.Predecessors(2))
	fmt.Println("Successors of CNOT:", g.Successors(0))
	// Output:
	// Predecessors of Z: []
	// Predecessors of X: [0 1]
	// Successors of CNOT: [2]
}
