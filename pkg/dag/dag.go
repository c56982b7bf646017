package dag

import (
	"fmt"
	"sort"

	"github.com/circuitkit/circuitkit/pkg/commutation"
	"github.com/circuitkit/circuitkit/pkg/ops"
	"github.com/circuitkit/circuitkit/pkg/wires"
)

// Node is one operation in the commutation DAG. Nodes carry dense integer
// IDs assigned in insertion order; every edge points from a lower ID to a
// higher one, so the graph is acyclic by construction.
type Node struct {
	// ID is the node's position in insertion order.
	ID int

	// Op is the operation the node represents.
	Op *ops.Operation

	wires    wires.Wires
	targets  wires.Wires
	controls wires.Wires

	predecessors []int
	successors   []int

	// reachable marks the node as a candidate ancestor during one
	// insertion. It is scoped to a single AddNode call.
	reachable bool
}

// Wires returns all wires the node's operation acts on.
func (n *Node) Wires() wires.Wires { return n.wires.Clone() }

// TargetWires returns the operation's target wires.
func (n *Node) TargetWires() wires.Wires { return n.targets.Clone() }

// ControlWires returns the operation's control wires, empty for
// uncontrolled operations.
func (n *Node) ControlWires() wires.Wires { return n.controls.Clone() }

// Graph is a commutation DAG under construction or finalized. Operations
// become nodes in insertion order; an edge records that two operations do
// not commute and their relative order is therefore fixed. The edge set is
// transitively reduced as nodes are inserted, so only ordering constraints
// that are not implied by other paths remain.
//
// A Graph starts in the building state. Finalize computes the successor
// sets and freezes the graph; adding nodes after that point, or querying
// successors before it, is a programming error and panics.
type Graph struct {
	nodes       []*Node
	edges       [][2]int
	wires       wires.Wires
	observables []Observable
	remap       *wires.Map
	oracle      commutation.Oracle
	finalized   bool
}

// Observable is a measured quantity attached to the DAG for downstream
// consumers, already remapped to the graph's dense wire space.
type Observable struct {
	Name  string
	Wires wires.Wires
}

// New creates an empty commutation DAG over the given wire universe.
// A nil oracle defaults to commutation.IsCommuting.
func New(universe wires.Wires, oracle commutation.Oracle) *Graph {
	if oracle == nil {
		oracle = commutation.IsCommuting
	}
	return &Graph{wires: universe.Clone(), oracle: oracle}
}

// Wires returns the graph's wire universe.
func (g *Graph) Wires() wires.Wires { return g.wires.Clone() }

// AttachObservables records observables on the graph for downstream
// consumers. Wires must already be in the graph's dense space.
func (g *Graph) AttachObservables(obs ...Observable) {
	g.observables = append(g.observables, obs...)
}

// Observables returns the observables attached to the graph.
func (g *Graph) Observables() []Observable {
	out := make([]Observable, len(g.observables))
	copy(out, g.observables)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Node returns the node with the given ID.
func (g *Graph) Node(id int) *Node {
	if id < 0 || id >= len(g.nodes) {
		panic(fmt.Sprintf("dag: node id %d out of range [0, %d)", id, len(g.nodes)))
	}
	return g.nodes[id]
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns the ordering edges as (from, to) ID pairs, from always
// lower than to.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, len(g.edges))
	copy(out, g.edges)
	return out
}

// AddNode appends an operation as a new node and inserts the ordering
// edges it needs. Prior nodes are scanned in reverse insertion order;
// a non-commuting prior node that is not already an ancestor through some
// other path gets a direct edge, and everything it dominates is pruned
// from further consideration. The resulting edge set is the transitive
// reduction of the full non-commutation relation.
//
// An oracle error (an unsupported operation) aborts construction and
// leaves the graph unusable. AddNode panics if the graph is finalized.
func (g *Graph) AddNode(op *ops.Operation) error {
	if g.finalized {
		panic("dag: AddNode called on a finalized graph")
	}

	node := &Node{
		ID:      len(g.nodes),
		Op:      op,
		wires:   op.Wires(),
		targets: op.TargetWires(),
	}
	if op.IsControlled() {
		node.controls = op.ControlWires()
	}
	g.nodes = append(g.nodes, node)

	for _, prior := range g.nodes[:node.ID] {
		prior.reachable = true
	}

	for prev := node.ID - 1; prev >= 0; prev-- {
		if !g.nodes[prev].reachable {
			continue
		}
		commutes, err := g.oracle(g.nodes[prev].Op, op)
		if err != nil {
			return fmt.Errorf("adding node %d (%s): %w", node.ID, op.Label(), err)
		}
		if commutes {
			continue
		}
		g.edges = append(g.edges, [2]int{prev, node.ID})
		g.rebuildPredecessors(node)
		for _, pred := range node.predecessors {
			g.nodes[pred].reachable = false
		}
	}
	return nil
}

// rebuildPredecessors recomputes a node's ancestor set as the merge of
// each direct predecessor's ID and ancestor set.
func (g *Graph) rebuildPredecessors(node *Node) {
	direct := g.DirectPredecessors(node.ID)
	lists := make([][]int, 0, 2*len(direct))
	for _, d := range direct {
		lists = append(lists, []int{d}, g.nodes[d].predecessors)
	}
	node.predecessors = mergeUnique(lists...)
}

// Finalize computes every node's successor set in one backward pass and
// freezes the graph. It panics when called twice.
func (g *Graph) Finalize() {
	if g.finalized {
		panic("dag: Finalize called twice")
	}
	for id := len(g.nodes) - 1; id >= 0; id-- {
		node := g.nodes[id]
		direct := g.DirectSuccessors(id)
		lists := make([][]int, 0, 2*len(direct))
		for _, d := range direct {
			lists = append(lists, []int{d}, g.nodes[d].successors)
		}
		node.successors = mergeUnique(lists...)
	}
	g.finalized = true
}

// Finalized reports whether Finalize has run.
func (g *Graph) Finalized() bool { return g.finalized }

// DirectPredecessors returns the IDs of nodes with a direct edge into the
// given node, sorted ascending.
func (g *Graph) DirectPredecessors(id int) []int {
	var out []int
	for _, e := range g.edges {
		if e[1] == id {
			out = append(out, e[0])
		}
	}
	sort.Ints(out)
	return out
}

// DirectSuccessors returns the IDs of nodes the given node has a direct
// edge into, sorted ascending.
func (g *Graph) DirectSuccessors(id int) []int {
	var out []int
	for _, e := range g.edges {
		if e[0] == id {
			out = append(out, e[1])
		}
	}
	sort.Ints(out)
	return out
}

// Predecessors returns every ancestor of the given node, sorted
// ascending.
func (g *Graph) Predecessors(id int) []int {
	p := g.Node(id).predecessors
	out := make([]int, len(p))
	copy(out, p)
	return out
}

// Successors returns every descendant of the given node, sorted
// ascending. It panics when the graph has not been finalized, since
// successor sets are only computed by Finalize.
func (g *Graph) Successors(id int) []int {
	if !g.finalized {
		panic("dag: Successors called before Finalize")
	}
	s := g.Node(id).successors
	out := make([]int, len(s))
	copy(out, s)
	return out
}
