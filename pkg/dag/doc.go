// Package dag builds commutation DAGs: directed acyclic graphs whose
// nodes are quantum-circuit operations and whose edges are the ordering
// constraints that quantum mechanics actually imposes.
//
// # Overview
//
// Two adjacent operations in a circuit can be swapped whenever they
// commute; the textual order of a circuit therefore over-specifies it. The
// commutation DAG keeps only the orderings that matter: an edge from node
// i to node j means operation i must run before operation j because the
// two do not commute and no other retained ordering already forces them
// apart. The construction follows the pattern-matching formulation of
// Iten, Moyard, Metger, Sutter and Woerner, "Exact and practical pattern
// matching for quantum circuit optimization" (arXiv:1909.05270).
//
// # Basic Usage
//
// Build a graph from a recorded circuit with [FromCircuit], or drive the
// lower-level API directly: create a graph with [New], append operations
// in circuit order with [Graph.AddNode], then call [Graph.Finalize] once
// to compute successor sets and freeze the graph:
//
//	g := dag.New(wires.New(0, 1, 2), nil)
//	g.AddNode(ops.CNOT(0, 1))
//	g.AddNode(ops.PauliZ(0))
//	g.Finalize()
//
// Query the structure with [Graph.DirectPredecessors], [Graph.Predecessors],
// [Graph.DirectSuccessors], [Graph.Successors] and [Graph.Edges]. All query
// results are sorted ascending by node ID.
//
// # Transitive Reduction
//
// AddNode maintains the transitive reduction of the non-commutation
// relation incrementally. When a new operation arrives, prior nodes are
// scanned newest-first; each non-commuting node that is not already an
// ancestor through a retained edge contributes a direct edge, and its
// entire ancestor set is pruned from further consideration via per-node
// reachable flags. Edges always point from a lower node ID to a higher
// one, so the graph cannot contain a cycle.
//
// # Lifecycle
//
// A graph is either building or finalized. [Graph.Successors] before
// [Graph.Finalize], a second Finalize, or [Graph.AddNode] afterwards are
// caller bugs and panic rather than returning an error.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. A finalized graph
// is read-only and can be queried from multiple goroutines.
package dag
