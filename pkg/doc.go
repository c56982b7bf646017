// Package pkg provides the core libraries for circuitkit.
//
// # Overview
//
// Circuitkit records quantum circuits as an intermediate representation
// and analyzes them through their commutation structure: which pairs of
// operations can be reordered, and which orderings are forced. The pkg
// directory is organized as a pipeline:
//
//	Circuit manifest (TOML)
//	         ↓
//	    [circuitfile] (parse, wire-label mapping)
//	         ↓
//	    [tape] (circuit IR: operations, measurements, parameters)
//	         ↓
//	    [commutation] (pairwise commutation oracle)
//	         ↓
//	    [dag] (commutation DAG with transitive reduction)
//	         ↓
//	    [render] (DOT/SVG/PNG/JSON output)
//
// # Main Packages
//
// [wires] - Ordered sets of integer wire labels and dense relabelings.
//
// [ops] - Operation descriptors: the gate catalog, controlled-operation
// wrappers, unitary matrices, and decompositions.
//
// [tape] - The circuit IR. Tracks parameter provenance, trainable
// parameters, and supports expansion, inversion, and OpenQASM output.
//
// [commutation] - Decides whether two operations commute, combining a
// fixed kind-pair table, rotation canonicalization, and matrix fallbacks.
// Verdicts can be memoized through [commutation.Memo].
//
// [dag] - Builds the commutation DAG: one node per operation, one edge
// per forced ordering. Edges are transitively reduced during insertion.
//
// [cache] - Memory, file, and null caches used for commutation verdicts
// and rendered artifacts.
//
// [render] - Graphviz rendering and JSON interchange for commutation
// DAGs.
//
// [circuitfile] - TOML circuit manifests with string wire labels.
//
// # Quick Start
//
// Build and render the commutation DAG of a circuit:
//
//	c, _ := tape.New([]*ops.Operation{
//	    ops.Hadamard(0),
//	    ops.CNOT(0, 1),
//	    ops.RZ(0.5, 1),
//	}, nil)
//
//	g, _ := dag.FromCircuit(c)
//	dot := render.ToDOT(g, render.Options{})
//	svg, _ := render.RenderSVG(ctx, dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/dag/...      # Specific package
//	go test -run Example       # Examples only
//
// [wires]: https://pkg.go.dev/github.com/circuitkit/circuitkit/pkg/wires
// [ops]: https://pkg.go.dev/github.com/circuitkit/circuitkit/pkg/ops
// [tape]: https://pkg.go.dev/github.com/circuitkit/circuitkit/pkg/tape
// [commutation]: https://pkg.go.dev/github.com/circuitkit/circuitkit/pkg/commutation
// [dag]: https://pkg.go.dev/github.com/circuitkit/circuitkit/pkg/dag
// [cache]: https://pkg.go.dev/github.com/circuitkit/circuitkit/pkg/cache
// [render]: https://pkg.go.dev/github.com/circuitkit/circuitkit/pkg/render
// [circuitfile]: https://pkg.go.dev/github.com/circuitkit/circuitkit/pkg/circuitfile
package pkg
