// Package render exports commutation DAGs for visualization and
// interchange.
//
// # Overview
//
// A commutation DAG drawn as a node-link diagram makes the ordering
// structure of a circuit visible: operations that commute sit on
// independent paths, operations that do not are chained. This package
// provides:
//
//   - DOT export ([ToDOT]) for Graphviz-based layouts
//   - SVG and PNG rendering ([RenderSVG], [RenderPNG]) via goccy/go-graphviz
//   - JSON interchange ([WriteJSON], [ReadJSON] and their file wrappers)
//
// # Rendering
//
//	g, err := dag.FromCircuit(circuit)
//	dot := render.ToDOT(g, render.Options{Detailed: true})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Interchange
//
// The JSON format records operations, edges, the wire universe, and
// observables. On import the DAG is rebuilt from the operations and the
// edges are recomputed by the commutation oracle, so a tampered edge list
// cannot produce a graph that violates the non-commutation invariant.
package render
