package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/circuitkit/circuitkit/pkg/dag"
)

// Options configures DOT export.
type Options struct {
	// Detailed includes wire partitions and parameters in node labels.
	// When false, only the operation label is shown.
	Detailed bool
}

// ToDOT converts a commutation DAG to Graphviz DOT format. Each node is
// one operation; each edge is an ordering constraint between two
// non-commuting operations. The resulting DOT string can be rendered
// with [RenderSVG] or [RenderPNG].
func ToDOT(g *dag.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		label := fmtLabel(n, opts.Detailed)
		fmt.Fprintf(&buf, "  %d [label=%q];\n", n.ID, label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %d -> %d;\n", e[0], e[1])
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *dag.Node, detailed bool) string {
	label := fmt.Sprintf("%d: %s", n.ID, n.Op.Label())
	if !detailed {
		return label
	}

	parts := []string{label}
	if controls := n.ControlWires(); len(controls) > 0 {
		parts = append(parts, fmt.Sprintf("ctrl: %v", []int(controls)))
		parts = append(parts, fmt.Sprintf("tgt: %v", []int(n.TargetWires())))
	}
	if params := n.Op.Parameters(); len(params) > 0 {
		formatted := make([]string, len(params))
		for i, p := range params {
			formatted[i] = fmt.Sprintf("%.4g", p)
		}
		parts = append(parts, "θ: "+strings.Join(formatted, ", "))
	}
	return strings.Join(parts, "\n")
}
