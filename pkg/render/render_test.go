package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/circuitkit/circuitkit/pkg/dag"
	"github.com/circuitkit/circuitkit/pkg/ops"
	"github.com/circuitkit/circuitkit/pkg/tape"
	"github.com/circuitkit/circuitkit/pkg/wires"
)

func chainGraph(t *testing.T) *dag.Graph {
	t.Helper()
	c, err := tape.New([]*ops.Operation{
		ops.PauliX(0),
		ops.Hadamard(0),
		ops.PauliZ(0),
	}, []tape.Measurement{
		tape.NewObservableMeasurement(tape.Expval, ops.PauliZ(0)),
	})
	if err != nil {
		t.Fatalf("tape.New error = %v", err)
	}
	g, err := dag.FromCircuit(c)
	if err != nil {
		t.Fatalf("FromCircuit error = %v", err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	g := chainGraph(t)
	dot := ToDOT(g, Options{})

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("ToDOT() does not open a digraph:\n%s", dot)
	}
	for _, frag := range []string{
		`0 [label="0: PauliX(0)"];`,
		`1 [label="1: Hadamard(0)"];`,
		`2 [label="2: PauliZ(0)"];`,
		"0 -> 1;",
		"1 -> 2;",
	} {
		if !strings.Contains(dot, frag) {
			t.Errorf("ToDOT() missing %q:\n%s", frag, dot)
		}
	}
	if strings.Contains(dot, "0 -> 2;") {
		t.Errorf("ToDOT() contains transitively implied edge:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	c, err := tape.New([]*ops.Operation{
		ops.CRZ(0.5, 0, 1),
	}, nil)
	if err != nil {
		t.Fatalf("tape.New error = %v", err)
	}
	g, err := dag.FromCircuit(c)
	if err != nil {
		t.Fatalf("FromCircuit error = %v", err)
	}

	dot := ToDOT(g, Options{Detailed: true})
	for _, frag := range []string{"ctrl: [0]", "tgt: [1]", "θ: 0.5"} {
		if !strings.Contains(dot, frag) {
			t.Errorf("ToDOT(Detailed) missing %q:\n%s", frag, dot)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := chainGraph(t)

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON error = %v", err)
	}

	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON error = %v", err)
	}

	if back.NodeCount() != g.NodeCount() {
		t.Fatalf("NodeCount = %d, want %d", back.NodeCount(), g.NodeCount())
	}
	gotEdges, wantEdges := back.Edges(), g.Edges()
	if len(gotEdges) != len(wantEdges) {
		t.Fatalf("Edges = %v, want %v", gotEdges, wantEdges)
	}
	for i := range wantEdges {
		if gotEdges[i] != wantEdges[i] {
			t.Errorf("Edges[%d] = %v, want %v", i, gotEdges[i], wantEdges[i])
		}
	}
	for id := 0; id < g.NodeCount(); id++ {
		if got, want := back.Node(id).Op.Kind(), g.Node(id).Op.Kind(); got != want {
			t.Errorf("node %d kind = %v, want %v", id, got, want)
		}
	}
	if obs := back.Observables(); len(obs) != 1 || obs[0].Name != "PauliZ" {
		t.Errorf("Observables = %v, want one PauliZ", obs)
	}
	if !back.Finalized() {
		t.Error("imported graph not finalized")
	}
}

func TestJSONRoundTripControlled(t *testing.T) {
	c, err := tape.New([]*ops.Operation{
		ops.Toffoli(0, 1, 2),
		ops.CRot(0.1, 0.2, 0.3, 0, 2),
	}, nil)
	if err != nil {
		t.Fatalf("tape.New error = %v", err)
	}
	g, err := dag.FromCircuit(c)
	if err != nil {
		t.Fatalf("FromCircuit error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON error = %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON error = %v", err)
	}

	n := back.Node(0)
	if !n.Op.IsControlled() || !n.ControlWires().Equal(wires.New(0, 1)) {
		t.Errorf("Toffoli controls = %v, want [0 1]", n.ControlWires())
	}
	crot := back.Node(1)
	if got := crot.Op.Parameters(); len(got) != 3 || got[0] != 0.1 {
		t.Errorf("CRot parameters = %v, want [0.1 0.2 0.3]", got)
	}
}

func TestReadJSONUnknownGate(t *testing.T) {
	doc := `{"wires":[0],"nodes":[{"id":0,"gate":"Frobnicate","wires":[0]}],"edges":[]}`
	if _, err := ReadJSON(strings.NewReader(doc)); err == nil {
		t.Fatal("ReadJSON(unknown gate) error = nil, want error")
	} else if !strings.Contains(err.Error(), "Frobnicate") {
		t.Errorf("error %q does not name the gate", err)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="0.00 0.00 100.50 60.25" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.50 60.25"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if !strings.Contains(out, `width="100"`) || !strings.Contains(out, `height="60"`) {
		t.Errorf("normalizeViewBox() dimensions wrong: %s", out)
	}
}
