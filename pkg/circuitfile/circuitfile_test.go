package circuitfile

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/circuitkit/circuitkit/pkg/ops"
	"github.com/circuitkit/circuitkit/pkg/tape"
)

const bellManifest = `
name = "bell"

[[op]]
gate = "Hadamard"
wires = ["q0"]

[[op]]
gate = "CNOT"
wires = ["q0", "q1"]

[[measure]]
type = "expval"
observable = "PauliZ"
wires = ["q0"]
`

func TestParseReaderBell(t *testing.T) {
	f, err := ParseReader(strings.NewReader(bellManifest))
	if err != nil {
		t.Fatalf("ParseReader error = %v", err)
	}

	if f.Name != "bell" {
		t.Errorf("Name = %q, want %q", f.Name, "bell")
	}

	operations := f.Circuit.Operations()
	if len(operations) != 2 {
		t.Fatalf("len(operations) = %d, want 2", len(operations))
	}
	if operations[0].Kind() != ops.KindHadamard {
		t.Errorf("operations[0].Kind() = %v, want Hadamard", operations[0].Kind())
	}
	if operations[1].Kind() != ops.KindPauliX || !operations[1].IsControlled() {
		t.Errorf("operations[1] = %s, want CNOT", operations[1].Label())
	}

	if w, ok := f.Labels.Wire("q0"); !ok || w != 0 {
		t.Errorf(`Wire("q0") = (%d, %v), want (0, true)`, w, ok)
	}
	if w, ok := f.Labels.Wire("q1"); !ok || w != 1 {
		t.Errorf(`Wire("q1") = (%d, %v), want (1, true)`, w, ok)
	}
	if got := f.Labels.Label(1); got != "q1" {
		t.Errorf("Label(1) = %q, want %q", got, "q1")
	}

	measurements := f.Circuit.Measurements()
	if len(measurements) != 1 || measurements[0].Type != tape.Expval {
		t.Fatalf("Measurements() = %v, want one expval", measurements)
	}
	if measurements[0].Observable.Kind() != ops.KindPauliZ {
		t.Errorf("observable kind = %v, want PauliZ", measurements[0].Observable.Kind())
	}
}

func TestParseReaderControls(t *testing.T) {
	doc := `
[[op]]
gate = "RZ"
wires = ["t"]
controls = ["c"]
params = [0.5]
`
	f, err := ParseReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseReader error = %v", err)
	}

	op := f.Circuit.Operations()[0]
	if op.Kind() != ops.KindRZ || !op.IsControlled() {
		t.Fatalf("op = %s, want controlled RZ", op.Label())
	}
	// Controls are assigned labels before targets, so "c" is wire 0.
	if got := op.ControlWires(); len(got) != 1 || got[0] != 0 {
		t.Errorf("ControlWires() = %v, want [0]", got)
	}
	if got := op.TargetWires(); len(got) != 1 || got[0] != 1 {
		t.Errorf("TargetWires() = %v, want [1]", got)
	}
	if got := op.Parameters(); len(got) != 1 || got[0] != 0.5 {
		t.Errorf("Parameters() = %v, want [0.5]", got)
	}
}

func TestParseReaderControlledGateName(t *testing.T) {
	// A controlled catalog name plus an explicit controls list: the
	// declared control feeds the gate's own control slot instead of
	// wrapping it a second time.
	doc := `
[[op]]
gate = "CRZ"
wires = ["t"]
controls = ["c"]
params = [0.5]
`
	f, err := ParseReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseReader error = %v", err)
	}

	op := f.Circuit.Operations()[0]
	if op.Kind() != ops.KindRZ || !op.IsControlled() {
		t.Fatalf("op = %s, want controlled RZ", op.Label())
	}
	if got := op.ControlWires(); len(got) != 1 || got[0] != 0 {
		t.Errorf("ControlWires() = %v, want [0]", got)
	}
	if got := op.TargetWires(); len(got) != 1 || got[0] != 1 {
		t.Errorf("TargetWires() = %v, want [1]", got)
	}
	if op.Name() != "C(RZ)" {
		t.Errorf("Name() = %q, want %q", op.Name(), "C(RZ)")
	}
}

func TestParseExampleManifests(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.toml"))
	if err != nil {
		t.Fatalf("glob error = %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no example manifests found")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			f, err := Parse(path)
			if err != nil {
				t.Fatalf("Parse(%s) error = %v", path, err)
			}
			if len(f.Circuit.Operations()) == 0 {
				t.Errorf("Parse(%s) produced an empty circuit", path)
			}
		})
	}
}

func TestParseReaderAdjoint(t *testing.T) {
	doc := `
[[op]]
gate = "S"
wires = ["a"]
adjoint = true
`
	f, err := ParseReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseReader error = %v", err)
	}
	if op := f.Circuit.Operations()[0]; !op.IsAdjoint() {
		t.Errorf("op = %s, want adjoint S", op.Label())
	}
}

func TestParseReaderErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "unknown gate",
			doc:  "[[op]]\ngate = \"Frobnicate\"\nwires = [\"a\"]\n",
			want: `unknown gate "Frobnicate"`,
		},
		{
			name: "missing gate",
			doc:  "[[op]]\nwires = [\"a\"]\n",
			want: "missing gate name",
		},
		{
			name: "wrong arity",
			doc:  "[[op]]\ngate = \"CNOT\"\nwires = [\"a\"]\n",
			want: "takes 2 wires",
		},
		{
			name: "wrong params",
			doc:  "[[op]]\ngate = \"RX\"\nwires = [\"a\"]\n",
			want: "takes 1 parameter",
		},
		{
			name: "unknown measurement type",
			doc:  "[[op]]\ngate = \"Hadamard\"\nwires = [\"a\"]\n\n[[measure]]\ntype = \"energy\"\nwires = [\"a\"]\n",
			want: `unknown measurement type "energy"`,
		},
		{
			name: "empty manifest",
			doc:  "name = \"empty\"\n",
			want: "no operations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReader(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("ParseReader error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestParseReaderLabelReuse(t *testing.T) {
	doc := `
[[op]]
gate = "Hadamard"
wires = ["alice"]

[[op]]
gate = "CNOT"
wires = ["alice", "bob"]

[[op]]
gate = "PauliX"
wires = ["bob"]
`
	f, err := ParseReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseReader error = %v", err)
	}
	if f.Labels.Len() != 2 {
		t.Errorf("Labels.Len() = %d, want 2", f.Labels.Len())
	}
	if got := f.Circuit.Wires(); len(got) != 2 {
		t.Errorf("circuit wires = %v, want 2 distinct", got)
	}
}
