package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".cache", "circuitkit")
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", "circuitkit") {
		t.Errorf("cacheDir() = %q, want XDG path", dir)
	}
}

func TestRootCommandWiring(t *testing.T) {
	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{
		"build":      false,
		"render":     false,
		"qasm":       false,
		"cache":      false,
		"completion": false,
	}
	for _, cmd := range root.Commands() {
		name := strings.Fields(cmd.Use)[0]
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuit.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

const testManifest = `
name = "test"

[[op]]
gate = "Hadamard"
wires = ["a"]

[[op]]
gate = "CNOT"
wires = ["a", "b"]

[[measure]]
type = "expval"
observable = "PauliZ"
wires = ["a"]
`

func TestBuildGraph(t *testing.T) {
	path := writeManifest(t, testManifest)

	c := New(os.Stderr, LogInfo)
	g, f, err := c.buildGraph(path, false)
	if err != nil {
		t.Fatalf("buildGraph error = %v", err)
	}

	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if edges := g.Edges(); len(edges) != 1 {
		t.Errorf("Edges() = %v, want one H->CNOT constraint", edges)
	}
	if f.Name != "test" {
		t.Errorf("manifest name = %q, want %q", f.Name, "test")
	}
}

func TestBuildCommand(t *testing.T) {
	path := writeManifest(t, testManifest)
	jsonOut := filepath.Join(t.TempDir(), "out.json")

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"build", path, "--json", jsonOut})

	if err := root.Execute(); err != nil {
		t.Fatalf("build command error = %v", err)
	}
	if _, err := os.Stat(jsonOut); err != nil {
		t.Errorf("JSON export missing: %v", err)
	}
}

func TestQASMCommand(t *testing.T) {
	path := writeManifest(t, testManifest)
	out := filepath.Join(t.TempDir(), "out.qasm")

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"qasm", path, "-o", out})

	if err := root.Execute(); err != nil {
		t.Fatalf("qasm command error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	qasm := string(data)
	for _, frag := range []string{"OPENQASM 2.0;", "qreg q[2];", "h q[0];", "cx q[0],q[1];"} {
		if !strings.Contains(qasm, frag) {
			t.Errorf("QASM output missing %q:\n%s", frag, qasm)
		}
	}
}

func TestRenderCommandDOT(t *testing.T) {
	path := writeManifest(t, testManifest)
	out := filepath.Join(t.TempDir(), "out.dot")

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", path, "-f", "dot", "-o", out, "--no-cache"})

	if err := root.Execute(); err != nil {
		t.Fatalf("render command error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(data), "digraph G {") {
		t.Errorf("DOT output malformed:\n%s", data)
	}
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	path := writeManifest(t, testManifest)

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", path, "-f", "gif"})
	root.SetErr(os.Stderr)

	if err := root.Execute(); err == nil {
		t.Fatal("render with invalid format: error = nil, want error")
	}
}
