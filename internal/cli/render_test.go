package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// testSource is a minimal parsed module with one function.
const testSource = `{
  "kind": "module",
  "begin": 0, "end": 199, "beginLine": 1, "endLine": 12,
  "body": {"begin": 0, "end": 199, "beginLine": 1, "endLine": 12},
  "suite": [
    {
      "kind": "function",
      "begin": 20, "end": 199, "beginLine": 3, "endLine": 12,
      "text": "def main():",
      "body": {"begin": 32, "end": 199, "beginLine": 4, "endLine": 12},
      "name": {"begin": 24, "end": 28, "beginLine": 3, "endLine": 3}
    }
  ]
}`

// writeTestSource writes the sample tree to a temp file and returns its path.
func writeTestSource(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.flow.json")
	if err := os.WriteFile(path, []byte(testSource), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "graph.flow.json", "graph"},
		{"", "graph.json", "graph"},
		{"out.svg", "graph.flow.json", "out"},
		{"out.png", "graph.flow.json", "out"},
		{"diagrams/out", "graph.flow.json", "diagrams/out"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestRunRender(t *testing.T) {
	input := writeTestSource(t)
	outBase := filepath.Join(t.TempDir(), "out")

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	opts := renderOpts{
		output:  outBase,
		formats: []string{"svg", "json"},
		scale:   2.0,
		noCache: true,
	}
	if err := newTestCLI().runRender(cmd, input, &opts); err != nil {
		t.Fatalf("runRender error: %v", err)
	}

	svg, err := os.ReadFile(outBase + ".svg")
	if err != nil {
		t.Fatalf("read svg output: %v", err)
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Errorf("svg output starts with %q", string(svg[:10]))
	}
	if !strings.Contains(string(svg), "def main():") {
		t.Error("svg output should contain the function header")
	}

	layout, err := os.ReadFile(outBase + ".json")
	if err != nil {
		t.Fatalf("read json output: %v", err)
	}
	if !strings.Contains(string(layout), "targets") {
		t.Error("json output should contain interaction targets")
	}
}

func TestRunRenderDerivedOutput(t *testing.T) {
	input := writeTestSource(t)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	opts := renderOpts{
		formats: []string{"svg"},
		scale:   2.0,
		noCache: true,
	}
	if err := newTestCLI().runRender(cmd, input, &opts); err != nil {
		t.Fatalf("runRender error: %v", err)
	}

	// sample.flow.json renders to sample.svg next to the input
	want := filepath.Join(filepath.Dir(input), "sample.svg")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("derived output missing: %v", err)
	}
}
