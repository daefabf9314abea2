package nodelink

import (
	"strings"
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/flow"
)

func sampleTree() *flow.Scope {
	return &flow.Scope{
		Kind:     flow.KindModule,
		Fragment: flow.Fragment{BeginLine: 1, EndLine: 30},
		Text:     "sample.py",
		Suite: []*flow.Scope{
			{
				Kind:     flow.KindFunction,
				Fragment: flow.Fragment{BeginLine: 2, EndLine: 10},
				Text:     "def work():",
			},
			{
				Kind:     flow.KindTry,
				Fragment: flow.Fragment{BeginLine: 12, EndLine: 20},
				Text:     "try:",
				Handlers: []*flow.Scope{{
					Kind:     flow.KindExcept,
					Fragment: flow.Fragment{BeginLine: 16, EndLine: 18},
					Text:     "except OSError:",
				}},
			},
		},
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{})

	if !strings.HasPrefix(dot, "digraph flow {") {
		t.Errorf("missing digraph header: %.40s", dot)
	}
	for _, want := range []string{"sample.py", "def work():", "try:", "except OSError:"} {
		if !strings.Contains(dot, want) {
			t.Errorf("label %q missing from DOT output", want)
		}
	}

	// Module links to both top-level statements; try links to its handler.
	if got := strings.Count(dot, "->"); got != 3 {
		t.Errorf("edges = %d, want 3", got)
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{Detailed: true})
	if !strings.Contains(dot, "lines 2-10") {
		t.Error("detailed labels missing line ranges")
	}
}

func TestToDOTThemesNodes(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{})
	// Function and except nodes carry different kind colors.
	if !strings.Contains(dot, `fillcolor="#e0e5f5"`) {
		t.Error("function fill color missing")
	}
	if !strings.Contains(dot, `fillcolor="#f2d8d8"`) {
		t.Error("except fill color missing")
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(sampleTree(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}
	if !strings.Contains(string(svg), "def work():") {
		t.Error("svg should contain the function label")
	}
	// The viewBox is rewritten so the document is anchored at the origin.
	if !strings.Contains(string(svg), `viewBox="0 0 `) {
		t.Errorf("svg element not normalized: %.80s", svg)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	in := []byte(`<svg width="10"><rect/></svg>`)
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("document without a viewBox changed: %s", got)
	}
}
