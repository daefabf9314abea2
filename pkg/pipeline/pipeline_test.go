package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/cache"
	"github.com/flowcanvas/flowcanvas/pkg/canvas"
)

// sampleSource is a module with a single function, enough to exercise every
// pipeline stage.
const sampleSource = `{
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

func TestExecutePipeline(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	opts := Options{
		Source:  []byte(sampleSource),
		Formats: []string{FormatSVG, FormatJSON},
	}
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if result.Stats.ScopeCount != 2 {
		t.Errorf("ScopeCount = %d, want 2", result.Stats.ScopeCount)
	}
	if len(result.TreeHash) != 64 {
		t.Errorf("TreeHash length = %d, want 64", len(result.TreeHash))
	}
	if result.Layout.Width <= 0 || result.Layout.Height <= 0 {
		t.Errorf("layout size = %gx%g, want positive", result.Layout.Width, result.Layout.Height)
	}

	svg, ok := result.Artifacts[FormatSVG]
	if !ok {
		t.Fatal("missing svg artifact")
	}
	if !strings.HasPrefix(string(svg), "<svg") {
		t.Errorf("svg artifact starts with %q", string(svg[:10]))
	}
	if !strings.Contains(string(svg), "def main():") {
		t.Error("svg should contain the function header")
	}
	if _, ok := result.Artifacts[FormatJSON]; !ok {
		t.Error("missing json artifact")
	}

	// NullCache never hits
	if result.CacheInfo.ParseHit || result.CacheInfo.LayoutHit || result.CacheInfo.RenderHit {
		t.Errorf("CacheInfo = %+v, want no hits", result.CacheInfo)
	}
}

func TestExecuteCaching(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	runner := NewRunner(c, nil, nil)
	defer runner.Close()

	opts := Options{
		Source:  []byte(sampleSource),
		Formats: []string{FormatSVG},
	}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute error: %v", err)
	}
	if first.CacheInfo.RenderHit {
		t.Error("first run should not hit the artifact cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute error: %v", err)
	}
	if !second.CacheInfo.ParseHit {
		t.Error("second run should hit the tree cache")
	}
	if !second.CacheInfo.LayoutHit {
		t.Error("second run should hit the layout cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}

	if string(first.Artifacts[FormatSVG]) != string(second.Artifacts[FormatSVG]) {
		t.Error("cached artifact differs from rendered artifact")
	}

	// Refresh bypasses the tree cache
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("third Execute error: %v", err)
	}
	if third.CacheInfo.ParseHit || third.CacheInfo.LayoutHit {
		t.Errorf("refresh run CacheInfo = %+v, want no parse/layout hits", third.CacheInfo)
	}
}

func TestOptionsValidation(t *testing.T) {
	var empty Options
	if err := empty.ValidateAndSetDefaults(); err == nil {
		t.Error("expected error for options without source or path")
	}

	bad := Options{Source: []byte(sampleSource), Formats: []string{"bmp"}}
	if err := bad.ValidateAndSetDefaults(); err == nil {
		t.Error("expected error for invalid format")
	}

	ok := Options{Source: []byte(sampleSource)}
	if err := ok.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults error: %v", err)
	}
	if len(ok.Formats) != 1 || ok.Formats[0] != FormatSVG {
		t.Errorf("default formats = %v, want [svg]", ok.Formats)
	}
	if ok.Scale != DefaultScale {
		t.Errorf("default scale = %g, want %g", ok.Scale, DefaultScale)
	}
	if ok.Settings == nil {
		t.Error("defaults should set settings")
	}
}

func TestComputeLayoutTargets(t *testing.T) {
	tree, err := Parse(Options{Source: []byte(sampleSource)})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	_, info, err := ComputeLayout(tree, Options{})
	if err != nil {
		t.Fatalf("ComputeLayout error: %v", err)
	}
	if len(info.Targets) == 0 {
		t.Fatal("expected interaction targets")
	}

	// The function scope registers a target over its declaration lines.
	found := false
	for _, tgt := range info.Targets {
		if tgt.Lines.Begin == 3 && strings.Contains(tgt.Tooltip, "Function") {
			found = true
		}
	}
	if !found {
		t.Errorf("no function target in %d targets", len(info.Targets))
	}
}

func TestRenderDOT(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Source:  []byte(sampleSource),
		Formats: []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	dot := string(result.Artifacts[FormatDOT])
	if !strings.HasPrefix(dot, "digraph") {
		t.Errorf("dot artifact starts with %q", dot[:minInt(10, len(dot))])
	}
	if !strings.Contains(dot, "def main():") {
		t.Error("dot should contain the function label")
	}
}

func TestTargetCollectionPropagatesDrawErrors(t *testing.T) {
	s := canvas.DefaultSettings()
	unrendered := canvas.New(s)
	unrendered.AddRow(canvas.NewSpacer(s, 10, 5))

	if err := unrendered.Draw(&targetSurface{}, 0, 0); err == nil {
		t.Fatal("collecting targets from an unrendered grid should fail")
	}
}

func TestRenderGraph(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), Options{
		Source:  []byte(sampleSource),
		Formats: []string{FormatGraph},
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	svg := string(result.Artifacts[FormatGraph])
	// Graphviz keeps its XML prolog; the svg element itself is normalized.
	if !strings.Contains(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("graph artifact missing normalized svg element: %.80s", svg)
	}
	if !strings.Contains(svg, "def main():") {
		t.Error("graph should contain the function label")
	}
}

func TestSettingsHash(t *testing.T) {
	a := SettingsHash(canvas.DefaultSettings())
	b := SettingsHash(canvas.DefaultSettings())
	if a != b {
		t.Error("SettingsHash should be deterministic")
	}
	if a != SettingsHash(nil) {
		t.Error("nil settings should hash like the defaults")
	}

	changed := canvas.DefaultSettings()
	changed.HideComments = true
	if SettingsHash(changed) == a {
		t.Error("changed settings should hash differently")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
