package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fogleman/gg"

	"github.com/flowcanvas/flowcanvas/pkg/canvas"
	"github.com/flowcanvas/flowcanvas/pkg/flow"
)

func testModule() *flow.Scope {
	return &flow.Scope{
		Kind:     flow.KindModule,
		Fragment: flow.Fragment{Begin: 0, End: 200, BeginLine: 1, EndLine: 20},
		Text:     "example.py",
		Body:     &flow.Fragment{Begin: 0, End: 200, BeginLine: 1, EndLine: 20},
		Suite: []*flow.Scope{{
			Kind:     flow.KindFunction,
			Fragment: flow.Fragment{Begin: 10, End: 180, BeginLine: 2, EndLine: 18},
			Text:     "def main():",
			Body:     &flow.Fragment{Begin: 10, End: 21, BeginLine: 2, EndLine: 2},
			Name:     &flow.Fragment{Begin: 14, End: 18, BeginLine: 2, EndLine: 2},
		}},
	}
}

func TestRenderSVG(t *testing.T) {
	c, err := canvas.Build(canvas.DefaultSettings(), testModule())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	svg, err := RenderSVG(c)
	if err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}

	out := string(svg)
	if !strings.HasPrefix(out, "<svg xmlns=") {
		t.Errorf("output does not start with an svg element: %.60s", out)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Error("output is not closed")
	}
	// Two scope borders drawn as rounded rectangles.
	if got := strings.Count(out, `rx="`); got < 2 {
		t.Errorf("rounded rects = %d, want at least 2", got)
	}
	if !strings.Contains(out, "def main():") {
		t.Error("declaration text missing from output")
	}
	// No tooltips unless requested.
	if strings.Contains(out, "<title>") {
		t.Error("tooltips emitted without WithTooltips")
	}
}

func TestRenderSVGTooltips(t *testing.T) {
	c, err := canvas.Build(canvas.DefaultSettings(), testModule())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	svg, err := RenderSVG(c, WithTooltips())
	if err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}

	out := string(svg)
	if !strings.Contains(out, "<title>Function at lines 2-18</title>") {
		t.Error("function tooltip missing from output")
	}
}

func TestRenderSVGEscapesText(t *testing.T) {
	ref := testModule()
	ref.Suite[0].Text = "def cmp(a: int) -> bool: # a < b & c"

	c, err := canvas.Build(canvas.DefaultSettings(), ref)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	svg, err := RenderSVG(c)
	if err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}

	if bytes.Contains(svg, []byte("a < b & c")) {
		t.Error("text not escaped")
	}
	if !bytes.Contains(svg, []byte("a &lt; b &amp; c")) {
		t.Error("escaped text missing")
	}
}

func TestRenderSVGBackground(t *testing.T) {
	c, err := canvas.Build(canvas.DefaultSettings(), testModule())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	svg, err := RenderSVG(c, WithBackground("#fafafa"))
	if err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}
	if !bytes.Contains(svg, []byte(`fill="#fafafa"`)) {
		t.Error("background rect missing")
	}
}

func TestRenderPNG(t *testing.T) {
	c, err := canvas.Build(canvas.DefaultSettings(), testModule())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	png, err := RenderPNG(c, 1.0)
	if err != nil {
		t.Fatalf("RenderPNG error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestBadgeTextUsesRegularFace(t *testing.T) {
	draw := func(badge bool) []byte {
		sur := &pngSurface{dc: gg.NewContext(60, 20)}
		sur.dc.SetHexColor("#ffffff")
		sur.dc.Clear()
		sur.DrawText(canvas.Point{X: 2, Y: 2}, "def",
			canvas.FontMetrics{CharWidth: 7, LineHeight: 14, Badge: badge}, "#000000")

		var buf bytes.Buffer
		if err := sur.dc.EncodePNG(&buf); err != nil {
			t.Fatalf("EncodePNG error: %v", err)
		}
		return buf.Bytes()
	}

	// Go Regular and Go Mono rasterize the same label differently.
	if bytes.Equal(draw(true), draw(false)) {
		t.Error("badge run rasterized with the mono face")
	}
}
