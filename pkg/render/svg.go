package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/flowcanvas/flowcanvas/pkg/canvas"
	"github.com/flowcanvas/flowcanvas/pkg/fonts"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgSurface)

// WithTooltips emits invisible hit rectangles carrying <title> elements so
// hovering a scope, comment or docstring shows its source range.
func WithTooltips() SVGOption {
	return func(s *svgSurface) { s.tooltips = true }
}

// WithFontFamily overrides the font-family written into the document.
func WithFontFamily(family string) SVGOption {
	return func(s *svgSurface) { s.fontFamily = family }
}

// WithBackground fills the whole document with a color before drawing.
func WithBackground(c canvas.Color) SVGOption {
	return func(s *svgSurface) { s.background = c }
}

// svgSurface implements canvas.Surface by appending SVG elements to a
// buffer. Elements appear in draw order, which already guarantees correct
// stacking: parents draw before their nested canvases.
type svgSurface struct {
	buf        bytes.Buffer
	tooltips   bool
	fontFamily string
	background canvas.Color
}

// RenderSVG lays out the canvas (if not already rendered) and draws it into
// a standalone SVG document.
func RenderSVG(c *canvas.Canvas, opts ...SVGOption) ([]byte, error) {
	sur := &svgSurface{fontFamily: fonts.FallbackFontFamily}
	for _, opt := range opts {
		opt(sur)
	}

	size, err := c.Render()
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	fmt.Fprintf(&out,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		size.Width, size.Height, size.Width, size.Height)
	fmt.Fprintf(&out, "<style>text { font-family: %s; white-space: pre; }</style>\n",
		sur.fontFamily)

	if sur.background != "" {
		fmt.Fprintf(&out, `<rect x="0" y="0" width="%.1f" height="%.1f" fill=%q/>`+"\n",
			size.Width, size.Height, sur.background)
	}

	if err := c.Draw(sur, 0, 0); err != nil {
		return nil, err
	}

	out.Write(sur.buf.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes(), nil
}

func (s *svgSurface) DrawRect(r canvas.Rect, stroke canvas.Pen, fill canvas.Color) {
	fmt.Fprintf(&s.buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" %s %s/>`+"\n",
		r.X, r.Y, r.Width, r.Height, strokeAttrs(stroke), fillAttr(fill))
}

func (s *svgSurface) DrawRoundedRect(r canvas.Rect, radius float64, stroke canvas.Pen, fill canvas.Color) {
	fmt.Fprintf(&s.buf, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" %s %s/>`+"\n",
		r.X, r.Y, r.Width, r.Height, radius, strokeAttrs(stroke), fillAttr(fill))
}

func (s *svgSurface) DrawLine(a, b canvas.Point, pen canvas.Pen) {
	fmt.Fprintf(&s.buf, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" %s/>`+"\n",
		a.X, a.Y, b.X, b.Y, strokeAttrs(pen))
}

func (s *svgSurface) DrawPath(points []canvas.Point, pen canvas.Pen) {
	fmt.Fprintf(&s.buf, `<polyline points="%s" fill="none" %s/>`+"\n",
		pointList(points), strokeAttrs(pen))
}

func (s *svgSurface) DrawPolygon(points []canvas.Point, stroke canvas.Pen, fill canvas.Color) {
	fmt.Fprintf(&s.buf, `<polygon points="%s" %s %s/>`+"\n",
		pointList(points), strokeAttrs(stroke), fillAttr(fill))
}

func (s *svgSurface) DrawText(at canvas.Point, text string, metrics canvas.FontMetrics, color canvas.Color) {
	// One <text> per line; SVG has no native line breaking. The baseline
	// sits at roughly 80% of the line box.
	fontSize := metrics.LineHeight * 0.75
	for i, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		fmt.Fprintf(&s.buf, `<text x="%.1f" y="%.1f" font-size="%.1f" fill=%q>%s</text>`+"\n",
			at.X, at.Y+(float64(i)+0.8)*metrics.LineHeight, fontSize, orBlack(color),
			xmlEscape(line))
	}
}

func (s *svgSurface) RegisterTarget(_ canvas.Element, region canvas.Rect, tooltip string) {
	if !s.tooltips {
		return
	}
	fmt.Fprintf(&s.buf,
		`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" pointer-events="all"><title>%s</title></rect>`+"\n",
		region.X, region.Y, region.Width, region.Height, xmlEscape(tooltip))
}

func strokeAttrs(pen canvas.Pen) string {
	attrs := fmt.Sprintf(`stroke=%q stroke-width="%.1f"`, orBlack(pen.Color), pen.Width)
	if pen.Style == canvas.LineDotted {
		attrs += ` stroke-dasharray="2,3"`
	}
	return attrs
}

func fillAttr(fill canvas.Color) string {
	if fill == "" {
		return `fill="none"`
	}
	return fmt.Sprintf("fill=%q", fill)
}

func orBlack(c canvas.Color) canvas.Color {
	if c == "" {
		return "#000000"
	}
	return c
}

func pointList(points []canvas.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = fmt.Sprintf("%.1f,%.1f", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
