package canvas

// Point is an absolute 2D coordinate on the drawing surface.
type Point struct {
	X, Y float64
}

// Size is a width/height pair in surface units.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether p falls inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Color is a CSS-style hex color ("#rrggbb"). The empty color means "unset";
// surfaces skip fills with an unset color.
type Color string

// LineStyle selects the stroke dash pattern.
type LineStyle int

const (
	// LineSolid is a continuous stroke.
	LineSolid LineStyle = iota
	// LineDotted is used for weak links, e.g. the loop-else connector.
	LineDotted
)

// Pen describes stroke appearance for lines, paths and outlines.
type Pen struct {
	Color Color
	Width float64
	Style LineStyle
}

// Theme is the color triple of a scope family.
type Theme struct {
	BG     Color `toml:"bg"`
	FG     Color `toml:"fg"`
	Border Color `toml:"border"`
}

// FontMetrics measures text using fixed per-glyph dimensions. Scope text is
// monospaced, so a character-cell model is exact and keeps the render pass
// independent of any rasterizer; badge labels are short enough that the same
// model covers them.
type FontMetrics struct {
	CharWidth  float64 `toml:"charWidth"`
	LineHeight float64 `toml:"lineHeight"`

	// Badge marks runs set in the badge typeface. Rasterizers draw them
	// with the regular face instead of mono.
	Badge bool `toml:"badge"`
}

// Bounds returns the bounding box of a (possibly multi-line) text run.
// An empty string still occupies one line height, matching how an empty
// comment placeholder reserves vertical space.
func (m FontMetrics) Bounds(text string) Size {
	lines := 1
	maxLen, lineLen := 0, 0
	for _, r := range text {
		if r == '\n' {
			lines++
			lineLen = 0
			continue
		}
		lineLen++
		if lineLen > maxLen {
			maxLen = lineLen
		}
	}
	return Size{
		Width:  float64(maxLen) * m.CharWidth,
		Height: float64(lines) * m.LineHeight,
	}
}
