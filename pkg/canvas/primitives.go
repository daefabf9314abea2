package canvas

// Free-standing decorations drawn by scope elements and hosts. Unlike grid
// cells they carry no address and take no part in size negotiation.

// Connector is a line between two absolute points, typically the vertical
// flow line spanning a scope or the dotted link to a loop-else block.
type Connector struct {
	settings *Settings
	a, b     Point

	// Pen overrides the default flow-line pen when non-nil.
	Pen *Pen
}

// NewConnector creates a connector between two absolute points.
func NewConnector(s *Settings, x1, y1, x2, y2 float64) *Connector {
	return &Connector{settings: s, a: Point{x1, y1}, b: Point{x2, y2}}
}

// Draw paints the connector.
func (c *Connector) Draw(sur Surface) {
	pen := Pen{Color: c.settings.LineColor, Width: c.settings.LineWidth}
	if c.Pen != nil {
		pen = *c.Pen
	}
	sur.DrawLine(c.a, c.b, pen)
}

// Line is a plain segment with optional pen overrides.
type Line struct {
	settings *Settings
	a, b     Point
	Pen      *Pen
}

// NewLine creates a line between two absolute points.
func NewLine(s *Settings, x1, y1, x2, y2 float64) *Line {
	return &Line{settings: s, a: Point{x1, y1}, b: Point{x2, y2}}
}

// Draw paints the line.
func (l *Line) Draw(sur Surface) {
	pen := Pen{Color: l.settings.LineColor, Width: l.settings.LineWidth}
	if l.Pen != nil {
		pen = *l.Pen
	}
	sur.DrawLine(l.a, l.b, pen)
}

// TextLabel is a free text run drawn with the badge font.
type TextLabel struct {
	settings *Settings
	at       Point
	text     string

	// Color overrides the default flow-line color when set.
	Color Color
}

// NewTextLabel creates a text label at an absolute position.
func NewTextLabel(s *Settings, x, y float64, text string) *TextLabel {
	return &TextLabel{settings: s, at: Point{x, y}, text: text}
}

// Draw paints the label.
func (t *TextLabel) Draw(sur Surface) {
	color := t.settings.LineColor
	if t.Color != "" {
		color = t.Color
	}
	sur.DrawText(t.at, t.text, t.settings.BadgeFont, color)
}

// RubberBand is the selection rectangle a host drags over the diagram.
// Geometry is set directly by the host between draws.
type RubberBand struct {
	settings *Settings
	rect     Rect
}

// NewRubberBand creates an empty rubber band.
func NewRubberBand(s *Settings) *RubberBand {
	return &RubberBand{settings: s}
}

// SetGeometry updates the band's rectangle in absolute coordinates.
func (r *RubberBand) SetGeometry(rect Rect) {
	r.rect = rect
}

// Draw paints the band.
func (r *RubberBand) Draw(sur Surface) {
	sur.DrawRect(r.rect,
		Pen{Color: r.settings.RubberBandBorderColor, Width: 1},
		r.settings.RubberBandFGColor)
}
