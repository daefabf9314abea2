package canvas

// Anchor names a point on a connector cell's bounding box.
type Anchor int

// Anchors.
const (
	North Anchor = iota
	South
	West
	East
	Center
)

// AnchorPair is one directed line of a connector cell.
type AnchorPair struct {
	From, To Anchor
}

// ConnSubKind selects the routing correction a connector applies. Where an
// if-chain or a grouped scope sits directly above or below a nested canvas,
// the main line must shift right to route around the group indentation.
type ConnSubKind int

// Connector sub-kinds.
const (
	ConnGeneric ConnSubKind = iota
	ConnTopIf
	ConnBottomIf
)

// ConnectorCell routes flow lines through a grid cell between named anchor
// points. A cell reserves horizontal space only when a pair touches North or
// South, and vertical space only when a pair touches East or West: a pure
// vertical passthrough line needs no padding on its cross axis.
type ConnectorCell struct {
	cellBase

	SubKind     ConnSubKind
	Connections []AnchorPair

	// HShift is the open-group nesting level of this cell; each level
	// indents the main line by two group spacers.
	HShift int
}

// NewConnectorCell creates a connector cell for the given anchor pairs.
func NewConnectorCell(connections ...AnchorPair) *ConnectorCell {
	c := &ConnectorCell{Connections: connections}
	c.kind = KindConnector
	return c
}

func (c *ConnectorCell) hasVertical() bool {
	for _, conn := range c.Connections {
		if conn.From == North || conn.From == South ||
			conn.To == North || conn.To == South {
			return true
		}
	}
	return false
}

func (c *ConnectorCell) hasHorizontal() bool {
	for _, conn := range c.Connections {
		if conn.From == East || conn.From == West ||
			conn.To == East || conn.To == West {
			return true
		}
	}
	return false
}

// Render reserves space for the axes the connector actually occupies.
func (c *ConnectorCell) Render() (Size, error) {
	s := c.canvas.Settings()

	var sz Size
	if c.hasVertical() {
		sz.Width = s.MainLine + s.HCellPadding +
			float64(c.HShift)*2*s.OpenGroupHSpacer
	}
	if c.hasHorizontal() {
		sz.Height = 2 * s.VCellPadding
	}
	return c.markRendered(sz), nil
}

// midY returns the Y offset of the horizontal stub. It scans leftward along
// the row for the first non-spacer sibling: the stub must align with the
// visual center of adjacent content, not with this cell's own center. The
// scan stops at scope boundaries.
func (c *ConnectorCell) midY() float64 {
	for col := c.col - 1; col >= 0; col-- {
		cell := c.canvas.CellAt(col, c.row)
		if cell == nil || cell.isSpacer() {
			continue
		}
		if cell.isScopeItem() {
			break
		}
		if cell.Kind() != KindConnector {
			return cell.MinSize().Height / 2
		}
	}
	return c.h / 2
}

// groupDepthShift returns the extra X offset contributed by a neighboring
// nested canvas's open-group depth.
func (c *ConnectorCell) groupDepthShift(rowDelta int) float64 {
	neighbor := c.canvas.CellAt(c.col, c.row+rowDelta)
	nested, ok := neighbor.(*Canvas)
	if !ok {
		return 0
	}
	s := c.canvas.Settings()
	return float64(nested.MaxGlobalOpenGroupDepth) * 2 * s.OpenGroupHSpacer
}

// AnchorPoint resolves an anchor to absolute coordinates. Valid only after
// the cell has been drawn.
func (c *ConnectorCell) AnchorPoint(a Anchor) Point {
	s := c.canvas.Settings()
	hShift := float64(c.HShift) * 2 * s.OpenGroupHSpacer

	baseX := c.baseX
	if c.SubKind != ConnTopIf && c.SubKind != ConnBottomIf {
		baseX += hShift
	}

	switch a {
	case North:
		if c.SubKind == ConnBottomIf {
			baseX += c.groupDepthShift(-1)
		}
		return Point{baseX + s.MainLine, c.baseY}
	case South:
		if c.SubKind == ConnTopIf {
			baseX += c.groupDepthShift(+1)
		}
		return Point{baseX + s.MainLine, c.baseY + c.h}
	case West:
		return Point{baseX, c.baseY + c.midY()}
	case East:
		return Point{baseX + c.w - hShift, c.baseY + c.midY()}
	}

	// Center
	switch c.SubKind {
	case ConnTopIf:
		baseX += c.groupDepthShift(+1)
	case ConnBottomIf:
		baseX += c.groupDepthShift(-1)
	}
	return Point{baseX + s.MainLine, c.baseY + c.midY()}
}

// angled reports whether a connection mixes a vertical anchor with a
// horizontal one; such connections route through the Center anchor as two
// segments instead of a single straight line.
func angled(pair AnchorPair) bool {
	vertical := func(a Anchor) bool { return a == North || a == South }
	horizontal := func(a Anchor) bool { return a == West || a == East }
	return (vertical(pair.From) && horizontal(pair.To)) ||
		(horizontal(pair.From) && vertical(pair.To))
}

// Draw emits one path per connection.
func (c *ConnectorCell) Draw(sur Surface, x, y float64) error {
	if err := c.checkDrawable(); err != nil {
		return err
	}
	c.moveTo(x, y)

	s := c.canvas.Settings()
	pen := Pen{Color: s.LineColor, Width: s.LineWidth}

	for _, conn := range c.Connections {
		start := c.AnchorPoint(conn.From)
		end := c.AnchorPoint(conn.To)
		if angled(conn) {
			center := c.AnchorPoint(Center)
			sur.DrawPath([]Point{start, center, end}, pen)
		} else {
			sur.DrawPath([]Point{start, end}, pen)
		}
	}
	return nil
}

// SelectTooltip describes the connector.
func (c *ConnectorCell) SelectTooltip() string {
	return "Connector"
}
