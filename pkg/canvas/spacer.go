package canvas

// SpacerCell reserves blank space in the grid. It emits nothing during the
// draw pass; Draw only records the cell's origin.
type SpacerCell struct {
	cellBase
}

// NewSpacer creates a spacer with an explicit size. Negative dimensions
// select the settings defaults (HSpacer/VSpacer).
func NewSpacer(s *Settings, width, height float64) *SpacerCell {
	if width < 0 {
		width = s.HSpacer
	}
	if height < 0 {
		height = s.VSpacer
	}
	c := &SpacerCell{}
	c.kind = KindSpacer
	c.minW, c.minH = width, height
	return c
}

// Render returns the construction-time size unchanged.
func (c *SpacerCell) Render() (Size, error) {
	return c.markRendered(Size{c.minW, c.minH}), nil
}

// Draw records the origin and emits nothing.
func (c *SpacerCell) Draw(_ Surface, x, y float64) error {
	if err := c.checkDrawable(); err != nil {
		return err
	}
	c.moveTo(x, y)
	return nil
}

// NewVacant creates a zero-size placeholder reserved for a future cell,
// used when the grid is pre-sized before its content is known.
func NewVacant() *SpacerCell {
	c := &SpacerCell{}
	c.kind = KindVacant
	return c
}

// NewHSpacer creates a spacer fixed to the horizontal spacing constant
// (or an explicit width when width >= 0) with zero height.
func NewHSpacer(s *Settings, width float64) *SpacerCell {
	if width < 0 {
		width = s.HSpacer
	}
	c := &SpacerCell{}
	c.kind = KindHSpacer
	c.minW = width
	return c
}

// NewVSpacer creates a spacer fixed to the vertical spacing constant
// (or an explicit height when height >= 0) with zero width.
func NewVSpacer(s *Settings, height float64) *SpacerCell {
	if height < 0 {
		height = s.VSpacer
	}
	c := &SpacerCell{}
	c.kind = KindVSpacer
	c.minH = height
	return c
}

// NewScopeHEdge reserves room for a scope's vertical border strip: the
// rounded corner radius plus the horizontal cell padding.
func NewScopeHEdge(s *Settings) *SpacerCell {
	c := &SpacerCell{}
	c.kind = KindScopeHEdge
	c.minW = s.ScopeRectRadius + s.HCellPadding
	return c
}

// NewScopeVEdge reserves room for a scope's horizontal border strip.
func NewScopeVEdge(s *Settings) *SpacerCell {
	c := &SpacerCell{}
	c.kind = KindScopeVEdge
	c.minH = s.ScopeRectRadius + s.VCellPadding
	return c
}

// NewScopeCorner reserves the bottom corner of a scope rectangle on both axes.
func NewScopeCorner(s *Settings) *SpacerCell {
	c := &SpacerCell{}
	c.kind = KindScopeCorner
	c.minW = s.ScopeRectRadius + s.HCellPadding
	c.minH = s.ScopeRectRadius + s.VCellPadding
	return c
}
