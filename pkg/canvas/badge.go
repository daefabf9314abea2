package canvas

import "fmt"

// Badge is the small rounded-rectangle label attached to a scope's top-left
// corner ("def", "class", "try", ...). It is a decoration, not a grid cell:
// the owning scope sizes it at render time and positions it during its own
// draw, once the header height is known.
type Badge struct {
	settings *Settings
	text     string
	textSize Size

	Width, Height float64

	bg, fg, border Color

	// NeedRect controls whether the rounded outline is painted. The
	// decorator badge (" @ ") is drawn as bare text.
	NeedRect bool

	pos Point
}

// NewBadge measures text with the badge font and sizes the badge from it.
func NewBadge(s *Settings, text string) *Badge {
	ts := s.BadgeFont.Bounds(text)
	return &Badge{
		settings: s,
		text:     text,
		textSize: ts,
		Width:    ts.Width + 2*s.BadgeHSpacing,
		Height:   ts.Height + 2*s.BadgeVSpacing,
		bg:       s.BadgeBGColor,
		fg:       s.BadgeFGColor,
		border:   s.BadgeBorderColor,
		NeedRect: true,
	}
}

// SetColors overrides the default badge palette. Empty values keep the
// current color.
func (b *Badge) SetColors(bg, fg, border Color) {
	if bg != "" {
		b.bg = bg
	}
	if fg != "" {
		b.fg = fg
	}
	if border != "" {
		b.border = border
	}
}

// Text returns the badge label.
func (b *Badge) Text() string { return b.text }

// MoveTo positions the badge's top-left corner in absolute coordinates.
func (b *Badge) MoveTo(x, y float64) {
	b.pos = Point{x, y}
}

// Draw paints the badge at its current position.
func (b *Badge) Draw(sur Surface) {
	s := b.settings
	if b.NeedRect {
		sur.DrawRoundedRect(
			Rect{b.pos.X, b.pos.Y, b.Width, b.Height},
			s.BadgeRadius,
			Pen{Color: b.border, Width: s.BadgeLineWidth},
			b.bg)
	}
	sur.DrawText(
		Point{b.pos.X + s.BadgeHSpacing, b.pos.Y + s.BadgeVSpacing},
		b.text, s.BadgeFont, b.fg)
}

// SelectTooltip describes the badge for selection UIs.
func (b *Badge) SelectTooltip() string {
	return fmt.Sprintf("Badge %q", b.text)
}
