package canvas

import (
	"fmt"
	"html"
	"strings"

	"github.com/flowcanvas/flowcanvas/pkg/errors"
	"github.com/flowcanvas/flowcanvas/pkg/flow"
)

// ScopeSubKind selects which corner of a scope a ScopeElement renders. A
// scope occupies several grid cells: the top-left corner owning the border,
// the declaration header, and optionally a side comment and a docstring.
type ScopeSubKind int

// Scope sub-kinds.
const (
	SubTopLeft ScopeSubKind = iota
	SubDeclaration
	SubComment
	SubDocstring
)

var subKindNames = map[ScopeSubKind]string{
	SubTopLeft:     "TOP_LEFT",
	SubDeclaration: "DECLARATION",
	SubComment:     "COMMENT",
	SubDocstring:   "DOCSTRING",
}

func (k ScopeSubKind) String() string {
	if s, ok := subKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("subkind(%d)", int(k))
}

// scopeSpec captures everything that differs between scope kinds: the badge
// label, the tooltip noun, connector behavior, and which heading sub-range
// the side comment aligns against.
type scopeSpec struct {
	badge   string
	tooltip string

	// needsConnector marks kinds whose top-left corner draws the vertical
	// flow line spanning the whole scope. Loop else branches use a dotted
	// horizontal link instead.
	needsConnector bool

	// withinHeader centers the badge on the declaration header instead of
	// the scope's top border. An except badge moves into the header only
	// when the clause is absent.
	withinHeader bool

	// dottedLink marks kinds linked to the scope on their left with a
	// dotted horizontal connector (except handlers and loop else branches).
	dottedLink bool

	// commentAnchor and commentTrail select the heading sub-ranges a
	// multi-line side comment aligns against: blank lines pad the comment
	// so its first line matches the anchor's first line and its last line
	// matches the trail's last line. Nil keeps the comment unpadded.
	commentAnchor func(ref *flow.Scope) *flow.Fragment
	commentTrail  func(ref *flow.Scope) *flow.Fragment
}

func fragName(ref *flow.Scope) *flow.Fragment      { return ref.Name }
func fragIteration(ref *flow.Scope) *flow.Fragment { return ref.Iteration }
func fragCondition(ref *flow.Scope) *flow.Fragment { return ref.Condition }
func fragItems(ref *flow.Scope) *flow.Fragment     { return ref.Items }
func fragClause(ref *flow.Scope) *flow.Fragment    { return ref.Clause }

func fragArgumentsOrName(ref *flow.Scope) *flow.Fragment {
	if ref.Arguments != nil {
		return ref.Arguments
	}
	return ref.Name
}

var scopeSpecs = map[ScopeKind]scopeSpec{
	ScopeModule: {
		badge: "module", tooltip: "Module",
	},
	ScopeFunction: {
		badge: "def", tooltip: "Function", needsConnector: true,
		commentAnchor: fragName,
		commentTrail:  func(ref *flow.Scope) *flow.Fragment { return ref.Arguments },
	},
	ScopeClass: {
		badge: "class", tooltip: "Class", needsConnector: true,
		commentAnchor: fragName,
		commentTrail:  fragArgumentsOrName,
	},
	ScopeFor: {
		badge: "for", tooltip: "For loop", needsConnector: true,
		commentAnchor: fragIteration,
		commentTrail:  fragIteration,
	},
	ScopeWhile: {
		badge: "while", tooltip: "While loop", needsConnector: true,
		commentAnchor: fragCondition,
		commentTrail:  fragCondition,
	},
	ScopeTry: {
		badge: "try", tooltip: "Try", needsConnector: true, withinHeader: true,
	},
	ScopeWith: {
		badge: "with", tooltip: "With", needsConnector: true,
		commentAnchor: fragItems,
		commentTrail:  fragItems,
	},
	ScopeDecorator: {
		badge: " @ ", tooltip: "Decorator", needsConnector: true,
		commentAnchor: fragName,
		commentTrail:  fragArgumentsOrName,
	},
	ScopeForElse: {
		badge: "else", tooltip: "Else", withinHeader: true, dottedLink: true,
	},
	ScopeWhileElse: {
		badge: "else", tooltip: "Else", withinHeader: true, dottedLink: true,
	},
	ScopeTryElse: {
		badge: "else", tooltip: "Else", needsConnector: true, withinHeader: true,
	},
	ScopeExcept: {
		badge: "except", tooltip: "Except", dottedLink: true,
		commentAnchor: fragClause,
		commentTrail:  fragClause,
	},
	ScopeFinally: {
		badge: "finally", tooltip: "Finally", needsConnector: true, withinHeader: true,
	},
}

// ScopeElement renders one corner of a scope rectangle. The top-left cell
// owns the rounded border, badge and connectors; the declaration cell owns
// the header text and its separating rule; comment and docstring cells own
// the side comment box and the docstring box.
type ScopeElement struct {
	cellBase

	scopeKind ScopeKind
	sub       ScopeSubKind

	badge    *Badge
	docBadge *Badge

	headerSize  Size
	commentSize Size

	sideComment    string
	sideCommentSet bool
	docText        string
	docTextSet     bool
	hiddenTooltip  string

	// Selected is maintained by the host; a selected top-left corner
	// insets the declaration rule so the highlight stays visible.
	Selected bool
}

// NewScopeElement creates one scope corner cell for the given syntax node.
func NewScopeElement(ref *flow.Scope, scopeKind ScopeKind, sub ScopeSubKind) *ScopeElement {
	c := &ScopeElement{scopeKind: scopeKind, sub: sub}
	c.kind = KindScope
	c.ref = ref
	return c
}

// ScopeKind returns the control-flow construct this element belongs to.
func (c *ScopeElement) ScopeKind() ScopeKind { return c.scopeKind }

// Sub returns the corner this element renders.
func (c *ScopeElement) Sub() ScopeSubKind { return c.sub }

// Badge returns the badge decoration, set after a TOP_LEFT render.
func (c *ScopeElement) Badge() *Badge { return c.badge }

func (c *ScopeElement) spec() scopeSpec { return scopeSpecs[c.scopeKind] }

// canComment reports whether the scope heading can carry a side comment.
// Module headings cannot: their comments belong to the code flow itself.
func (c *ScopeElement) canComment() bool { return c.scopeKind != ScopeModule }

func (c *ScopeElement) requiresConnector() bool { return c.spec().needsConnector }

// withinHeader reports whether the badge sits on the declaration header
// rather than on the scope's top border.
func (c *ScopeElement) withinHeader() bool {
	if c.scopeKind == ScopeExcept {
		return c.ref.Clause == nil
	}
	return c.spec().withinHeader
}

// topLeft returns the scope's TOP_LEFT cell, one up and one left of this
// cell in the same grid, or nil when absent.
func (c *ScopeElement) topLeft() *ScopeElement {
	cell := c.canvas.CellAt(c.col-1, c.row-1)
	sc, _ := cell.(*ScopeElement)
	return sc
}

// TopLeftItem returns the scope's TOP_LEFT cell. It is only meaningful on a
// DECLARATION cell; any other sub-kind is a programming error.
func (c *ScopeElement) TopLeftItem() (*ScopeElement, error) {
	if c.sub != SubDeclaration {
		return nil, errors.New(errors.ErrCodeContractViolation,
			"TopLeftItem called on %s sub-kind, want DECLARATION", c.sub)
	}
	return c.topLeft(), nil
}

// sideCommentText assembles the displayed side comment once. Multi-line
// comments are padded with blank lines so they align with the heading range
// they annotate; a collapsed comment becomes the configured placeholder with
// the full text recorded as an escaped tooltip.
func (c *ScopeElement) sideCommentText() string {
	if c.sideCommentSet {
		return c.sideComment
	}
	c.sideCommentSet = true

	s := c.canvas.Settings()
	sc := c.ref.SideComment
	if sc == nil {
		return ""
	}
	text := sc.Text
	spec := c.spec()

	var anchor *flow.Fragment
	if spec.commentAnchor != nil {
		anchor = spec.commentAnchor(c.ref)
	}
	if anchor != nil && !s.HideComments {
		if before := sc.BeginLine - anchor.BeginLine; before > 0 {
			text = strings.Repeat("\n", before) + text
		}
	}

	if s.HideComments {
		c.hiddenTooltip = html.EscapeString(text)
		text = s.HiddenCommentText
	} else if anchor != nil && spec.commentTrail != nil {
		if trail := spec.commentTrail(c.ref); trail != nil {
			if after := trail.EndLine - sc.EndLine; after > 0 {
				text += strings.Repeat("\n", after)
			}
		}
	}

	c.sideComment = text
	return text
}

// docstringText returns the displayed docstring, empty when docstrings are
// collapsed; the full text is then recorded as an escaped tooltip.
func (c *ScopeElement) docstringText() string {
	if c.docTextSet {
		return c.docText
	}
	c.docTextSet = true

	if c.ref.Docstring != nil {
		c.docText = c.ref.Docstring.Text
	}
	if c.canvas.Settings().HideDocstrings {
		c.hiddenTooltip = html.EscapeString(c.docText)
		c.docText = ""
	}
	return c.docText
}

// Render computes the corner's minimum size per its sub-kind.
func (c *ScopeElement) Render() (Size, error) {
	s := c.canvas.Settings()

	switch c.sub {
	case SubTopLeft:
		c.badge = NewBadge(s, c.spec().badge)
		if c.scopeKind == ScopeDecorator {
			c.badge.NeedRect = false
		}
		return c.markRendered(Size{
			Width:  s.ScopeRectRadius + s.HCellPadding,
			Height: s.ScopeRectRadius + s.VCellPadding,
		}), nil

	case SubDeclaration:
		// The declaration borrows radius-worth of space from the corner
		// cells above and left of it to keep the header compact.
		var badge *Badge
		if tl := c.topLeft(); tl != nil {
			badge = tl.badge
		}

		c.headerSize = s.MonoFont.Bounds(c.ref.Text)
		minH := c.headerSize.Height + 2*s.VHeaderPadding - s.ScopeRectRadius

		w := c.headerSize.Width
		if badge != nil && badge.Width > w {
			w = badge.Width
		}
		minW := w + s.HHeaderPadding - s.ScopeRectRadius
		if badge != nil && c.withinHeader() {
			minW = badge.Width + s.HHeaderPadding - s.ScopeRectRadius
		}

		if c.canComment() {
			if c.ref.HasSideComment() {
				minH += 2 * s.VTextPadding
				minW += s.HCellPadding
			} else {
				minH += s.VTextPadding
				minW += s.HHeaderPadding
			}
		} else {
			minW += s.HHeaderPadding
		}
		if minW < s.MinScopeWidth {
			minW = s.MinScopeWidth
		}
		return c.markRendered(Size{minW, minH}), nil

	case SubComment:
		c.commentSize = s.MonoFont.Bounds(c.sideCommentText())
		if s.HideComments {
			return c.markRendered(Size{
				Width: s.HCellPadding + s.HHiddenTextPadding +
					c.commentSize.Width + s.HHiddenTextPadding +
					s.HHeaderPadding - s.ScopeRectRadius,
				Height: c.commentSize.Height +
					2*(s.VHeaderPadding+s.VHiddenTextPadding) -
					s.ScopeRectRadius,
			}), nil
		}
		return c.markRendered(Size{
			Width: s.HCellPadding + s.HTextPadding +
				c.commentSize.Width + s.HTextPadding +
				s.HHeaderPadding - s.ScopeRectRadius,
			Height: c.commentSize.Height +
				2*(s.VHeaderPadding+s.VTextPadding) -
				s.ScopeRectRadius,
		}), nil

	case SubDocstring:
		text := c.docstringText()
		if s.HideDocstrings {
			c.docBadge = NewBadge(s, "doc")
			return c.markRendered(Size{
				Width:  2 * (s.HHeaderPadding - s.ScopeRectRadius),
				Height: c.docBadge.Height + 2*(s.SelectPenWidth-1),
			}), nil
		}
		bounds := s.MonoFont.Bounds(text)
		return c.markRendered(Size{
			Width:  bounds.Width + 2*(s.HHeaderPadding-s.ScopeRectRadius),
			Height: bounds.Height + 2*s.VHeaderPadding,
		}), nil
	}

	return Size{}, errors.New(errors.ErrCodeContractViolation,
		"unknown scope sub-kind %d", int(c.sub))
}

// Draw emits the corner's primitives.
func (c *ScopeElement) Draw(sur Surface, x, y float64) error {
	if err := c.checkDrawable(); err != nil {
		return err
	}
	c.moveTo(x, y)

	switch c.sub {
	case SubTopLeft:
		c.drawTopLeft(sur, x, y)
	case SubDeclaration:
		c.drawDeclaration(sur, x, y)
	case SubComment:
		c.drawComment(sur, x, y)
	case SubDocstring:
		c.drawDocstring(sur, x, y)
	}
	return nil
}

// topHalfConnectorNeeded reports whether the parent's vertical flow line
// must be continued down to this scope's middle: an else or except scope
// sitting directly below a connector-owning scope.
func (c *ScopeElement) topHalfConnectorNeeded() bool {
	switch c.scopeKind {
	case ScopeForElse, ScopeWhileElse, ScopeTryElse, ScopeExcept:
	default:
		return false
	}
	parent := c.canvas.canvas
	if parent == nil {
		return false
	}
	above, ok := parent.CellAt(c.canvas.col, c.canvas.row-1).(*Canvas)
	return ok && above.needsConnector()
}

func (c *ScopeElement) drawTopLeft(sur Surface, x, y float64) {
	s := c.canvas.Settings()
	theme := s.ScopeTheme(c.scopeKind)
	flowPen := Pen{Color: s.LineColor, Width: s.LineWidth}
	cm := c.canvas.MinSize()

	if c.requiresConnector() {
		sur.DrawLine(
			Point{x + s.MainLine, y},
			Point{x + s.MainLine, y + c.canvas.Size().Height}, flowPen)
	}
	if c.topHalfConnectorNeeded() {
		sur.DrawLine(
			Point{x + s.MainLine, y},
			Point{x + s.MainLine, y + c.canvas.Size().Height/2}, flowPen)
	}

	sur.DrawRoundedRect(
		Rect{
			X:      x + s.HCellPadding,
			Y:      y + s.VCellPadding,
			Width:  cm.Width - 2*s.HCellPadding,
			Height: cm.Height - 2*s.VCellPadding,
		},
		s.ScopeRectRadius,
		Pen{Color: theme.Border, Width: s.BoxLineWidth}, theme.BG)
	c.canvas.ScopeRect = c

	pw := s.SelectPenWidth - 1
	sur.RegisterTarget(c, Rect{
		X:      x + s.HCellPadding - pw,
		Y:      y + s.VCellPadding - pw,
		Width:  cm.Width - 2*s.HCellPadding + 2*pw,
		Height: cm.Height - 2*s.VCellPadding + 2*pw,
	}, c.SelectTooltip())

	if c.badge != nil {
		if c.withinHeader() {
			// Center the badge on the header; its height is known only
			// now, after the declaration cell below has been reconciled.
			headerHeight := 0.0
			if decl := c.canvas.CellAt(c.col, c.row+1); decl != nil {
				headerHeight = decl.Size().Height
			}
			fullHeight := headerHeight + s.ScopeRectRadius
			c.badge.MoveTo(
				x+s.HCellPadding+s.BadgeShift,
				y+s.VCellPadding+fullHeight/2-c.badge.Height/2)
		} else {
			c.badge.MoveTo(
				x+s.HCellPadding+s.BadgeShift,
				y+s.VCellPadding-c.badge.Height/2)
		}
		c.badge.Draw(sur)
	}

	// Handlers and loop else branches hang off the scope to their left
	// with a dotted link instead of a vertical flow line.
	if !c.requiresConnector() && c.spec().dottedLink {
		c.drawDottedLink(sur, x, y)
	}
}

func (c *ScopeElement) drawDottedLink(sur Surface, x, y float64) {
	parent := c.canvas.canvas
	if parent == nil {
		return
	}
	left := parent.CellAt(c.canvas.col-1, c.canvas.row)
	if left == nil {
		return
	}
	s := c.canvas.Settings()
	linkY := y + 2*s.VCellPadding
	sur.DrawLine(
		Point{left.Base().X + left.MinSize().Width - s.HCellPadding + s.BoxLineWidth, linkY},
		Point{x + s.HCellPadding - s.BoxLineWidth, linkY},
		Pen{Color: s.LineColor, Width: s.LineWidth, Style: LineDotted})
}

func (c *ScopeElement) drawDeclaration(sur Surface, x, y float64) {
	s := c.canvas.Settings()
	theme := s.ScopeTheme(c.scopeKind)
	canvasLeft := x - s.ScopeRectRadius
	canvasTop := y - s.ScopeRectRadius

	yShift := 0.0
	if c.canComment() {
		yShift = s.VTextPadding
	}
	sur.DrawText(
		Point{canvasLeft + s.HHeaderPadding, canvasTop + s.VHeaderPadding + yShift},
		c.ref.Text, s.MonoFont, theme.FG)

	// The rule under the header is inset when the corner is selected so it
	// does not cross the selection outline.
	correction := 0.0
	if tl := c.topLeft(); tl != nil && tl.Selected {
		correction = s.SelectPenWidth - 1
	}
	ruleY := y + c.h
	sur.DrawLine(
		Point{canvasLeft + correction, ruleY},
		Point{canvasLeft + c.canvas.MinSize().Width - 2*s.HCellPadding - correction, ruleY},
		Pen{Color: theme.Border, Width: s.BoxLineWidth})

	pw := s.SelectPenWidth - 1
	sur.RegisterTarget(c, Rect{
		X:      canvasLeft - pw,
		Y:      canvasTop - pw,
		Width:  c.canvas.MinSize().Width - 2*s.HCellPadding + 2*pw,
		Height: c.h + s.ScopeRectRadius + pw,
	}, c.SelectTooltip())
}

func (c *ScopeElement) drawComment(sur Surface, x, y float64) {
	s := c.canvas.Settings()
	canvasTop := y - s.ScopeRectRadius
	// vHeaderPadding on the right keeps the spacing identical on the top,
	// bottom and right sides of the box.
	movedX := c.canvas.Base().X + c.canvas.MinSize().Width -
		c.w - s.ScopeRectRadius - s.VHeaderPadding

	boxPen := Pen{Color: s.CommentBorderColor, Width: s.BoxLineWidth}
	tooltip := c.SelectTooltip()

	if s.HideComments {
		box := Rect{
			X:      movedX + s.HHeaderPadding,
			Y:      canvasTop + s.VHeaderPadding,
			Width:  c.commentSize.Width + 2*s.HHiddenTextPadding,
			Height: c.commentSize.Height + 2*s.VHiddenTextPadding,
		}
		sur.DrawRoundedRect(box, s.CommentCorner, boxPen, s.CommentBGColor)
		sur.DrawText(
			Point{box.X + s.HHiddenTextPadding, box.Y + s.VHiddenTextPadding},
			c.sideCommentText(), s.MonoFont, s.CommentFGColor)
		if c.hiddenTooltip != "" {
			tooltip = c.hiddenTooltip
		}
		sur.RegisterTarget(c, box, tooltip)
		return
	}

	boxX := movedX + s.HHeaderPadding
	boxY := canvasTop + s.VHeaderPadding
	boxW := c.commentSize.Width + 2*s.HTextPadding
	boxH := c.commentSize.Height + 2*s.VTextPadding
	sur.DrawPolygon(commentBoxOutline(boxX, boxY, boxW, boxH, s.CommentCorner),
		boxPen, s.CommentBGColor)
	sur.DrawPath(commentBoxFold(boxX, boxY, boxW, s.CommentCorner), boxPen)
	sur.DrawText(
		Point{boxX + s.HTextPadding, boxY + s.VTextPadding},
		c.sideCommentText(), s.MonoFont, s.CommentFGColor)
	sur.RegisterTarget(c, Rect{boxX, boxY, boxW, boxH}, tooltip)
}

func (c *ScopeElement) drawDocstring(sur Surface, x, y float64) {
	s := c.canvas.Settings()
	theme := s.ScopeTheme(c.scopeKind)
	canvasLeft := x - s.ScopeRectRadius
	boxW := c.canvas.MinSize().Width - 2*s.HCellPadding

	// The docstring band borrows the scope's border color for its bottom
	// rule; the interior uses the docstring background.
	sur.DrawRect(Rect{
		X:      canvasLeft + s.BoxLineWidth,
		Y:      y + s.BoxLineWidth,
		Width:  boxW - 2*s.BoxLineWidth,
		Height: c.h - 2*s.BoxLineWidth,
	}, Pen{Color: s.DocstringBGColor, Width: s.BoxLineWidth}, s.DocstringBGColor)
	sur.DrawLine(
		Point{canvasLeft, y + c.h},
		Point{canvasLeft + boxW, y + c.h},
		Pen{Color: theme.Border, Width: s.BoxLineWidth})

	if s.HideDocstrings {
		if c.docBadge != nil {
			pw := s.SelectPenWidth - 1
			c.docBadge.MoveTo(canvasLeft+pw, y+pw)
			c.docBadge.Draw(sur)
		}
		tooltip := c.SelectTooltip()
		if c.hiddenTooltip != "" {
			tooltip = c.hiddenTooltip
		}
		sur.RegisterTarget(c, Rect{canvasLeft, y, boxW, c.h}, tooltip)
		return
	}

	sur.DrawText(
		Point{canvasLeft + s.HHeaderPadding, y + s.VHeaderPadding},
		c.docstringText(), s.MonoFont, s.DocstringFGColor)
	sur.RegisterTarget(c, Rect{canvasLeft, y, boxW, c.h}, c.SelectTooltip())
}

// Range resolution. Each sub-kind narrows to the source range it actually
// visualizes: a comment cell answers with the comment's range, a docstring
// cell with the docstring body's range.

// LineRange returns the source lines backing this corner.
func (c *ScopeElement) LineRange() flow.Span {
	switch c.sub {
	case SubComment:
		if c.ref.SideComment != nil {
			return c.ref.SideComment.LineRange()
		}
	case SubDocstring:
		if c.ref.Docstring != nil {
			return c.ref.Docstring.Body.LineRange()
		}
	case SubTopLeft:
		if c.scopeKind == ScopeModule && c.ref.Body == nil {
			// Empty buffer: the module has no body at all.
			return flow.Span{}
		}
		if c.scopeKind == ScopeTry {
			// A try statement's trailing parts are laid out as sibling
			// scopes; the try rectangle covers only up to the last one.
			return flow.Span{
				Begin: c.ref.Body.BeginLine,
				End:   c.ref.LastPart().LineRange().End,
			}
		}
	}
	return c.ref.LineRange()
}

// AbsRange returns the absolute character range backing this corner.
func (c *ScopeElement) AbsRange() flow.Span {
	switch c.sub {
	case SubComment:
		if c.ref.SideComment != nil {
			return c.ref.SideComment.AbsRange()
		}
	case SubDocstring:
		if c.ref.Docstring != nil {
			return c.ref.Docstring.Body.AbsRange()
		}
	case SubTopLeft:
		if c.scopeKind == ScopeModule && c.ref.Body == nil {
			return flow.Span{}
		}
		if c.scopeKind == ScopeTry {
			return flow.Span{
				Begin: c.ref.Body.Begin,
				End:   c.ref.LastPart().AbsRange().End,
			}
		}
	}
	return c.ref.AbsRange()
}

// Distance ranks this corner against an absolute character position.
func (c *ScopeElement) Distance(pos int) int {
	switch c.sub {
	case SubComment:
		if c.ref.SideComment != nil {
			return c.ref.SideComment.AbsDistance(pos)
		}
	case SubDocstring:
		if c.ref.Docstring != nil {
			return c.ref.Docstring.Body.AbsDistance(pos)
		}
	case SubDeclaration:
		if c.scopeKind == ScopeModule {
			// A module declaration may resolve to the encoding line or
			// the shebang line, whichever is closer.
			d := c.ref.EncodingLine.AbsDistance(pos)
			if bd := c.ref.BangLine.AbsDistance(pos); bd < d {
				d = bd
			}
			return d
		}
		return c.ref.Body.AbsDistance(pos)
	}
	return flow.Unreachable
}

// LineDistance ranks this corner against a source line.
func (c *ScopeElement) LineDistance(line int) int {
	switch c.sub {
	case SubComment:
		if c.ref.SideComment != nil {
			return c.ref.SideComment.LineDistance(line)
		}
	case SubDocstring:
		if c.ref.Docstring != nil {
			return c.ref.Docstring.Body.LineDistance(line)
		}
	case SubDeclaration:
		if c.scopeKind == ScopeModule {
			d := c.ref.EncodingLine.LineDistance(line)
			if bd := c.ref.BangLine.LineDistance(line); bd < d {
				d = bd
			}
			return d
		}
		return c.ref.Body.LineDistance(line)
	}
	return flow.Unreachable
}

// SelectTooltip labels the corner for selection UIs.
func (c *ScopeElement) SelectTooltip() string {
	name := c.spec().tooltip
	switch c.sub {
	case SubTopLeft:
		return name + " at " + linesSuffix(c.LineRange())
	case SubDocstring:
		return name + " docstring at " + linesSuffix(c.LineRange())
	case SubComment:
		return name + " side comment at " + linesSuffix(c.LineRange())
	}
	return name + " scope (" + c.sub.String() + ")"
}
