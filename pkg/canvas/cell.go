package canvas

import (
	"fmt"

	"github.com/flowcanvas/flowcanvas/pkg/errors"
	"github.com/flowcanvas/flowcanvas/pkg/flow"
)

// Kind tags the cell variants the grid can hold.
type Kind int

// Cell kinds.
const (
	KindVacant Kind = iota
	KindSpacer
	KindHSpacer
	KindVSpacer
	KindScopeHEdge
	KindScopeVEdge
	KindScopeCorner
	KindConnector
	KindScope
	KindCanvas
)

var kindNames = map[Kind]string{
	KindVacant:      "vacant",
	KindSpacer:      "spacer",
	KindHSpacer:     "hspacer",
	KindVSpacer:     "vspacer",
	KindScopeHEdge:  "scope-h-edge",
	KindScopeVEdge:  "scope-v-edge",
	KindScopeCorner: "scope-corner",
	KindConnector:   "connector",
	KindScope:       "scope",
	KindCanvas:      "canvas",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Addr is a cell's (column, row) address within its owning canvas.
type Addr struct {
	Col, Row int
}

// Cell is the atomic unit of the grid.
//
// Lifecycle: a cell is created when a diagram is built, rendered exactly once
// per build to establish its minimum size, resized by the grid's
// reconciliation, and finally drawn at an absolute origin. Cells are never
// mutated incrementally; a structural change rebuilds the whole diagram.
type Cell interface {
	Element

	Kind() Kind
	Addr() Addr

	// MinSize returns the intrinsic size computed by Render; Size returns
	// the final size after grid reconciliation. Size is never smaller
	// than MinSize on either axis.
	MinSize() Size
	Size() Size

	// Render computes the cell's minimum size from intrinsic content.
	// It is idempotent and has no effect on any other cell.
	Render() (Size, error)

	// Draw emits the cell's visual primitives at the given absolute
	// origin. Calling Draw before Render, or before the owning grid has
	// reconciled sizes, is a layout error.
	Draw(s Surface, x, y float64) error

	// Base returns the absolute origin recorded by Draw.
	Base() Point

	isSpacer() bool
	isScopeItem() bool

	// internal grid bookkeeping
	setAddr(canvas *Canvas, col, row int)
	setSize(sz Size)
}

// cellBase carries the geometry state shared by every cell implementation
// and the default Element behavior of delegating ranges to the syntax node.
type cellBase struct {
	kind   Kind
	canvas *Canvas
	ref    *flow.Scope

	col, row     int
	minW, minH   float64
	w, h         float64
	baseX, baseY float64

	rendered   bool
	reconciled bool
}

func (c *cellBase) Kind() Kind    { return c.kind }
func (c *cellBase) Addr() Addr    { return Addr{c.col, c.row} }
func (c *cellBase) MinSize() Size { return Size{c.minW, c.minH} }
func (c *cellBase) Size() Size    { return Size{c.w, c.h} }
func (c *cellBase) Base() Point   { return Point{c.baseX, c.baseY} }

func (c *cellBase) isSpacer() bool {
	switch c.kind {
	case KindVacant, KindSpacer, KindHSpacer, KindVSpacer:
		return true
	}
	return false
}

func (c *cellBase) isScopeItem() bool {
	switch c.kind {
	case KindScope, KindScopeHEdge, KindScopeVEdge, KindScopeCorner:
		return true
	}
	return false
}

func (c *cellBase) setAddr(canvas *Canvas, col, row int) {
	c.canvas = canvas
	c.col = col
	c.row = row
}

func (c *cellBase) setSize(sz Size) {
	// Reconciliation only grows cells: width >= minWidth, height >= minHeight.
	c.w = sz.Width
	if c.w < c.minW {
		c.w = c.minW
	}
	c.h = sz.Height
	if c.h < c.minH {
		c.h = c.minH
	}
	c.reconciled = true
}

// markRendered records the outcome of a Render call.
func (c *cellBase) markRendered(sz Size) Size {
	c.minW = sz.Width
	c.minH = sz.Height
	c.w = sz.Width
	c.h = sz.Height
	c.rendered = true
	return sz
}

// checkDrawable guards the render-before-draw contract. It fails fast so a
// half-built diagram is never painted with stale geometry.
func (c *cellBase) checkDrawable() error {
	if !c.rendered {
		return errors.New(errors.ErrCodeLayoutNotRendered,
			"draw before render on %s cell (%d,%d)", c.kind, c.col, c.row)
	}
	if !c.reconciled {
		return errors.New(errors.ErrCodeLayoutNotReconciled,
			"draw before grid reconciliation on %s cell (%d,%d)", c.kind, c.col, c.row)
	}
	return nil
}

func (c *cellBase) moveTo(x, y float64) {
	c.baseX = x
	c.baseY = y
}

// Default Element behavior: delegate to the syntax node's full range.
// Pure layout cells have no ref and report empty ranges at infinite distance.

func (c *cellBase) LineRange() flow.Span {
	if c.ref == nil {
		return flow.Span{}
	}
	return c.ref.LineRange()
}

func (c *cellBase) AbsRange() flow.Span {
	if c.ref == nil {
		return flow.Span{}
	}
	return c.ref.AbsRange()
}

func (c *cellBase) Distance(pos int) int {
	if c.ref == nil {
		return flow.Unreachable
	}
	return flow.Distance(pos, c.ref.Begin, c.ref.End)
}

func (c *cellBase) LineDistance(line int) int {
	if c.ref == nil {
		return flow.Unreachable
	}
	return flow.Distance(line, c.ref.BeginLine, c.ref.EndLine)
}

func (c *cellBase) SelectTooltip() string {
	return c.kind.String()
}

// linesSuffix formats a line range for selection tooltips.
func linesSuffix(span flow.Span) string {
	if span.Begin == span.End {
		return fmt.Sprintf("line %d", span.Begin)
	}
	return fmt.Sprintf("lines %d-%d", span.Begin, span.End)
}
