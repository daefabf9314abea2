package canvas

import "github.com/flowcanvas/flowcanvas/pkg/flow"

// Element is the host-facing contract of anything drawn on a surface. The
// host uses it to implement click-to-navigate and nearest-element search:
// ranges map an element back to the source buffer, distances rank elements
// against a cursor position, and the tooltip labels the current selection.
type Element interface {
	// SelectTooltip describes the element for selection UIs,
	// e.g. "Function at lines 10-20".
	SelectTooltip() string

	// LineRange and AbsRange map the element back to the source buffer.
	// Scope sub-elements narrow these to their own sub-range (docstring
	// body only, side comment only).
	LineRange() flow.Span
	AbsRange() flow.Span

	// Distance and LineDistance return 0 when the query falls inside the
	// element's range, flow.Unreachable when the element has no range, and
	// the gap magnitude otherwise.
	Distance(pos int) int
	LineDistance(line int) int
}

// Surface receives visual primitives during the draw pass. Implementations
// render to a concrete backend (SVG document, raster image) or record the
// primitives for inspection in tests.
//
// Coordinates are absolute: the draw pass resolves all cell origins before
// emitting anything. A surface must not be written to outside a draw pass.
type Surface interface {
	// DrawRect draws a rectangle with an optional fill. An empty fill
	// color leaves the interior untouched.
	DrawRect(r Rect, stroke Pen, fill Color)

	// DrawRoundedRect draws a rectangle with rounded corners of the given
	// radius, used for scope borders and badges.
	DrawRoundedRect(r Rect, radius float64, stroke Pen, fill Color)

	// DrawLine draws a single segment.
	DrawLine(a, b Point, pen Pen)

	// DrawPath draws connected segments through the given points.
	DrawPath(points []Point, pen Pen)

	// DrawPolygon draws a closed, optionally filled polygon, used for the
	// folded-corner comment boxes.
	DrawPolygon(points []Point, stroke Pen, fill Color)

	// DrawText draws a text run with its top-left corner at the given point.
	DrawText(at Point, text string, metrics FontMetrics, color Color)

	// RegisterTarget associates a hit region with an element so the host
	// can dispatch hover and double-click events. Decorative primitives
	// (spacers, connectors) register nothing.
	RegisterTarget(el Element, region Rect, tooltip string)
}
