package canvas

import (
	"github.com/flowcanvas/flowcanvas/pkg/errors"
	"github.com/flowcanvas/flowcanvas/pkg/flow"
)

// Canvas is a rectangular grid of cells. A canvas is itself a cell, so a
// nested scope composes as a grid value inside its parent's grid, forming a
// tree of grids rather than one flat matrix.
//
// A canvas is built once per diagram, rendered bottom-up, reconciled, and
// drawn top-down. It is exclusively owned by the diagram that built it and
// is rebuilt wholesale on any structural change.
type Canvas struct {
	cellBase

	settings *Settings
	cells    [][]Cell

	// MaxGlobalOpenGroupDepth is the deepest open-group nesting anywhere
	// below this canvas. Connector routing corrections shift the main
	// line right by two group spacers per level.
	MaxGlobalOpenGroupDepth int

	// ScopeRect is the top-left scope element that drew this canvas's
	// border, recorded during the draw pass for selection handling.
	ScopeRect *ScopeElement
}

// New creates an empty canvas bound to a settings snapshot.
func New(settings *Settings) *Canvas {
	c := &Canvas{settings: settings}
	c.kind = KindCanvas
	return c
}

// Settings returns the shared, read-only configuration snapshot.
func (c *Canvas) Settings() *Settings { return c.settings }

// SetRef attaches the syntax node this canvas visualizes; nested scope
// canvases delegate their ranges to it.
func (c *Canvas) SetRef(ref *flow.Scope) { c.ref = ref }

// Ref returns the attached syntax node, or nil for the root canvas.
func (c *Canvas) Ref() *flow.Scope { return c.ref }

// AddRow appends a row of cells, assigning their addresses.
func (c *Canvas) AddRow(cells ...Cell) {
	row := len(c.cells)
	for col, cell := range cells {
		cell.setAddr(c, col, row)
	}
	c.cells = append(c.cells, cells)
}

// Rows returns the number of rows.
func (c *Canvas) Rows() int { return len(c.cells) }

// Columns returns the column count of the rectangular grid, 0 when empty.
func (c *Canvas) Columns() int {
	if len(c.cells) == 0 {
		return 0
	}
	return len(c.cells[0])
}

// CellAt returns the cell at (col, row), or nil when out of bounds.
func (c *Canvas) CellAt(col, row int) Cell {
	if row < 0 || row >= len(c.cells) {
		return nil
	}
	if col < 0 || col >= len(c.cells[row]) {
		return nil
	}
	return c.cells[row][col]
}

// validate checks the rectangular-grid invariant: every row has the same
// column count and addresses match storage order.
func (c *Canvas) validate() error {
	want := c.Columns()
	for row, cells := range c.cells {
		if len(cells) != want {
			return errors.New(errors.ErrCodeLayoutRaggedGrid,
				"row %d has %d columns, want %d", row, len(cells), want)
		}
	}
	return nil
}

// Render runs the bottom-up sizing pass: every cell computes its minimum,
// then per-row maximum heights and per-column maximum widths fix the final
// row heights and column widths. The canvas minimum is the sum of both.
//
// Render is idempotent; rendering an unchanged canvas twice yields the same
// size.
func (c *Canvas) Render() (Size, error) {
	if err := c.validate(); err != nil {
		return Size{}, err
	}

	rows, cols := c.Rows(), c.Columns()
	rowHeights := make([]float64, rows)
	colWidths := make([]float64, cols)

	for r, cells := range c.cells {
		for col, cell := range cells {
			min, err := cell.Render()
			if err != nil {
				return Size{}, err
			}
			if min.Height > rowHeights[r] {
				rowHeights[r] = min.Height
			}
			if min.Width > colWidths[col] {
				colWidths[col] = min.Width
			}
		}
	}

	// Reconciliation: cells grow to their row/column extents, never shrink.
	for r, cells := range c.cells {
		for col, cell := range cells {
			cell.setSize(Size{colWidths[col], rowHeights[r]})
		}
	}

	var total Size
	for _, w := range colWidths {
		total.Width += w
	}
	for _, h := range rowHeights {
		total.Height += h
	}

	c.markRendered(total)
	c.reconciled = true // the root canvas has no parent to reconcile it
	return total, nil
}

// Draw runs the top-down placement pass with a cumulative origin, emitting
// every cell's primitives onto the surface.
func (c *Canvas) Draw(sur Surface, x, y float64) error {
	if err := c.checkDrawable(); err != nil {
		return err
	}
	c.moveTo(x, y)

	cumY := y
	for _, cells := range c.cells {
		cumX := x
		rowHeight := 0.0
		for _, cell := range cells {
			if err := cell.Draw(sur, cumX, cumY); err != nil {
				return err
			}
			sz := cell.Size()
			cumX += sz.Width
			if sz.Height > rowHeight {
				rowHeight = sz.Height
			}
		}
		cumY += rowHeight
	}
	return nil
}

// needsConnector reports whether this canvas's scope draws a vertical flow
// line, by locating its top-left scope element. Used by else/except scopes
// directly below to continue the parent's line with a half-height connector.
func (c *Canvas) needsConnector() bool {
	for _, cells := range c.cells {
		for _, cell := range cells {
			if sc, ok := cell.(*ScopeElement); ok && sc.Sub() == SubTopLeft {
				return sc.requiresConnector()
			}
		}
	}
	return false
}

// topLeftScopeKind returns the scope kind of the canvas's top-left scope
// element, or "" when the canvas holds no scope.
func (c *Canvas) topLeftScopeKind() ScopeKind {
	for _, cells := range c.cells {
		for _, cell := range cells {
			if sc, ok := cell.(*ScopeElement); ok && sc.Sub() == SubTopLeft {
				return sc.ScopeKind()
			}
		}
	}
	return ""
}

// NearestByLine finds the element closest to a source line, recursing into
// nested canvases. The returned distance is 0 for containment and
// flow.Unreachable when the canvas holds no addressable element.
func (c *Canvas) NearestByLine(line int) (Element, int) {
	return c.nearest(func(cell Cell) int { return cell.LineDistance(line) },
		func(nested *Canvas) (Element, int) { return nested.NearestByLine(line) })
}

// NearestByPos finds the element closest to an absolute character position.
func (c *Canvas) NearestByPos(pos int) (Element, int) {
	return c.nearest(func(cell Cell) int { return cell.Distance(pos) },
		func(nested *Canvas) (Element, int) { return nested.NearestByPos(pos) })
}

func (c *Canvas) nearest(dist func(Cell) int, recurse func(*Canvas) (Element, int)) (Element, int) {
	var best Element
	bestDist := flow.Unreachable

	for _, cells := range c.cells {
		for _, cell := range cells {
			var el Element
			var d int
			if nested, ok := cell.(*Canvas); ok {
				el, d = recurse(nested)
			} else {
				el, d = cell, dist(cell)
			}
			if el == nil {
				continue
			}
			if d < bestDist {
				best, bestDist = el, d
				if bestDist == 0 {
					return best, 0
				}
			}
		}
	}
	return best, bestDist
}

// JumpTarget is the editor location a host jumps to when an element is
// activated.
type JumpTarget struct {
	Line int
	Pos  int
}

// JumpTargetForLine resolves a source line to the jump location of the
// nearest element. The second return is false when the canvas holds no
// element reachable from that line.
func (c *Canvas) JumpTargetForLine(line int) (JumpTarget, bool) {
	el, d := c.NearestByLine(line)
	if el == nil || d == flow.Unreachable {
		return JumpTarget{}, false
	}
	return JumpTarget{Line: el.LineRange().Begin, Pos: el.AbsRange().Begin}, true
}

// SelectTooltip describes the canvas by its scope node.
func (c *Canvas) SelectTooltip() string {
	if c.ref == nil {
		return "Canvas"
	}
	return "Scope at " + linesSuffix(c.ref.LineRange())
}
