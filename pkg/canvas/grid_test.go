package canvas

import (
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/errors"
	"github.com/flowcanvas/flowcanvas/pkg/flow"
)

func TestRenderSumsRowsAndColumns(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	c.AddRow(NewSpacer(s, 10, 5), NewSpacer(s, 20, 8))
	c.AddRow(NewSpacer(s, 30, 4), NewSpacer(s, 15, 6))

	sz, err := c.Render()
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	// Column widths: max(10,30)=30, max(20,15)=20. Row heights: 8 and 6.
	if sz.Width != 50 {
		t.Errorf("width = %v, want 50", sz.Width)
	}
	if sz.Height != 14 {
		t.Errorf("height = %v, want 14", sz.Height)
	}

	// Reconciliation grows every cell to its row/column extents.
	if got := c.CellAt(0, 0).Size(); got.Width != 30 || got.Height != 8 {
		t.Errorf("cell (0,0) size = %v, want {30 8}", got)
	}
	if got := c.CellAt(1, 1).Size(); got.Width != 20 || got.Height != 6 {
		t.Errorf("cell (1,1) size = %v, want {20 6}", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	c.AddRow(NewSpacer(s, 10, 5), NewSpacer(s, 20, 8))

	first, err := c.Render()
	if err != nil {
		t.Fatalf("first Render error: %v", err)
	}
	second, err := c.Render()
	if err != nil {
		t.Fatalf("second Render error: %v", err)
	}
	if first != second {
		t.Errorf("Render not idempotent: %v then %v", first, second)
	}
}

func TestRenderRaggedGrid(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	c.AddRow(NewSpacer(s, 10, 5), NewSpacer(s, 10, 5))
	c.AddRow(NewSpacer(s, 10, 5))

	_, err := c.Render()
	if err == nil {
		t.Fatal("Render should fail on a ragged grid")
	}
	if errors.GetCode(err) != errors.ErrCodeLayoutRaggedGrid {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeLayoutRaggedGrid)
	}
}

func TestDrawBeforeRender(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	c.AddRow(NewSpacer(s, 10, 5))

	err := c.Draw(&recordSurface{}, 0, 0)
	if err == nil {
		t.Fatal("Draw before Render should fail")
	}
	if errors.GetCode(err) != errors.ErrCodeLayoutNotRendered {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeLayoutNotRendered)
	}
}

func TestDrawCumulativeOrigins(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	c.AddRow(NewSpacer(s, 10, 5), NewSpacer(s, 20, 5))
	c.AddRow(NewSpacer(s, 10, 7), NewSpacer(s, 20, 7))

	if _, err := c.Render(); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if err := c.Draw(&recordSurface{}, 100, 200); err != nil {
		t.Fatalf("Draw error: %v", err)
	}

	tests := []struct {
		col, row int
		want     Point
	}{
		{0, 0, Point{100, 200}},
		{1, 0, Point{110, 200}},
		{0, 1, Point{100, 205}},
		{1, 1, Point{110, 205}},
	}
	for _, tt := range tests {
		if got := c.CellAt(tt.col, tt.row).Base(); got != tt.want {
			t.Errorf("cell (%d,%d) base = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	c.AddRow(NewSpacer(s, 10, 5))

	for _, addr := range []Addr{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		if got := c.CellAt(addr.Col, addr.Row); got != nil {
			t.Errorf("CellAt(%d,%d) = %v, want nil", addr.Col, addr.Row, got)
		}
	}
}

func TestNearestByLine(t *testing.T) {
	s := DefaultSettings()
	c := New(s)

	near := NewScopeElement(&flow.Scope{
		Kind:     flow.KindFunction,
		Fragment: flow.Fragment{BeginLine: 10, EndLine: 20},
		Body:     &flow.Fragment{BeginLine: 10, EndLine: 10},
	}, ScopeFunction, SubDeclaration)
	far := NewScopeElement(&flow.Scope{
		Kind:     flow.KindFunction,
		Fragment: flow.Fragment{BeginLine: 40, EndLine: 50},
		Body:     &flow.Fragment{BeginLine: 40, EndLine: 40},
	}, ScopeFunction, SubDeclaration)

	c.AddRow(NewSpacer(s, 1, 1), near)
	c.AddRow(NewSpacer(s, 1, 1), far)

	el, dist := c.NearestByLine(12)
	if el != near {
		t.Fatalf("NearestByLine(12) = %v, want the near declaration", el)
	}
	if dist != 2 {
		t.Errorf("distance = %d, want 2", dist)
	}

	el, dist = c.NearestByLine(40)
	if el != far || dist != 0 {
		t.Errorf("NearestByLine(40) = %v dist %d, want far declaration at 0", el, dist)
	}
}

func TestNearestSkipsPureLayoutCells(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	c.AddRow(NewSpacer(s, 10, 10), NewVacant())

	el, dist := c.NearestByLine(5)
	if el != nil {
		t.Errorf("grid of spacers should yield no element, got %v", el)
	}
	if dist != flow.Unreachable {
		t.Errorf("distance = %d, want unreachable", dist)
	}
}

func TestJumpTargetForLine(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	decl := NewScopeElement(&flow.Scope{
		Kind:     flow.KindFunction,
		Fragment: flow.Fragment{Begin: 120, End: 300, BeginLine: 10, EndLine: 20},
		Body:     &flow.Fragment{Begin: 140, End: 300, BeginLine: 10, EndLine: 10},
	}, ScopeFunction, SubDeclaration)
	c.AddRow(NewSpacer(s, 1, 1), decl)

	jump, ok := c.JumpTargetForLine(12)
	if !ok {
		t.Fatal("expected a jump target near line 12")
	}
	if want := decl.LineRange().Begin; jump.Line != want {
		t.Errorf("jump line = %d, want %d", jump.Line, want)
	}
	if want := decl.AbsRange().Begin; jump.Pos != want {
		t.Errorf("jump pos = %d, want %d", jump.Pos, want)
	}

	empty := New(s)
	empty.AddRow(NewSpacer(s, 10, 10), NewVacant())
	if _, ok := empty.JumpTargetForLine(5); ok {
		t.Error("grid of layout cells should have no jump target")
	}
}
