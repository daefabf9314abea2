package canvas

import "testing"

func renderAndDraw(t *testing.T, c *Canvas, sur Surface) {
	t.Helper()
	if _, err := c.Render(); err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if err := c.Draw(sur, 0, 0); err != nil {
		t.Fatalf("Draw error: %v", err)
	}
}

func TestConnectorSpaceReservation(t *testing.T) {
	s := DefaultSettings()

	tests := []struct {
		name        string
		connections []AnchorPair
		wantWidth   float64
		wantHeight  float64
	}{
		{
			name:        "vertical passthrough",
			connections: []AnchorPair{{North, South}},
			wantWidth:   s.MainLine + s.HCellPadding,
			wantHeight:  0,
		},
		{
			name:        "horizontal only",
			connections: []AnchorPair{{West, East}},
			wantWidth:   0,
			wantHeight:  2 * s.VCellPadding,
		},
		{
			name:        "angled reserves both",
			connections: []AnchorPair{{North, East}},
			wantWidth:   s.MainLine + s.HCellPadding,
			wantHeight:  2 * s.VCellPadding,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(s)
			conn := NewConnectorCell(tt.connections...)
			c.AddRow(conn)
			if _, err := c.Render(); err != nil {
				t.Fatalf("Render error: %v", err)
			}
			min := conn.MinSize()
			if min.Width != tt.wantWidth {
				t.Errorf("minWidth = %v, want %v", min.Width, tt.wantWidth)
			}
			if min.Height != tt.wantHeight {
				t.Errorf("minHeight = %v, want %v", min.Height, tt.wantHeight)
			}
			if min.Width < 0 || min.Height < 0 {
				t.Errorf("negative minimum size %v", min)
			}
		})
	}
}

func TestConnectorAnchorSymmetry(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	conn := NewConnectorCell(AnchorPair{North, South})
	c.AddRow(conn)

	renderAndDraw(t, c, &recordSurface{})

	// North and South resolve to the same X for a straight passthrough.
	n := conn.AnchorPoint(North)
	so := conn.AnchorPoint(South)
	if n.X != so.X {
		t.Errorf("north X %v != south X %v", n.X, so.X)
	}
	if n.Y != 0 {
		t.Errorf("north Y = %v, want 0", n.Y)
	}
	if so.Y != conn.Size().Height {
		t.Errorf("south Y = %v, want %v", so.Y, conn.Size().Height)
	}
}

func TestAngledDetection(t *testing.T) {
	tests := []struct {
		pair AnchorPair
		want bool
	}{
		{AnchorPair{North, South}, false},
		{AnchorPair{West, East}, false},
		{AnchorPair{North, East}, true},
		{AnchorPair{West, South}, true},
		{AnchorPair{North, Center}, false},
		{AnchorPair{Center, East}, false},
	}
	for _, tt := range tests {
		if got := angled(tt.pair); got != tt.want {
			t.Errorf("angled(%v) = %v, want %v", tt.pair, got, tt.want)
		}
	}
}

func TestAngledConnectionRoutesThroughCenter(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	conn := NewConnectorCell(AnchorPair{North, East})
	c.AddRow(conn)

	sur := &recordSurface{}
	renderAndDraw(t, c, sur)

	if len(sur.paths) != 1 {
		t.Fatalf("paths drawn = %d, want 1", len(sur.paths))
	}
	if got := len(sur.paths[0]); got != 3 {
		t.Errorf("angled connection has %d points, want 3 (via center)", got)
	}
	center := conn.AnchorPoint(Center)
	if sur.paths[0][1] != center {
		t.Errorf("mid point = %v, want center %v", sur.paths[0][1], center)
	}
}

func TestConnectorWestAlignsWithLeftSibling(t *testing.T) {
	s := DefaultSettings()
	c := New(s)
	// A 30-high content cell to the left; the horizontal stub must leave at
	// half its minimum height, not at half of the connector's own height.
	content := NewSpacer(s, 20, 30)
	content.kind = Kind(99) // stands in for a content cell
	conn := NewConnectorCell(AnchorPair{West, East})
	c.AddRow(content, NewHSpacer(s, 4), conn)

	renderAndDraw(t, c, &recordSurface{})

	if got := conn.AnchorPoint(West).Y; got != 15 {
		t.Errorf("west anchor Y = %v, want 15", got)
	}
}

func TestConnectorGroupDepthShift(t *testing.T) {
	s := DefaultSettings()
	parent := New(s)

	nested := New(s)
	nested.AddRow(NewSpacer(s, 40, 20))
	nested.MaxGlobalOpenGroupDepth = 2

	conn := NewConnectorCell(AnchorPair{North, South})
	conn.SubKind = ConnTopIf

	parent.AddRow(conn)
	parent.AddRow(nested)

	renderAndDraw(t, parent, &recordSurface{})

	want := 2 * 2 * s.OpenGroupHSpacer
	plain := conn.AnchorPoint(North)
	shifted := conn.AnchorPoint(South)
	if got := shifted.X - plain.X; got != want {
		t.Errorf("south anchor shift = %v, want %v", got, want)
	}
}
