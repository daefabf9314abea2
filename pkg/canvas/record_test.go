package canvas

// recordSurface captures every primitive emitted during a draw pass so tests
// can assert on geometry without a rasterizer.

type recLine struct {
	a, b Point
	pen  Pen
}

type recText struct {
	at    Point
	text  string
	color Color
}

type recTarget struct {
	el      Element
	region  Rect
	tooltip string
}

type recordSurface struct {
	rects    []Rect
	rounded  []Rect
	lines    []recLine
	paths    [][]Point
	polygons [][]Point
	texts    []recText
	targets  []recTarget
}

func (r *recordSurface) DrawRect(rc Rect, _ Pen, _ Color) {
	r.rects = append(r.rects, rc)
}

func (r *recordSurface) DrawRoundedRect(rc Rect, _ float64, _ Pen, _ Color) {
	r.rounded = append(r.rounded, rc)
}

func (r *recordSurface) DrawLine(a, b Point, pen Pen) {
	r.lines = append(r.lines, recLine{a, b, pen})
}

func (r *recordSurface) DrawPath(points []Point, _ Pen) {
	r.paths = append(r.paths, points)
}

func (r *recordSurface) DrawPolygon(points []Point, _ Pen, _ Color) {
	r.polygons = append(r.polygons, points)
}

func (r *recordSurface) DrawText(at Point, text string, _ FontMetrics, color Color) {
	r.texts = append(r.texts, recText{at, text, color})
}

func (r *recordSurface) RegisterTarget(el Element, region Rect, tooltip string) {
	r.targets = append(r.targets, recTarget{el, region, tooltip})
}

func (r *recordSurface) dottedLines() []recLine {
	var out []recLine
	for _, l := range r.lines {
		if l.pen.Style == LineDotted {
			out = append(out, l)
		}
	}
	return out
}

func (r *recordSurface) verticalLines() []recLine {
	var out []recLine
	for _, l := range r.lines {
		if l.a.X == l.b.X && l.a.Y != l.b.Y {
			out = append(out, l)
		}
	}
	return out
}
