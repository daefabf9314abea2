package canvas

// commentBoxOutline returns the closed outline of a side comment box: a
// rectangle with its top-right corner clipped to a fold.
func commentBoxOutline(x, y, w, h, fold float64) []Point {
	return []Point{
		{x, y},
		{x + w - fold, y},
		{x + w, y + fold},
		{x + w, y + h},
		{x, y + h},
	}
}

// commentBoxFold returns the crease marking the folded corner.
func commentBoxFold(x, y, w, fold float64) []Point {
	return []Point{
		{x + w - fold, y},
		{x + w - fold, y + fold},
		{x + w, y + fold},
	}
}
