// Package flow defines the parsed-source model consumed by the canvas engine.
//
// The engine never tokenizes Python itself. A parser (external to this
// repository) produces a tree of [Scope] nodes whose fragments carry absolute
// character positions and line numbers into the original buffer. The canvas
// packages only read these ranges: they size cells from the attached display
// text and map drawn elements back to the source for click-to-navigate.
//
// # Ranges
//
// Every fragment exposes two ranges over the source buffer:
//   - an absolute position range [Begin, End] in characters
//   - a line range [BeginLine, EndLine]
//
// Optional fragments (side comments, docstrings, encoding lines) are
// represented as nil pointers. All distance helpers treat a missing fragment
// as unreachable rather than panicking.
package flow

import "math"

// Unreachable is the sentinel distance for elements that cannot be matched
// against a cursor position, e.g. a cell whose comment range is absent.
const Unreachable = math.MaxInt

// Span is an inclusive [Begin, End] range, either in absolute character
// positions or in line numbers depending on context.
type Span struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

// Fragment locates a piece of source text by both absolute position and line.
type Fragment struct {
	Begin     int `json:"begin"`
	End       int `json:"end"`
	BeginLine int `json:"beginLine"`
	EndLine   int `json:"endLine"`
}

// AbsRange returns the absolute character span of the fragment.
func (f *Fragment) AbsRange() Span { return Span{f.Begin, f.End} }

// LineRange returns the line span of the fragment.
func (f *Fragment) LineRange() Span { return Span{f.BeginLine, f.EndLine} }

// Distance returns 0 when pos falls inside the inclusive range [begin, end],
// otherwise the magnitude of the gap to the nearest boundary.
func Distance(pos, begin, end int) int {
	if pos >= begin && pos <= end {
		return 0
	}
	if pos < begin {
		return begin - pos
	}
	return pos - end
}

// AbsDistance returns the distance from pos to the fragment's absolute range.
// A nil fragment is unreachable.
func (f *Fragment) AbsDistance(pos int) int {
	if f == nil {
		return Unreachable
	}
	return Distance(pos, f.Begin, f.End)
}

// LineDistance returns the distance from line to the fragment's line range.
// A nil fragment is unreachable.
func (f *Fragment) LineDistance(line int) int {
	if f == nil {
		return Unreachable
	}
	return Distance(line, f.BeginLine, f.EndLine)
}
