package canvas

import (
	"github.com/flowcanvas/flowcanvas/pkg/errors"
	"github.com/flowcanvas/flowcanvas/pkg/flow"
)

// Build lays out a parsed module as a canvas tree. The root scope must be a
// module; every nested scope becomes a nested canvas with the standard cell
// arrangement: top-left corner, declaration, optional side comment and
// docstring, one row per nested statement, and a closing corner row.
func Build(s *Settings, ref *flow.Scope) (*Canvas, error) {
	if ref == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nil scope tree")
	}
	if ref.Kind != flow.KindModule {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"root scope is %q, want %q", ref.Kind, flow.KindModule)
	}
	return buildScope(s, ref, ScopeModule), nil
}

// scopeKindFor maps a parsed node to its layout kind. An else branch takes
// the kind of the statement it belongs to, which the parser does not encode
// on the node itself.
func scopeKindFor(ref *flow.Scope) ScopeKind {
	switch ref.Kind {
	case flow.KindModule:
		return ScopeModule
	case flow.KindFunction:
		return ScopeFunction
	case flow.KindClass:
		return ScopeClass
	case flow.KindFor:
		return ScopeFor
	case flow.KindWhile:
		return ScopeWhile
	case flow.KindTry:
		return ScopeTry
	case flow.KindWith:
		return ScopeWith
	case flow.KindDecorator:
		return ScopeDecorator
	case flow.KindExcept:
		return ScopeExcept
	case flow.KindFinally:
		return ScopeFinally
	}
	return ScopeModule
}

// elseKindFor returns the layout kind of a statement's else branch.
func elseKindFor(statement ScopeKind) ScopeKind {
	switch statement {
	case ScopeFor:
		return ScopeForElse
	case ScopeWhile:
		return ScopeWhileElse
	}
	return ScopeTryElse
}

// buildScope assembles the grid of a single scope rectangle. The grid is
// always three columns wide: the border strip, the content, and the side
// comment column.
func buildScope(s *Settings, ref *flow.Scope, kind ScopeKind) *Canvas {
	c := New(s)
	c.SetRef(ref)

	topLeft := NewScopeElement(ref, kind, SubTopLeft)
	decl := NewScopeElement(ref, kind, SubDeclaration)

	c.AddRow(topLeft, NewScopeVEdge(s), NewVacant())

	var comment Cell = NewVacant()
	if kind != ScopeModule && ref.HasSideComment() {
		comment = NewScopeElement(ref, kind, SubComment)
	}
	c.AddRow(NewScopeHEdge(s), decl, comment)

	if ref.Docstring != nil {
		c.AddRow(NewScopeHEdge(s), NewScopeElement(ref, kind, SubDocstring), NewVacant())
	}

	for _, stmt := range ref.Suite {
		c.AddRow(NewScopeHEdge(s), buildStatement(s, stmt), NewVacant())
	}

	c.AddRow(NewScopeCorner(s), NewVacant(), NewVacant())
	return c
}

// buildStatement lays out one suite statement. Compound statements whose
// trailing parts are siblings on the diagram (loop else branches, except
// handlers) are wrapped in an intermediate grid so the parts can reference
// each other by cell address.
func buildStatement(s *Settings, ref *flow.Scope) Cell {
	kind := scopeKindFor(ref)

	switch ref.Kind {
	case flow.KindFor, flow.KindWhile:
		loop := buildScope(s, ref, kind)
		if ref.Else == nil {
			return loop
		}
		wrap := New(s)
		wrap.SetRef(ref)
		wrap.AddRow(loop, buildScope(s, ref.Else, elseKindFor(kind)))
		return wrap

	case flow.KindTry:
		return buildTry(s, ref)

	case flow.KindFunction, flow.KindClass:
		if len(ref.Decorators) == 0 {
			return buildScope(s, ref, kind)
		}
		// Decorators stack above the function they decorate.
		wrap := New(s)
		wrap.SetRef(ref)
		for _, dec := range ref.Decorators {
			wrap.AddRow(buildScope(s, dec, ScopeDecorator))
		}
		wrap.AddRow(buildScope(s, ref, kind))
		return wrap
	}

	return buildScope(s, ref, kind)
}

// buildTry lays out a try statement: the try rectangle with its handlers to
// the right, then the else branch and the finally block as separate rows.
// The handler row drives the dotted links from the try rectangle.
func buildTry(s *Settings, ref *flow.Scope) Cell {
	tryCanvas := buildScope(s, ref, ScopeTry)
	if len(ref.Handlers) == 0 && ref.Else == nil && ref.Final == nil {
		return tryCanvas
	}

	wrap := New(s)
	wrap.SetRef(ref)

	cols := 1 + len(ref.Handlers)
	row := make([]Cell, 0, cols)
	row = append(row, tryCanvas)
	for _, h := range ref.Handlers {
		row = append(row, buildScope(s, h, ScopeExcept))
	}
	wrap.AddRow(row...)

	if ref.Else != nil {
		wrap.AddRow(padRow(buildScope(s, ref.Else, ScopeTryElse), cols)...)
	}
	if ref.Final != nil {
		wrap.AddRow(padRow(buildScope(s, ref.Final, ScopeFinally), cols)...)
	}
	return wrap
}

// padRow extends a single-cell row with vacant cells to the grid width.
func padRow(first Cell, cols int) []Cell {
	row := make([]Cell, 0, cols)
	row = append(row, first)
	for len(row) < cols {
		row = append(row, NewVacant())
	}
	return row
}
