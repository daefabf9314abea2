package flow

// ScopeKind identifies the control-flow construct a scope node represents.
type ScopeKind string

// Scope kinds produced by the parser.
const (
	KindModule    ScopeKind = "module"
	KindFunction  ScopeKind = "function"
	KindClass     ScopeKind = "class"
	KindFor       ScopeKind = "for"
	KindWhile     ScopeKind = "while"
	KindTry       ScopeKind = "try"
	KindWith      ScopeKind = "with"
	KindDecorator ScopeKind = "decorator"
	KindElse      ScopeKind = "else"
	KindExcept    ScopeKind = "except"
	KindFinally   ScopeKind = "finally"
)

// Comment is a side comment attached to a scope heading.
type Comment struct {
	Fragment
	Text string `json:"text"`
}

// Docstring is a scope docstring. Body covers the string literal itself,
// excluding any leading comments.
type Docstring struct {
	Body Fragment `json:"body"`
	Text string   `json:"text"`
}

// Scope is one node of the parsed control-flow tree. The embedded Fragment
// spans the whole construct including its suite.
//
// Optional sub-ranges are nil when the source has no such clause. Which
// ranges are populated depends on Kind: loops carry Iteration or Condition,
// with-statements carry Items, except clauses carry Clause, and a module may
// carry EncodingLine and BangLine instead of a Name.
type Scope struct {
	Kind ScopeKind `json:"kind"`
	Fragment

	// Text is the declaration header as it should appear on the diagram,
	// e.g. "def compute(a, b):". Rendered verbatim by the canvas.
	Text string `json:"text"`

	Body         *Fragment `json:"body,omitempty"`
	Name         *Fragment `json:"name,omitempty"`
	Arguments    *Fragment `json:"arguments,omitempty"`
	Iteration    *Fragment `json:"iteration,omitempty"`
	Condition    *Fragment `json:"condition,omitempty"`
	Items        *Fragment `json:"items,omitempty"`
	Clause       *Fragment `json:"clause,omitempty"`
	EncodingLine *Fragment `json:"encodingLine,omitempty"`
	BangLine     *Fragment `json:"bangLine,omitempty"`

	SideComment *Comment   `json:"sideComment,omitempty"`
	Docstring   *Docstring `json:"docstring,omitempty"`

	// Suite holds the nested constructs of the scope body in source order.
	Suite []*Scope `json:"suite,omitempty"`

	// Trailing parts of compound statements. Handlers, Else and Final are
	// only set on try scopes; Else is also set on loops with an else branch.
	Decorators []*Scope `json:"decorators,omitempty"`
	Handlers   []*Scope `json:"handlers,omitempty"`
	Else       *Scope   `json:"else,omitempty"`
	Final      *Scope   `json:"finally,omitempty"`
}

// LastPart returns the last constituent of a compound statement: the finally
// block if present, otherwise the else branch, otherwise the last handler,
// otherwise the scope itself. Used to compute the full extent of a try
// statement whose parts are laid out as sibling scopes.
func (s *Scope) LastPart() *Scope {
	if s.Final != nil {
		return s.Final
	}
	if s.Else != nil {
		return s.Else
	}
	if n := len(s.Handlers); n > 0 {
		return s.Handlers[n-1]
	}
	return s
}

// HasSideComment reports whether the scope heading carries a side comment.
func (s *Scope) HasSideComment() bool {
	return s.SideComment != nil
}
