package canvas

// ScopeKind identifies the control-flow construct a scope element renders.
// The else branches of for, while and try statements are distinct kinds:
// they carry their own color themes and their connector behavior differs
// (only a try-else keeps the vertical scope connector).
type ScopeKind string

// Scope kinds laid out by the engine.
const (
	ScopeModule    ScopeKind = "module"
	ScopeFunction  ScopeKind = "function"
	ScopeClass     ScopeKind = "class"
	ScopeFor       ScopeKind = "for"
	ScopeWhile     ScopeKind = "while"
	ScopeTry       ScopeKind = "try"
	ScopeWith      ScopeKind = "with"
	ScopeDecorator ScopeKind = "decorator"
	ScopeForElse   ScopeKind = "forElse"
	ScopeWhileElse ScopeKind = "whileElse"
	ScopeTryElse   ScopeKind = "tryElse"
	ScopeExcept    ScopeKind = "except"
	ScopeFinally   ScopeKind = "finally"
)

// Settings is the read-only geometry and appearance configuration shared by
// every cell of a diagram. It is a snapshot: a configuration change means
// constructing a new Settings and rebuilding the diagram wholesale, never
// mutating a snapshot a live canvas still references.
type Settings struct {
	// Cell paddings around scope borders and between cells.
	HCellPadding float64 `toml:"hCellPadding"`
	VCellPadding float64 `toml:"vCellPadding"`

	// Header paddings inside scope declaration boxes.
	HHeaderPadding float64 `toml:"hHeaderPadding"`
	VHeaderPadding float64 `toml:"vHeaderPadding"`

	// Text paddings for comment boxes, with the tighter "hidden" profile
	// used when comments or docstrings are collapsed to badges.
	HTextPadding       float64 `toml:"hTextPadding"`
	VTextPadding       float64 `toml:"vTextPadding"`
	HHiddenTextPadding float64 `toml:"hHiddenTextPadding"`
	VHiddenTextPadding float64 `toml:"vHiddenTextPadding"`

	// Radii and line widths.
	ScopeRectRadius float64 `toml:"scopeRectRadius"`
	CommentCorner   float64 `toml:"commentCorner"`
	BoxLineWidth    float64 `toml:"boxLineWidth"`
	LineWidth       float64 `toml:"lineWidth"`
	SelectPenWidth  float64 `toml:"selectPenWidth"`

	// MainLine is the X offset of the main vertical flow line within a
	// connector column.
	MainLine float64 `toml:"mainLine"`

	// MinScopeWidth floors a scope declaration's negotiated width.
	MinScopeWidth float64 `toml:"minScopeWidth"`

	// Fixed spacer sizes.
	HSpacer float64 `toml:"hSpacer"`
	VSpacer float64 `toml:"vSpacer"`

	// OpenGroupHSpacer is the extra indent each open group nesting level
	// adds; connector routing corrections are multiples of it.
	OpenGroupHSpacer float64 `toml:"openGroupHSpacer"`

	// Badge geometry.
	BadgeRadius    float64 `toml:"badgeRadius"`
	BadgeLineWidth float64 `toml:"badgeLineWidth"`
	BadgeHSpacing  float64 `toml:"badgeHSpacing"`
	BadgeVSpacing  float64 `toml:"badgeVSpacing"`
	BadgeShift     float64 `toml:"badgeShift"`

	// Fonts. MonoFont measures declarations, comments and docstrings;
	// BadgeFont measures badge labels.
	MonoFont  FontMetrics `toml:"monoFont"`
	BadgeFont FontMetrics `toml:"badgeFont"`

	// Toggles collapsing comments/docstrings to badge-sized placeholders.
	HideComments   bool `toml:"hidecomments"`
	HideDocstrings bool `toml:"hidedocstrings"`

	// HiddenCommentText is the placeholder rendered for a collapsed
	// side comment.
	HiddenCommentText string `toml:"hiddenCommentText"`

	// Line and selection colors.
	LineColor   Color `toml:"lineColor"`
	SelectColor Color `toml:"selectColor"`

	// Badge colors.
	BadgeBGColor     Color `toml:"badgeBGColor"`
	BadgeFGColor     Color `toml:"badgeFGColor"`
	BadgeBorderColor Color `toml:"badgeBorderColor"`

	// Comment and docstring colors. Docstring boxes borrow the border
	// color of their enclosing scope.
	CommentBGColor     Color `toml:"commentBGColor"`
	CommentFGColor     Color `toml:"commentFGColor"`
	CommentBorderColor Color `toml:"commentBorderColor"`
	DocstringBGColor   Color `toml:"docstringBGColor"`
	DocstringFGColor   Color `toml:"docstringFGColor"`

	// Rubber band selection rectangle colors.
	RubberBandBorderColor Color `toml:"rubberBandBorderColor"`
	RubberBandFGColor     Color `toml:"rubberBandFGColor"`

	// Scopes maps a scope kind to its color theme.
	Scopes map[ScopeKind]Theme `toml:"scopes"`
}

// ScopeTheme returns the theme for a scope kind, falling back to the module
// theme for kinds missing from the map.
func (s *Settings) ScopeTheme(kind ScopeKind) Theme {
	if t, ok := s.Scopes[kind]; ok {
		return t
	}
	return s.Scopes[ScopeModule]
}

// DefaultSettings returns the stock appearance configuration. Callers may
// copy and adjust it before building a diagram; the result must be treated
// as frozen once a build starts.
func DefaultSettings() *Settings {
	return &Settings{
		HCellPadding:       8,
		VCellPadding:       8,
		HHeaderPadding:     6,
		VHeaderPadding:     6,
		HTextPadding:       4,
		VTextPadding:       4,
		HHiddenTextPadding: 2,
		VHiddenTextPadding: 2,

		ScopeRectRadius: 6,
		CommentCorner:   6,
		BoxLineWidth:    1,
		LineWidth:       1,
		SelectPenWidth:  3,

		MainLine:      12,
		MinScopeWidth: 100,

		HSpacer:          10,
		VSpacer:          10,
		OpenGroupHSpacer: 8,

		BadgeRadius:    2,
		BadgeLineWidth: 1,
		BadgeHSpacing:  4,
		BadgeVSpacing:  1,
		BadgeShift:     4,

		MonoFont:  FontMetrics{CharWidth: 8, LineHeight: 16},
		BadgeFont: FontMetrics{CharWidth: 7, LineHeight: 14, Badge: true},

		HiddenCommentText: "<comment>",

		LineColor:   "#16161d",
		SelectColor: "#07074c",

		BadgeBGColor:     "#fdfdfd",
		BadgeFGColor:     "#16161d",
		BadgeBorderColor: "#aaaaaa",

		CommentBGColor:     "#ffffc8",
		CommentFGColor:     "#222222",
		CommentBorderColor: "#d5d53c",
		DocstringBGColor:   "#e8edf7",
		DocstringFGColor:   "#222222",

		RubberBandBorderColor: "#6363c2",
		RubberBandFGColor:     "#b4b4e6",

		Scopes: map[ScopeKind]Theme{
			ScopeModule:    {BG: "#f8f8f8", FG: "#16161d", Border: "#9c9c9c"},
			ScopeFunction:  {BG: "#e0e5f5", FG: "#16161d", Border: "#6e7faa"},
			ScopeClass:     {BG: "#e0f0e4", FG: "#16161d", Border: "#6aa075"},
			ScopeFor:       {BG: "#f5e9d5", FG: "#16161d", Border: "#b0905a"},
			ScopeWhile:     {BG: "#f5e9d5", FG: "#16161d", Border: "#b0905a"},
			ScopeTry:       {BG: "#f2e2e2", FG: "#16161d", Border: "#ac7070"},
			ScopeWith:      {BG: "#e4e2f2", FG: "#16161d", Border: "#8478b4"},
			ScopeDecorator: {BG: "#ececec", FG: "#16161d", Border: "#909090"},
			ScopeForElse:   {BG: "#f7f1e3", FG: "#16161d", Border: "#b0905a"},
			ScopeWhileElse: {BG: "#f7f1e3", FG: "#16161d", Border: "#b0905a"},
			ScopeTryElse:   {BG: "#f7e9e9", FG: "#16161d", Border: "#ac7070"},
			ScopeExcept:    {BG: "#f2d8d8", FG: "#16161d", Border: "#ac7070"},
			ScopeFinally:   {BG: "#ede5e5", FG: "#16161d", Border: "#ac7070"},
		},
	}
}
