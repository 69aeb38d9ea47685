// Package annotation parses the inline annotation comments that mark
// snippet boundaries, highlights, and inline transforms in course source
// files.
//
// The annotation grammar is a line suffix:
//
//	<code> # <clause> (";" <clause>)*
//	<clause> := <token-symbol> <snippet-name-pattern> <arg>*
//
// Token symbols are fixed two-character constants (see the table below).
// Arguments may be double-quoted to contain spaces.
package annotation

// Token identifies one annotation directive symbol.
type Token int

const (
	// RangeStart marks the first line of a snippet.
	RangeStart Token = iota
	// RangeEnd marks the last line of a snippet.
	RangeEnd
	// HighlightLine flags a single line for emphasis.
	HighlightLine
	// HighlightRangeStart opens a multi-line highlight.
	HighlightRangeStart
	// HighlightRangeEnd closes a multi-line highlight.
	HighlightRangeEnd
	// HighlightInline boxes a substring of the line for emphasis.
	// One argument: the substring to box.
	HighlightInline
	// InlineReplace rewrites the visible text of the line.
	// Two arguments: search (literal, or /regex/) and replacement.
	InlineReplace
	// TemplateMarker flags a line as live templating syntax. It is
	// line-level: it appears as a comment prefix ("#" + symbol), never
	// in clause position, and carries no snippet name.
	TemplateMarker
)

// Category groups tokens by the stage that consumes them.
type Category int

const (
	// CategoryBoundary tokens define a snippet's first/last line.
	CategoryBoundary Category = iota
	// CategoryHighlight tokens accumulate highlighted line ranges.
	CategoryHighlight
	// CategoryInline tokens rewrite the visible text of their line.
	CategoryInline
	// CategoryTemplate tokens belong to the templating pre-processor.
	CategoryTemplate
)

type tokenSpec struct {
	symbol   string
	name     string
	arity    int
	category Category
}

// The symbol constants are part of the annotation file format and must
// stay stable: course sources in the wild depend on them.
var tokenSpecs = [...]tokenSpec{
	RangeStart:          {symbol: "<-", name: "range-start", arity: 0, category: CategoryBoundary},
	RangeEnd:            {symbol: "->", name: "range-end", arity: 0, category: CategoryBoundary},
	HighlightLine:       {symbol: "!!", name: "highlight-line", arity: 0, category: CategoryHighlight},
	HighlightRangeStart: {symbol: "<!", name: "highlight-range-start", arity: 0, category: CategoryHighlight},
	HighlightRangeEnd:   {symbol: "!>", name: "highlight-range-end", arity: 0, category: CategoryHighlight},
	HighlightInline:     {symbol: "!*", name: "highlight-inline", arity: 1, category: CategoryInline},
	InlineReplace:       {symbol: ">>", name: "inline-replace", arity: 2, category: CategoryInline},
	TemplateMarker:      {symbol: "%%", name: "template-marker", arity: 0, category: CategoryTemplate},
}

var symbolIndex = func() map[string]Token {
	m := make(map[string]Token, len(tokenSpecs))
	for t, spec := range tokenSpecs {
		m[spec.symbol] = Token(t)
	}
	return m
}()

// Lookup resolves a token symbol to its Token. The second return value
// is false for unknown symbols.
func Lookup(symbol string) (Token, bool) {
	t, ok := symbolIndex[symbol]
	return t, ok
}

// Symbol returns the two-character annotation symbol, e.g. "<-".
func (t Token) Symbol() string { return tokenSpecs[t].symbol }

// Arity returns the number of string arguments the token expects after
// the snippet-name pattern.
func (t Token) Arity() int { return tokenSpecs[t].arity }

// Category returns the semantic category of the token.
func (t Token) Category() Category { return tokenSpecs[t].category }

func (t Token) String() string { return tokenSpecs[t].name }

// Symbols returns every recognized token symbol in declaration order.
// Used to build the annotation-detection regexp.
func Symbols() []string {
	out := make([]string, len(tokenSpecs))
	for i, spec := range tokenSpecs {
		out[i] = spec.symbol
	}
	return out
}
