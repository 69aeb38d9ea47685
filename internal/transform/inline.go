// Package transform applies per-line inline rewrites: literal or regex
// search/replace and boxed inline highlights, producing the visible code
// text for the typesetter.
package transform

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/coursecraft/snipmint/internal/annotation"
	"github.com/coursecraft/snipmint/internal/snippet"
)

// latexSpecials maps each character that is special to the typesetting
// system to its escaped form. Applied character by character to text
// that ends up inside an escape region.
var latexSpecials = map[rune]string{
	'&':  `\&`,
	'%':  `\%`,
	'$':  `\$`,
	'#':  `\#`,
	'_':  `\_`,
	'{':  `\{`,
	'}':  `\}`,
	'~':  `\textasciitilde{}`,
	'^':  `\textasciicircum{}`,
	'\\': `\textbackslash{}`,
	'\n': `\\`,
}

// EscapeLatex escapes every character of s that is special to the
// typesetting system.
func EscapeLatex(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if esc, ok := latexSpecials[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Apply rewrites the visible text of one line according to its inline
// entries, in encounter order: each transform operates on the result of
// the previous one. Lines with no inline entries pass through untouched.
func Apply(line int, text string, entries []snippet.Entry) (string, error) {
	out := text
	for _, e := range entries {
		var err error
		switch e.Token {
		case annotation.HighlightInline:
			out, err = highlightInline(line, out, e.Args[0])
		case annotation.InlineReplace:
			out, err = inlineReplace(line, out, e.Args[0], e.Args[1])
		default:
			err = fmt.Errorf("line %d: token %s is not an inline transform: %w", line, e.Token, annotation.ErrMalformedAnnotation)
		}
		if err != nil {
			return "", err
		}
	}
	return out, nil
}

// highlightInline wraps one literal occurrence of search in a highlight
// box rendered through the escapeinside delimiters.
func highlightInline(line int, text, search string) (string, error) {
	idx := strings.Index(text, search)
	if idx < 0 {
		return "", fmt.Errorf("line %d: highlight target %q not found: %w", line, search, annotation.ErrSubstringNotFound)
	}
	boxed := `|\snipbox{` + EscapeLatex(search) + `}|`
	return text[:idx] + boxed + text[idx+len(search):], nil
}

// inlineReplace substitutes search with replace. A search delimited by
// slashes, "/…/", is a regular expression; anything else is a literal
// substring.
func inlineReplace(line int, text, search, replace string) (string, error) {
	if isRegex(search) {
		re, err := regexp.Compile(search[1 : len(search)-1])
		if err != nil {
			return "", fmt.Errorf("line %d: bad replace pattern %q: %v: %w", line, search, err, annotation.ErrPatternError)
		}
		if !re.MatchString(text) {
			return "", fmt.Errorf("line %d: replace pattern %q matched nothing: %w", line, search, annotation.ErrSubstringNotFound)
		}
		// Neutralize expansion syntax so the replacement is literal.
		return re.ReplaceAllString(text, strings.ReplaceAll(replace, "$", "$$")), nil
	}

	if !strings.Contains(text, search) {
		return "", fmt.Errorf("line %d: replace target %q not found: %w", line, search, annotation.ErrSubstringNotFound)
	}
	return strings.ReplaceAll(text, search, replace), nil
}

func isRegex(search string) bool {
	return len(search) >= 2 && strings.HasPrefix(search, "/") && strings.HasSuffix(search, "/")
}
