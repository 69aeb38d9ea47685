package annotation

import (
	"fmt"
	"regexp"
	"strings"
)

// CommentIntroducer separates code from the annotation comment. The
// surrounding spaces are required: a bare "#" inside code is not an
// annotation.
const CommentIntroducer = " # "

// ClauseSeparator splits multiple directives on one line.
const ClauseSeparator = ";"

// Exercise marker keywords. A marker line is converted to its
// solution-revealing form by substituting the keyword.
const (
	ExerciseKeyword = "exercise"
	SolutionKeyword = "solution"
)

// commentRE matches "<code> # <token> ...". The comment group must open
// with a recognized token symbol so that ordinary comments containing
// "#" pass through as plain code.
var commentRE = func() *regexp.Regexp {
	symbols := Symbols()
	quoted := make([]string, len(symbols))
	for i, s := range symbols {
		quoted[i] = regexp.QuoteMeta(s)
	}
	return regexp.MustCompile(`^(?P<code>.*) +# (?P<comment>(?:` + strings.Join(quoted, "|") + `) .*)$`)
}()

// exerciseRE matches the fixed exercise marker shape "# exercise: [label]".
var exerciseRE = regexp.MustCompile(`^\s*# ` + ExerciseKeyword + `: \[(?P<label>[^\]]+)\]\s*$`)

// LineKind tags the classification of a raw source line.
type LineKind int

const (
	// LinePlain is ordinary code with no annotation.
	LinePlain LineKind = iota
	// LineAnnotated carries one or more directive clauses.
	LineAnnotated
	// LineExercise is an exercise marker line.
	LineExercise
)

// Directive is one parsed clause: a token applied to a snippet-name
// pattern with its arguments.
type Directive struct {
	Token   Token
	Pattern string
	Args    []string
}

// ParsedLine is the classification of one source line.
type ParsedLine struct {
	Number int // 1-based, after templating
	Kind   LineKind
	// Code is the visible text: the raw line with the annotation
	// comment and trailing whitespace stripped.
	Code       string
	Directives []Directive // set for LineAnnotated
	Label      string      // set for LineExercise
}

// ParseLine classifies one raw source line. number is the 1-based line
// number in the (possibly templated) source.
func ParseLine(number int, raw string) (ParsedLine, error) {
	if m := commentRE.FindStringSubmatch(raw); m != nil {
		code, comment := m[1], m[2]
		directives, err := parseClauses(number, comment)
		if err != nil {
			return ParsedLine{}, err
		}
		return ParsedLine{
			Number:     number,
			Kind:       LineAnnotated,
			Code:       strings.TrimRight(code, " \t"),
			Directives: directives,
		}, nil
	}

	if m := exerciseRE.FindStringSubmatch(raw); m != nil {
		return ParsedLine{
			Number: number,
			Kind:   LineExercise,
			Code:   strings.TrimRight(raw, " \t"),
			Label:  m[1],
		}, nil
	}

	return ParsedLine{
		Number: number,
		Kind:   LinePlain,
		Code:   strings.TrimRight(raw, " \t"),
	}, nil
}

// ResolveExercise converts an exercise marker line to its
// solution-revealing form. Pure textual substitution on the keyword.
func ResolveExercise(code string) string {
	return strings.Replace(code, ExerciseKeyword, SolutionKeyword, 1)
}

func parseClauses(number int, comment string) ([]Directive, error) {
	parts := strings.Split(comment, ClauseSeparator)
	directives := make([]Directive, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("line %d: empty directive clause: %w", number, ErrMalformedAnnotation)
		}

		words, err := splitWords(part)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", number, err, ErrMalformedAnnotation)
		}

		token, ok := Lookup(words[0])
		if !ok {
			return nil, fmt.Errorf("line %d: unknown token %q: %w", number, words[0], ErrMalformedAnnotation)
		}
		if token == TemplateMarker {
			return nil, fmt.Errorf("line %d: token %s is line-level, not snippet-scoped: %w", number, token, ErrMalformedAnnotation)
		}

		// Clause shape: symbol, snippet pattern, then arity args.
		got := len(words) - 2
		if got < 0 {
			return nil, fmt.Errorf("line %d: token %s is missing a snippet name: %w", number, token, ErrMalformedAnnotation)
		}
		if got != token.Arity() {
			return nil, fmt.Errorf("line %d: token %s expects %d argument(s), got %d: %w",
				number, token, token.Arity(), got, ErrMalformedAnnotation)
		}

		directives = append(directives, Directive{
			Token:   token,
			Pattern: words[1],
			Args:    words[2:],
		})
	}

	return directives, nil
}

// splitWords splits a clause into whitespace-separated words, honoring
// double quotes so an argument may contain spaces. Quotes are not part
// of the word.
func splitWords(s string) ([]string, error) {
	var words []string
	var cur strings.Builder
	inWord := false
	inQuote := false

	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			inWord = true
		case (r == ' ' || r == '\t') && !inQuote:
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if inQuote {
		return nil, fmt.Errorf("unterminated quote in %q", s)
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words, nil
}
