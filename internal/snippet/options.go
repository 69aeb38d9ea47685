package snippet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coursecraft/snipmint/internal/annotation"
)

// EscapeOption enables LaTeX escapes between "|" delimiters in the
// rendered code. Emitted whenever a snippet carries inline transforms,
// because boxed highlights are rendered through the escape.
const EscapeOption = "escapeinside=||"

// highlightState is the transient reduction state for one snippet's
// token stream. Created empty at entry, discarded at exit.
type highlightState struct {
	rangeOpen int
	hasOpen   bool
	ranges    []string
	firstLine int
	lastLine  int
	seenStart bool
	seenEnd   bool
	escape    bool
}

// Options consumes the ordered token stream for one snippet and derives
// its typesetting option list.
//
// Emission order is fixed: firstline, lastline, highlightlines (single
// lines and ranges in encounter order), then the escape flag. The
// textual form is byte-identical across runs for the same stream.
func Options(name string, entries []Entry) ([]string, error) {
	var st highlightState

	for _, e := range entries {
		switch e.Token {
		case annotation.RangeStart:
			if st.seenStart {
				return nil, fmt.Errorf("snippet %q: second start marker at line %d: %w", name, e.Line, annotation.ErrDuplicateBoundary)
			}
			st.seenStart = true
			st.firstLine = e.Line

		case annotation.RangeEnd:
			if st.seenEnd {
				return nil, fmt.Errorf("snippet %q: second end marker at line %d: %w", name, e.Line, annotation.ErrDuplicateBoundary)
			}
			st.seenEnd = true
			st.lastLine = e.Line
			if st.hasOpen {
				// Ending the snippet implicitly ends an open highlight.
				st.ranges = append(st.ranges, rangeSpec(st.rangeOpen, e.Line))
				st.hasOpen = false
			}

		case annotation.HighlightLine:
			st.ranges = append(st.ranges, strconv.Itoa(e.Line))

		case annotation.HighlightRangeStart:
			if st.hasOpen {
				return nil, fmt.Errorf("snippet %q: nested highlight start at line %d: %w", name, e.Line, annotation.ErrNestedHighlight)
			}
			st.hasOpen = true
			st.rangeOpen = e.Line

		case annotation.HighlightRangeEnd:
			if !st.hasOpen {
				return nil, fmt.Errorf("snippet %q: unmatched highlight end at line %d: %w", name, e.Line, annotation.ErrUnmatchedHighlightEnd)
			}
			st.ranges = append(st.ranges, rangeSpec(st.rangeOpen, e.Line))
			st.hasOpen = false

		case annotation.HighlightInline, annotation.InlineReplace:
			// Substantive effect happens in the inline transformer;
			// here they only request the escape option.
			st.escape = true

		default:
			return nil, fmt.Errorf("snippet %q: unexpected token %s at line %d: %w", name, e.Token, e.Line, annotation.ErrMalformedAnnotation)
		}
	}

	if !st.seenStart || !st.seenEnd {
		return nil, fmt.Errorf("snippet %q: missing %s marker: %w", name, missingSides(st), annotation.ErrIncompleteSnippet)
	}

	opts := []string{
		"firstline=" + strconv.Itoa(st.firstLine),
		"lastline=" + strconv.Itoa(st.lastLine),
	}
	if len(st.ranges) > 0 {
		opts = append(opts, "highlightlines={"+strings.Join(st.ranges, ",")+"}")
	}
	if st.escape {
		opts = append(opts, EscapeOption)
	}
	return opts, nil
}

// Boundaries returns the first and last line of a snippet from its
// entries, without running the full option derivation. ok is false when
// either boundary is missing.
func Boundaries(entries []Entry) (first, last int, ok bool) {
	seenFirst, seenLast := false, false
	for _, e := range entries {
		switch e.Token {
		case annotation.RangeStart:
			if !seenFirst {
				first = e.Line
				seenFirst = true
			}
		case annotation.RangeEnd:
			if !seenLast {
				last = e.Line
				seenLast = true
			}
		}
	}
	return first, last, seenFirst && seenLast
}

func rangeSpec(start, end int) string {
	return strconv.Itoa(start) + "-" + strconv.Itoa(end)
}

func missingSides(st highlightState) string {
	switch {
	case !st.seenStart && !st.seenEnd:
		return "start and end"
	case !st.seenStart:
		return "start"
	default:
		return "end"
	}
}
