package snippet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecraft/snipmint/internal/annotation"
)

// Test Plan for the Highlight-Range State Machine:
// - Start + end alone yield exactly [firstline=S, lastline=E]
// - Single-line highlights accumulate in encounter order
// - An open highlight range is implicitly closed by the snippet end
// - A second start or end marker fails with ErrDuplicateBoundary
// - Nested highlight starts fail with ErrNestedHighlight
// - A highlight end without an open range fails with ErrUnmatchedHighlightEnd
// - Missing boundaries fail with ErrIncompleteSnippet naming the side(s)
// - Inline tokens only contribute the escape option
// - Derivation is deterministic: identical streams yield identical bytes

func entry(line int, token annotation.Token, args ...string) Entry {
	return Entry{Line: line, Token: token, Args: args}
}

func TestOptions_BoundariesOnly(t *testing.T) {
	opts, err := Options("a", []Entry{
		entry(2, annotation.RangeStart),
		entry(9, annotation.RangeEnd),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"firstline=2", "lastline=9"}, opts)
}

func TestOptions_SingleLineHighlights(t *testing.T) {
	opts, err := Options("a", []Entry{
		entry(1, annotation.RangeStart),
		entry(3, annotation.HighlightLine),
		entry(4, annotation.HighlightLine),
		entry(5, annotation.RangeEnd),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"firstline=1", "lastline=5", "highlightlines={3,4}"}, opts)
}

func TestOptions_HighlightRange(t *testing.T) {
	opts, err := Options("a", []Entry{
		entry(1, annotation.RangeStart),
		entry(2, annotation.HighlightRangeStart),
		entry(4, annotation.HighlightRangeEnd),
		entry(6, annotation.RangeEnd),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"firstline=1", "lastline=6", "highlightlines={2-4}"}, opts)
}

func TestOptions_UnterminatedHighlightClosesAtSnippetEnd(t *testing.T) {
	// A highlight left open extends to the snippet's last line.
	opts, err := Options("a", []Entry{
		entry(1, annotation.RangeStart),
		entry(3, annotation.HighlightRangeStart),
		entry(7, annotation.RangeEnd),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"firstline=1", "lastline=7", "highlightlines={3-7}"}, opts)
}

func TestOptions_MixedHighlightsKeepEncounterOrder(t *testing.T) {
	opts, err := Options("a", []Entry{
		entry(1, annotation.RangeStart),
		entry(2, annotation.HighlightLine),
		entry(3, annotation.HighlightRangeStart),
		entry(5, annotation.HighlightRangeEnd),
		entry(6, annotation.HighlightLine),
		entry(8, annotation.RangeEnd),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"firstline=1", "lastline=8", "highlightlines={2,3-5,6}"}, opts)
}

func TestOptions_DuplicateStart(t *testing.T) {
	_, err := Options("a", []Entry{
		entry(1, annotation.RangeStart),
		entry(2, annotation.RangeStart),
		entry(3, annotation.RangeEnd),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, annotation.ErrDuplicateBoundary)
	assert.Contains(t, err.Error(), `snippet "a"`)
	assert.Contains(t, err.Error(), "line 2")
}

func TestOptions_DuplicateEnd(t *testing.T) {
	_, err := Options("a", []Entry{
		entry(1, annotation.RangeStart),
		entry(2, annotation.RangeEnd),
		entry(3, annotation.RangeEnd),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, annotation.ErrDuplicateBoundary)
}

func TestOptions_NestedHighlight(t *testing.T) {
	_, err := Options("a", []Entry{
		entry(1, annotation.RangeStart),
		entry(2, annotation.HighlightRangeStart),
		entry(3, annotation.HighlightRangeStart),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, annotation.ErrNestedHighlight)
	assert.Contains(t, err.Error(), "line 3")
}

func TestOptions_UnmatchedHighlightEnd(t *testing.T) {
	_, err := Options("a", []Entry{
		entry(1, annotation.RangeStart),
		entry(2, annotation.HighlightRangeEnd),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, annotation.ErrUnmatchedHighlightEnd)
}

func TestOptions_IncompleteSnippet(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		missing string
	}{
		{
			name:    "missing end",
			entries: []Entry{entry(1, annotation.RangeStart)},
			missing: "missing end marker",
		},
		{
			name:    "missing start",
			entries: []Entry{entry(5, annotation.RangeEnd)},
			missing: "missing start marker",
		},
		{
			name:    "missing both",
			entries: nil,
			missing: "missing start and end marker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Options("a", tt.entries)
			require.Error(t, err)
			assert.ErrorIs(t, err, annotation.ErrIncompleteSnippet)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestOptions_InlineTokensRequestEscape(t *testing.T) {
	opts, err := Options("a", []Entry{
		entry(1, annotation.RangeStart),
		entry(2, annotation.HighlightInline, "x"),
		entry(3, annotation.InlineReplace, "a", "b"),
		entry(4, annotation.RangeEnd),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"firstline=1", "lastline=4", EscapeOption}, opts)
}

func TestOptions_Deterministic(t *testing.T) {
	entries := []Entry{
		entry(1, annotation.RangeStart),
		entry(2, annotation.HighlightLine),
		entry(3, annotation.HighlightRangeStart),
		entry(4, annotation.HighlightRangeEnd),
		entry(5, annotation.RangeEnd),
	}

	first, err := Options("a", entries)
	require.NoError(t, err)
	second, err := Options("a", entries)
	require.NoError(t, err)

	assert.Equal(t, strings.Join(first, ","), strings.Join(second, ","))
}

func TestBoundaries(t *testing.T) {
	first, last, ok := Boundaries([]Entry{
		entry(2, annotation.RangeStart),
		entry(6, annotation.RangeEnd),
	})
	assert.True(t, ok)
	assert.Equal(t, 2, first)
	assert.Equal(t, 6, last)

	_, _, ok = Boundaries([]Entry{entry(2, annotation.RangeStart)})
	assert.False(t, ok)
}
