package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursecraft/snipmint/internal/annotation"
	"github.com/coursecraft/snipmint/internal/variant"
)

// Test Plan for the Templating Pre-processor:
// - Files without marker lines are returned unmodified for every variant
// - A solution-conditioned branch renders only for SOLUTION and SELFTEST
// - Slide and selftest flags condition their own branches
// - Pure-directive marker lines leave no blank lines behind
// - Templating delimiters on unmarked comment lines fail with
//   ErrStrayTemplateSyntax and the offending line number
// - Invalid template syntax on a marker line is reported with the file name

const plainSource = "def f():\n    return 1\n"

func TestPreprocess_NoMarkersUnmodified(t *testing.T) {
	for _, v := range []variant.Variant{variant.Code, variant.Solution, variant.Slide, variant.Selftest} {
		out, err := Preprocess("f.py", plainSource, v)
		require.NoError(t, err)
		assert.Equal(t, plainSource, out, "variant %s", v)
	}
}

func TestPreprocess_SolutionBranch(t *testing.T) {
	src := "x = 1\n" +
		"#%% {{ if .solution }}\n" +
		"answer = 42\n" +
		"#%% {{ end }}\n" +
		"y = 2\n"

	out, err := Preprocess("f.py", src, variant.Code)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\ny = 2\n", out)

	out, err = Preprocess("f.py", src, variant.Solution)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\nanswer = 42\ny = 2\n", out)

	// Selftest implies solution.
	out, err = Preprocess("f.py", src, variant.Selftest)
	require.NoError(t, err)
	assert.Equal(t, "x = 1\nanswer = 42\ny = 2\n", out)
}

func TestPreprocess_SlideBranch(t *testing.T) {
	src := "#%% {{ if .slide }}\n" +
		"short = True\n" +
		"#%% {{ else }}\n" +
		"short = False\n" +
		"#%% {{ end }}\n"

	out, err := Preprocess("f.py", src, variant.Slide)
	require.NoError(t, err)
	assert.Equal(t, "short = True\n", out)

	out, err = Preprocess("f.py", src, variant.Code)
	require.NoError(t, err)
	assert.Equal(t, "short = False\n", out)
}

func TestPreprocess_SelftestFlag(t *testing.T) {
	src := "#%% {{ if .selftest }}\n" +
		"check()\n" +
		"#%% {{ end }}\n"

	out, err := Preprocess("f.py", src, variant.Selftest)
	require.NoError(t, err)
	assert.Equal(t, "check()\n", out)

	// Solution alone does not enable selftest-only content.
	out, err = Preprocess("f.py", src, variant.Solution)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestPreprocess_LineNumbersShiftWithBranches(t *testing.T) {
	// Downstream line numbers are computed on the rendered text: an
	// inactive branch removes its lines entirely.
	src := "a = 1\n" +
		"#%% {{ if .solution }}\n" +
		"b = 2\n" +
		"c = 3\n" +
		"#%% {{ end }}\n" +
		"d = 4\n"

	out, err := Preprocess("f.py", src, variant.Code)
	require.NoError(t, err)
	assert.Equal(t, "a = 1\nd = 4\n", out)
}

func TestPreprocess_SingleLineConditionalKeepsItsNewline(t *testing.T) {
	// A marker line whose condition emits inline content is a line of
	// its own; its output must not glue onto the next source line.
	src := "#%% {{ if .solution }}answer = 42{{ end }}\n" +
		"x = 1\n"

	out, err := Preprocess("f.py", src, variant.Solution)
	require.NoError(t, err)
	assert.Equal(t, "answer = 42\nx = 1\n", out)
}

func TestPreprocess_InterpolatingMarkerKeepsItsNewline(t *testing.T) {
	src := "#%% limit = {{ if .slide }}10{{ else }}100{{ end }}\n" +
		"run(limit)\n"

	out, err := Preprocess("f.py", src, variant.Slide)
	require.NoError(t, err)
	assert.Equal(t, "limit = 10\nrun(limit)\n", out)
}

func TestPreprocess_MultiActionDirectiveConsumesItsNewline(t *testing.T) {
	// Back-to-back control actions on one marker line still behave as
	// a pure directive.
	src := "a = 1\n" +
		"#%% {{ if .solution }}{{ if .selftest }}\n" +
		"b = 2\n" +
		"#%% {{ end }}{{ end }}\n" +
		"c = 3\n"

	out, err := Preprocess("f.py", src, variant.Selftest)
	require.NoError(t, err)
	assert.Equal(t, "a = 1\nb = 2\nc = 3\n", out)

	out, err = Preprocess("f.py", src, variant.Solution)
	require.NoError(t, err)
	assert.Equal(t, "a = 1\nc = 3\n", out)
}

func TestPreprocess_StrayDelimitersOnCommentLine(t *testing.T) {
	src := "x = 1\n" +
		"# forgot the marker {{ if .solution }}\n"

	_, err := Preprocess("f.py", src, variant.Code)
	require.Error(t, err)
	assert.ErrorIs(t, err, annotation.ErrStrayTemplateSyntax)
	assert.Contains(t, err.Error(), "f.py:2")
}

func TestPreprocess_DelimitersInCodeAreNotStray(t *testing.T) {
	// Only comment lines are checked; code legitimately containing
	// braces passes through.
	src := "tmpl = \"{{ name }}\"\n"

	out, err := Preprocess("f.py", src, variant.Code)
	require.NoError(t, err)
	assert.Equal(t, src, out)
}

func TestPreprocess_InvalidTemplate(t *testing.T) {
	src := "#%% {{ if .solution\n"

	_, err := Preprocess("broken.py", src, variant.Code)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.py")
}

func TestPreprocess_MarkerPrefixMatchesTokenSymbol(t *testing.T) {
	assert.Equal(t, "#"+annotation.TemplateMarker.Symbol(), MarkerPrefix)
}
