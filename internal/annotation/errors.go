package annotation

import "errors"

// Sentinel errors for the annotation and projection pipeline. All
// failures are request-scoped and abort the projection; callers match
// them with errors.Is. Wrapped messages carry the file name and line
// number so an author can fix the offending annotation.
var (
	// ErrMalformedAnnotation indicates an unknown token symbol or a
	// wrong argument count in a directive clause.
	ErrMalformedAnnotation = errors.New("malformed annotation")

	// ErrDuplicateBoundary indicates a second start or end marker for
	// the same snippet.
	ErrDuplicateBoundary = errors.New("duplicate boundary marker")

	// ErrIncompleteSnippet indicates a snippet missing its start or end
	// marker.
	ErrIncompleteSnippet = errors.New("incomplete snippet")

	// ErrNestedHighlight indicates a highlight range opened while
	// another is still open.
	ErrNestedHighlight = errors.New("nested highlight range")

	// ErrUnmatchedHighlightEnd indicates a highlight-range end with no
	// open range.
	ErrUnmatchedHighlightEnd = errors.New("unmatched highlight end")

	// ErrSubstringNotFound indicates an inline transform whose search
	// target is absent from the line.
	ErrSubstringNotFound = errors.New("substring not found")

	// ErrPatternError indicates an invalid inline-replace regexp.
	ErrPatternError = errors.New("invalid pattern")

	// ErrStrayTemplateSyntax indicates templating delimiters on a
	// comment line that lacks the template marker.
	ErrStrayTemplateSyntax = errors.New("stray template syntax")

	// ErrUnreadableSource indicates the source file cannot be read.
	ErrUnreadableSource = errors.New("unreadable source")
)
