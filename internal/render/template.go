// Package render runs the optional variant-conditioned templating pass
// over a source file before line classification. Because template
// branches can add or remove lines, all downstream line numbers are
// computed against the rendered text.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/coursecraft/snipmint/internal/annotation"
	"github.com/coursecraft/snipmint/internal/variant"
)

// MarkerPrefix flags a comment line as live templating syntax: the
// comment character followed by the template-marker token symbol. The
// prefix is stripped and the remainder handed to the template engine.
var MarkerPrefix = "#" + annotation.TemplateMarker.Symbol()

// Template delimiters. A comment line containing either without the
// marker prefix is a stray-syntax error, guarding against accidental
// false positives.
const (
	delimOpen  = "{{"
	delimClose = "}}"
)

// Preprocess renders the templating pass for one file. name is used in
// error messages.
//
// If no marker lines are present the source is returned unmodified and
// the template engine is never invoked. Otherwise the whole file is
// rendered once with the boolean context derived from the variant
// (solution, selftest, slide). Marker lines consisting solely of
// template actions consume their own newline, so inactive branches
// leave no blank lines behind.
func Preprocess(name, src string, v variant.Variant) (string, error) {
	lines := strings.Split(src, "\n")

	hasMarker := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, MarkerPrefix) {
			hasMarker = true
			continue
		}
		if isCommentLine(trimmed) && (strings.Contains(trimmed, delimOpen) || strings.Contains(trimmed, delimClose)) {
			return "", fmt.Errorf("%s:%d: template delimiters outside a marker line: %w", name, i+1, annotation.ErrStrayTemplateSyntax)
		}
	}
	if !hasMarker {
		return src, nil
	}

	var b strings.Builder
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, MarkerPrefix) {
			content := strings.TrimPrefix(trimmed, MarkerPrefix)
			content = strings.TrimPrefix(content, " ")
			b.WriteString(content)
			if !isPureAction(content) && i < len(lines)-1 {
				b.WriteString("\n")
			}
			continue
		}
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	tmpl, err := template.New(name).Parse(b.String())
	if err != nil {
		return "", fmt.Errorf("%s: invalid template: %w", name, err)
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, v.Flags()); err != nil {
		return "", fmt.Errorf("%s: render template: %w", name, err)
	}
	return out.String(), nil
}

// isCommentLine reports whether a trimmed line opens a line comment.
// Only comment lines are checked for stray delimiters, so code that
// legitimately contains "{{" (e.g. template files used as course
// material) passes through.
func isCommentLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//")
}

// blockKeywords are the control actions that never emit output of
// their own.
var blockKeywords = map[string]bool{
	"if":    true,
	"else":  true,
	"end":   true,
	"range": true,
	"with":  true,
}

// isPureAction reports whether marker content is only control actions,
// e.g. "{{ if .solution }}". Such lines produce no output of their own
// and must not leave an empty line in the rendered text. A marker line
// that emits inline content, e.g. "{{ if .solution }}answer{{ end }}",
// keeps its newline: its output is a line of its own.
func isPureAction(content string) bool {
	rest := strings.TrimSpace(content)
	if rest == "" {
		return false
	}
	for rest != "" {
		if !strings.HasPrefix(rest, delimOpen) {
			return false
		}
		end := strings.Index(rest, delimClose)
		if end < 0 {
			return false
		}
		action := strings.TrimSpace(rest[len(delimOpen):end])
		action = strings.TrimSpace(strings.TrimPrefix(action, "-"))
		fields := strings.Fields(action)
		if len(fields) == 0 || !blockKeywords[fields[0]] {
			return false
		}
		rest = strings.TrimSpace(rest[end+len(delimClose):])
	}
	return true
}
