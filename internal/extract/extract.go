// Package extract is the projection driver: it turns one source file,
// one requested snippet name and one output variant into the ordered
// visible code lines plus the derived typesetting options.
//
// The driver moves through fixed stages: load, templating, per-line
// classification, registry building, projection. A failure in any stage
// aborts the whole projection; no partial output is emitted.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coursecraft/snipmint/internal/annotation"
	"github.com/coursecraft/snipmint/internal/render"
	"github.com/coursecraft/snipmint/internal/snippet"
	"github.com/coursecraft/snipmint/internal/transform"
	"github.com/coursecraft/snipmint/internal/variant"
)

// Params describes one projection request.
type Params struct {
	// File is the source file path.
	File string
	// Snippet is the requested snippet name. Empty means the whole
	// file: no boundary options, no inline transforms, annotations
	// stripped.
	Snippet string
	// Variant selects template branches and exercise-marker
	// resolution.
	Variant variant.Variant
	// TemplateExts lists the file extensions that opt in to the
	// templating pass (with leading dot, e.g. ".py").
	TemplateExts []string
}

// Projection is the result of one extraction request. Options and
// Lines are byte-stable: identical input yields identical output.
type Projection struct {
	File    string
	Snippet string
	Variant variant.Variant
	// Options is the ordered typesetting option list, e.g.
	// ["firstline=3", "lastline=9", "highlightlines={5,7-8}"].
	Options []string
	// Lines is the full visible code text of the rendered file, one
	// entry per line, annotations stripped. The typesetter applies
	// the firstline/lastline window itself.
	Lines []string
}

// Project reads and projects one file.
func Project(p Params) (*Projection, error) {
	data, err := os.ReadFile(p.File)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", p.File, err, annotation.ErrUnreadableSource)
	}
	return ProjectSource(string(data), p)
}

// ProjectSource projects in-memory source text. p.File is used for
// templating opt-in and error messages only.
func ProjectSource(src string, p Params) (*Projection, error) {
	// Templating runs before classification because it can change
	// line counts; every line number below refers to rendered text.
	if templatingEnabled(p.File, p.TemplateExts) {
		rendered, err := render.Preprocess(p.File, src, p.Variant)
		if err != nil {
			return nil, err
		}
		src = rendered
	}

	lines, err := classify(p.File, src)
	if err != nil {
		return nil, err
	}

	registry, err := snippet.Build(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.File, err)
	}

	var opts []string
	if p.Snippet != "" {
		opts, err = snippet.Options(p.Snippet, registry.Entries(p.Snippet))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.File, err)
		}
	}

	text, err := renderLines(p, lines, registry)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.File, err)
	}

	return &Projection{
		File:    p.File,
		Snippet: p.Snippet,
		Variant: p.Variant,
		Options: opts,
		Lines:   text,
	}, nil
}

// Info describes one snippet defined in a file: its name and boundary
// line numbers.
type Info struct {
	Name        string
	First, Last int
	Complete    bool
}

// List classifies a file and reports every snippet it defines, in order
// of first appearance. Incomplete snippets are flagged rather than
// treated as an error so authors can inspect work in progress.
func List(p Params) ([]Info, error) {
	data, err := os.ReadFile(p.File)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", p.File, err, annotation.ErrUnreadableSource)
	}
	src := string(data)

	if templatingEnabled(p.File, p.TemplateExts) {
		src, err = render.Preprocess(p.File, src, p.Variant)
		if err != nil {
			return nil, err
		}
	}

	lines, err := classify(p.File, src)
	if err != nil {
		return nil, err
	}
	registry, err := snippet.Build(lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.File, err)
	}

	infos := make([]Info, 0, len(registry.Names()))
	for _, name := range registry.Names() {
		first, last, ok := snippet.Boundaries(registry.Entries(name))
		infos = append(infos, Info{Name: name, First: first, Last: last, Complete: ok})
	}
	return infos, nil
}

func classify(file, src string) ([]annotation.ParsedLine, error) {
	raw := strings.Split(src, "\n")
	// A trailing newline yields an empty final element; the original
	// file had no such line.
	if n := len(raw); n > 0 && raw[n-1] == "" {
		raw = raw[:n-1]
	}

	lines := make([]annotation.ParsedLine, 0, len(raw))
	for i, text := range raw {
		// CRLF sources leave a carriage return on every element.
		text = strings.TrimSuffix(text, "\r")
		parsed, err := annotation.ParseLine(i+1, text)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		lines = append(lines, parsed)
	}
	return lines, nil
}

// renderLines produces the visible text for every line: annotation
// comments stripped, exercise markers resolved per the variant, and
// inline transforms applied for the requested snippet.
func renderLines(p Params, lines []annotation.ParsedLine, registry *snippet.Registry) ([]string, error) {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		text := line.Code

		if line.Kind == annotation.LineExercise && p.Variant.RevealsSolutions() {
			text = annotation.ResolveExercise(text)
		}

		if p.Snippet != "" {
			entries := registry.InlineEntries(p.Snippet, line.Number)
			if len(entries) > 0 {
				var err error
				text, err = transform.Apply(line.Number, text, entries)
				if err != nil {
					return nil, err
				}
			}
		}

		out = append(out, text)
	}
	return out, nil
}

func templatingEnabled(file string, exts []string) bool {
	ext := filepath.Ext(file)
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
