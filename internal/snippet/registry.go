// Package snippet maintains the per-file snippet registry and derives
// typesetting options from each snippet's token stream.
package snippet

import (
	"fmt"

	"github.com/coursecraft/snipmint/internal/annotation"
)

// Entry is one registered annotation: a token at a line number with its
// arguments, bound to a concrete snippet name.
type Entry struct {
	Line  int
	Token annotation.Token
	Args  []string
}

// Registry maps snippet names to their ordered token entries. Entries
// for a name are monotonically increasing in line number (file order).
// Built once per file per output variant; nothing outlives one
// extraction request.
type Registry struct {
	entries map[string][]Entry
	names   []string // insertion order
}

// Build constructs the registry from classified lines, expanding
// bracketed snippet-name patterns so one directive can register against
// several snippets.
func Build(lines []annotation.ParsedLine) (*Registry, error) {
	r := &Registry{entries: make(map[string][]Entry)}

	for _, line := range lines {
		if line.Kind != annotation.LineAnnotated {
			continue
		}
		for _, d := range line.Directives {
			for _, name := range annotation.ExpandName(d.Pattern) {
				if err := r.add(name, Entry{Line: line.Number, Token: d.Token, Args: d.Args}); err != nil {
					return nil, err
				}
			}
		}
	}

	return r, nil
}

func (r *Registry) add(name string, e Entry) error {
	existing := r.entries[name]
	if len(existing) == 0 {
		r.names = append(r.names, name)
	} else if last := existing[len(existing)-1]; e.Line < last.Line {
		// Cannot happen for registries built from a top-to-bottom line
		// stream; guards direct API use.
		return fmt.Errorf("snippet %q: entry at line %d after line %d breaks file order", name, e.Line, last.Line)
	}
	r.entries[name] = append(existing, e)
	return nil
}

// Entries returns the ordered token entries for a snippet name. The
// returned slice is nil for unknown names.
func (r *Registry) Entries(name string) []Entry {
	return r.entries[name]
}

// Names returns every registered snippet name in file order of first
// appearance.
func (r *Registry) Names() []string {
	return r.names
}

// InlineEntries returns the inline-category entries for a snippet at
// one exact line number, in registration order.
func (r *Registry) InlineEntries(name string, line int) []Entry {
	var out []Entry
	for _, e := range r.entries[name] {
		if e.Line == line && e.Token.Category() == annotation.CategoryInline {
			out = append(out, e)
		}
	}
	return out
}
