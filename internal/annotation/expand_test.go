package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandName(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{
			name:    "no brackets expands to itself",
			pattern: "intro",
			want:    []string{"intro"},
		},
		{
			name:    "bracketed run in the middle",
			pattern: "ex-[12]-a",
			want:    []string{"ex-1-a", "ex-2-a"},
		},
		{
			name:    "bracketed run at the end",
			pattern: "code-changes-[345]",
			want:    []string{"code-changes-3", "code-changes-4", "code-changes-5"},
		},
		{
			name:    "bracketed run at the start",
			pattern: "[ab]-suffix",
			want:    []string{"a-suffix", "b-suffix"},
		},
		{
			name:    "letters expand per character",
			pattern: "name-[ab]-suffix",
			want:    []string{"name-a-suffix", "name-b-suffix"},
		},
		{
			name:    "unclosed bracket is a literal name",
			pattern: "odd[name",
			want:    []string{"odd[name"},
		},
		{
			name:    "empty bracket yields nothing",
			pattern: "a[]b",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandName(tt.pattern))
		})
	}
}
