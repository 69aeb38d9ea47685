package cli

import (
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the watch command:
// - Only events for the watched file arm a re-projection
// - Write, create and rename count as content changes; chmod does not

func TestShouldReproject(t *testing.T) {
	target, err := filepath.Abs(filepath.Join("course", "lesson.py"))
	require.NoError(t, err)
	sibling, err := filepath.Abs(filepath.Join("course", "other.py"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "write to watched file", event: fsnotify.Event{Name: target, Op: fsnotify.Write}, want: true},
		{name: "create replaces watched file", event: fsnotify.Event{Name: target, Op: fsnotify.Create}, want: true},
		{name: "rename of watched file", event: fsnotify.Event{Name: target, Op: fsnotify.Rename}, want: true},
		{name: "chmod is not a content change", event: fsnotify.Event{Name: target, Op: fsnotify.Chmod}, want: false},
		{name: "remove is not a content change", event: fsnotify.Event{Name: target, Op: fsnotify.Remove}, want: false},
		{name: "write to a sibling file", event: fsnotify.Event{Name: sibling, Op: fsnotify.Write}, want: false},
		{name: "relative event path resolves to target", event: fsnotify.Event{Name: filepath.Join("course", "lesson.py"), Op: fsnotify.Write}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldReproject(tt.event, target))
		})
	}
}
