package pack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscovery_MatchesIncludes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "lesson1/server.py", "x = 1\n")
	writeFile(t, dir, "lesson1/notes.md", "notes\n")
	writeFile(t, dir, "lesson2/client.py", "y = 2\n")

	d, err := NewDiscovery(dir, []string{"**/*.py"}, nil)
	require.NoError(t, err)

	files, err := d.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"lesson1/server.py", "lesson2/client.py"}, files)
}

func TestDiscovery_IgnoreWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "server.py", "x = 1\n")
	writeFile(t, dir, "__pycache__/server.pyc", "")

	d, err := NewDiscovery(dir, []string{"**/*.py", "**/*.pyc"}, []string{"__pycache__/**"})
	require.NoError(t, err)

	files, err := d.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"server.py"}, files)
}

func TestDiscovery_SortedOutput(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.py", "")
	writeFile(t, dir, "a.py", "")
	writeFile(t, dir, "c.py", "")

	d, err := NewDiscovery(dir, []string{"**/*.py", "*.py"}, nil)
	require.NoError(t, err)

	files, err := d.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.py", "b.py", "c.py"}, files)
}

func TestNewDiscovery_BadPattern(t *testing.T) {
	_, err := NewDiscovery(t.TempDir(), []string{"[unclosed"}, nil)
	require.Error(t, err)
}
