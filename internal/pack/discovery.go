// Package pack assembles the distributable code archive: it enumerates
// course source files, projects each one for the requested output
// variant, and writes the result into a zip.
package pack

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery walks the code directory with glob include/ignore rules.
// Used as the fallback when the project is not a git repository.
type Discovery struct {
	rootDir        string
	includes       []compiledPattern
	ignorePatterns []compiledPattern
}

// NewDiscovery compiles the include and ignore patterns. Patterns match
// slash-separated paths relative to rootDir.
func NewDiscovery(rootDir string, includes, ignores []string) (*Discovery, error) {
	d := &Discovery{rootDir: rootDir}

	for _, pattern := range includes {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.includes = append(d.includes, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignores {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.ignorePatterns = append(d.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return d, nil
}

// Discover walks the tree and returns matching files as sorted paths
// relative to the root, so archive layout is reproducible.
func (d *Discovery) Discover() ([]string, error) {
	var files []string

	err := filepath.Walk(d.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(d.rootDir, path)
		if err != nil {
			return err
		}

		// Normalize path separators for glob matching.
		relPath = filepath.ToSlash(relPath)

		if d.matchesAny(relPath, d.ignorePatterns) {
			return nil
		}
		if d.matchesAny(relPath, d.includes) {
			files = append(files, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (d *Discovery) matchesAny(path string, patterns []compiledPattern) bool {
	for _, p := range patterns {
		if p.glob.Match(path) {
			return true
		}
	}
	return false
}
