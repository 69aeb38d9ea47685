package pack

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/coursecraft/snipmint/internal/extract"
	"github.com/coursecraft/snipmint/internal/git"
	"github.com/coursecraft/snipmint/internal/variant"
)

// ProgressFunc is called after each file is added to the archive.
type ProgressFunc func(done, total int, file string)

// Packager builds a distribution archive of the course code with
// annotations stripped and templating resolved for one variant.
type Packager struct {
	// Root is the project root (the directory holding the code
	// subdirectory, typically the git worktree root).
	Root string
	// CodeDir is the subdirectory packaged for distribution.
	CodeDir string
	// Variant selects template branches and exercise-marker
	// resolution for the packaged files.
	Variant variant.Variant
	// TemplateExts lists the extensions preprocessed for templating.
	TemplateExts []string
	// Include and Ignore are glob patterns for the non-git fallback
	// enumeration, matched against paths relative to CodeDir.
	Include []string
	Ignore  []string
	// Git enumerates tracked files. Defaults to the real git CLI.
	Git git.Operations
	// Progress, when set, is called once per packaged file.
	Progress ProgressFunc
}

// Package enumerates the code files, projects each for the configured
// variant, and writes the archive to outPath. outPath must end in
// ".zip". The archive is written to a temp file and renamed into place
// so an interrupted run never leaves a half-written archive behind.
func (p *Packager) Package(outPath string) error {
	if filepath.Ext(outPath) != ".zip" {
		return fmt.Errorf("output filename %q must have .zip extension", outPath)
	}

	files, err := p.enumerate()
	if err != nil {
		return fmt.Errorf("enumerate code files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no code files found under %s", filepath.Join(p.Root, p.CodeDir))
	}

	tmpPath := outPath + "." + uuid.NewString() + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	// Removing the temp file is a no-op after the rename succeeds.
	defer os.Remove(tmpPath)
	defer f.Close()

	zw := zip.NewWriter(f)
	for i, rel := range files {
		if err := p.addFile(zw, rel); err != nil {
			zw.Close()
			return err
		}
		if p.Progress != nil {
			p.Progress(i+1, len(files), rel)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return os.Rename(tmpPath, outPath)
}

// enumerate returns the files to package as paths relative to Root,
// including the CodeDir prefix. Tracked files via git when available,
// glob discovery otherwise.
func (p *Packager) enumerate() ([]string, error) {
	ops := p.Git
	if ops == nil {
		ops = git.NewOperations()
	}

	if ops.IsRepository(p.Root) {
		return ops.ListFiles(p.Root, p.CodeDir)
	}

	d, err := NewDiscovery(filepath.Join(p.Root, p.CodeDir), p.Include, p.Ignore)
	if err != nil {
		return nil, err
	}
	found, err := d.Discover()
	if err != nil {
		return nil, err
	}

	files := make([]string, len(found))
	for i, rel := range found {
		files[i] = filepath.ToSlash(filepath.Join(p.CodeDir, rel))
	}
	return files, nil
}

func (p *Packager) addFile(zw *zip.Writer, rel string) error {
	proj, err := extract.Project(extract.Params{
		File:         filepath.Join(p.Root, rel),
		Variant:      p.Variant,
		TemplateExts: p.TemplateExts,
	})
	if err != nil {
		return err
	}

	w, err := zw.Create(rel)
	if err != nil {
		return fmt.Errorf("%s: add to archive: %w", rel, err)
	}
	if _, err := w.Write([]byte(strings.Join(proj.Lines, "\n") + "\n")); err != nil {
		return fmt.Errorf("%s: write to archive: %w", rel, err)
	}
	return nil
}
