// Package git shells out to git for file enumeration when packaging
// course code for distribution.
package git

import (
	"os/exec"
	"strings"
)

// Operations defines the interface for git operations.
// This allows mocking git commands in tests.
type Operations interface {
	// IsRepository reports whether projectPath is inside a git
	// worktree.
	IsRepository(projectPath string) bool

	// ListFiles returns the tracked files under subdir, as paths
	// relative to projectPath, in git's stable sort order.
	ListFiles(projectPath, subdir string) ([]string, error)

	// WorktreeRoot returns the git worktree root path.
	// Falls back to projectPath if not a git repository.
	WorktreeRoot(projectPath string) string
}

// gitOps is the real implementation using exec.Command.
type gitOps struct{}

// NewOperations returns the default git operations implementation.
func NewOperations() Operations {
	return &gitOps{}
}

func (g *gitOps) IsRepository(projectPath string) bool {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = projectPath
	output, err := cmd.Output()
	return err == nil && strings.TrimSpace(string(output)) == "true"
}

func (g *gitOps) ListFiles(projectPath, subdir string) ([]string, error) {
	args := []string{"ls-files"}
	if subdir != "" {
		args = append(args, subdir)
	}
	cmd := exec.Command("git", args...)
	cmd.Dir = projectPath
	output, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	return files, nil
}

func (g *gitOps) WorktreeRoot(projectPath string) string {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = projectPath
	output, err := cmd.Output()
	if err != nil || len(strings.TrimSpace(string(output))) == 0 {
		return projectPath
	}
	return strings.TrimSpace(string(output))
}
