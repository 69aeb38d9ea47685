package git

// MockGitOps is a mock implementation of Operations for testing.
type MockGitOps struct {
	Repository bool
	Files      []string
	Root       string
	ListError  error
}

// NewMockGitOps creates a mock with sensible defaults.
func NewMockGitOps() *MockGitOps {
	return &MockGitOps{
		Repository: true,
		Files:      nil,
		Root:       "/tmp/test-repo",
	}
}

func (m *MockGitOps) IsRepository(projectPath string) bool {
	return m.Repository
}

func (m *MockGitOps) ListFiles(projectPath, subdir string) ([]string, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Files, nil
}

func (m *MockGitOps) WorktreeRoot(projectPath string) string {
	if m.Root != "" {
		return m.Root
	}
	return projectPath
}
