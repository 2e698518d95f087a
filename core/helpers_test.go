package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestCore returns a core whose source directory holds files, given as
// paths relative to the source directory.
func newTestCore(t *testing.T, files map[string]string) *Core {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "content", "posts"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "content", "projects"), 0o755))

	for name, content := range files {
		filename := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filename), 0o755))
		require.NoError(t, os.WriteFile(filename, []byte(content), 0o644))
	}

	return NewCore(&Config{
		SourceDirectory:   dir,
		PostsDirectory:    "content/posts",
		ProjectsDirectory: "content/projects",
	})
}
