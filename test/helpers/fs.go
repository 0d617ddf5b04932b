// Package helpers contains shared test fixtures.
package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codescope/codescope/internal/vfs"
	"github.com/stretchr/testify/require"
)

// ProjectRoot is the root directory of projects created with CreateMemProject.
const ProjectRoot = "/project"

// CreateMemProject returns an in-memory filesystem with an empty file at every given path, relative to ProjectRoot.
// Paths ending with a slash are created as empty directories.
func CreateMemProject(t *testing.T, paths ...string) vfs.FS {
	t.Helper()

	fs := vfs.NewMemMapFS()
	require.NoError(t, fs.MkdirAll(ProjectRoot, os.ModePerm))

	createFiles(t, fs, ProjectRoot, paths)

	return fs
}

// CreateTmpProject creates the given files under a new temporary directory on the real filesystem and returns it.
func CreateTmpProject(t *testing.T, paths ...string) string {
	t.Helper()

	root := t.TempDir()

	createFiles(t, vfs.NewOSFS(), root, paths)

	return root
}

func createFiles(t *testing.T, fs vfs.FS, root string, paths []string) {
	t.Helper()

	for _, path := range paths {
		absPath := filepath.Join(root, filepath.FromSlash(path))

		if path[len(path)-1] == '/' {
			require.NoError(t, fs.MkdirAll(absPath, os.ModePerm))

			continue
		}

		require.NoError(t, fs.MkdirAll(filepath.Dir(absPath), os.ModePerm))
		require.NoError(t, vfs.WriteFile(fs, absPath, []byte("# "+path+"\n"), 0644))
	}
}
