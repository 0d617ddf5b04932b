// Package filesystem gives engines read access to the analyzed project on the real filesystem.
package filesystem

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/mattn/go-zglob"

	"github.com/codescope/codescope/internal/errors"
	"github.com/codescope/codescope/internal/vfs"
)

// Filesystem is the project directory as seen by engines.
type Filesystem struct {
	fs   vfs.FS
	root string
}

// New returns the filesystem rooted at root.
func New(root string) (*Filesystem, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.New(err)
	}

	return &Filesystem{
		fs:   vfs.NewOSFS(),
		root: root,
	}, nil
}

// Root returns the absolute project directory.
func (fsys *Filesystem) Root() string {
	return fsys.root
}

// Exist returns true if path, relative to the root, exists.
func (fsys *Filesystem) Exist(path string) bool {
	exists, err := vfs.FileExists(fsys.fs, fsys.abs(path))

	return err == nil && exists
}

// ReadPath returns the contents of the file at path, relative to the root.
func (fsys *Filesystem) ReadPath(path string) ([]byte, error) {
	data, err := vfs.ReadFile(fsys.fs, fsys.abs(path))
	if err != nil {
		return nil, errors.New(err)
	}

	return data, nil
}

// FilesMatching returns the regular files matching any of globs, relative to the root, sorted and without
// duplicates. `**` matches any number of directories, and a matched directory contributes every file beneath it.
func (fsys *Filesystem) FilesMatching(globs ...string) ([]string, error) {
	var files []string

	for _, glob := range globs {
		// zglob normalizes paths to "/"
		matches, err := zglob.Glob(filepath.ToSlash(fsys.abs(glob)))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return nil, errors.WithStackTraceAndPrefix(err, "matching %q", glob)
		}

		for _, match := range matches {
			matched, err := fsys.regularFiles(filepath.FromSlash(match))
			if err != nil {
				return nil, err
			}

			files = append(files, matched...)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

// regularFiles returns path if it is a regular file, or every regular file beneath it if it is a directory.
func (fsys *Filesystem) regularFiles(path string) ([]string, error) {
	var files []string

	err := vfs.Walk(fsys.fs, path, func(path string, info os.FileInfo, err error) error {
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(fsys.root, path)
		if err != nil {
			return err
		}

		files = append(files, filepath.ToSlash(rel))

		return nil
	})
	if err != nil {
		return nil, errors.New(err)
	}

	return files, nil
}

func (fsys *Filesystem) abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(fsys.root, filepath.FromSlash(path))
}
