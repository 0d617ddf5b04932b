package workspace

import (
	"path/filepath"
	"strings"
)

// rootPath is the normalized form of the workspace root itself.
const rootPath = "."

// relativePath converts path into the normalized, slash-separated form used as a tree key: relative to root,
// cleaned of `.`/`..` segments and trailing separators. Absolute paths are accepted when they lie inside root.
func relativePath(root, path string) (string, error) {
	if path == "" {
		return "", NewInvalidPathError(path, "path is empty")
	}

	if strings.ContainsRune(path, 0) {
		return "", NewInvalidPathError(path, "path contains a null byte")
	}

	absPath := filepath.FromSlash(path)
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(root, absPath)
	}

	rel, err := filepath.Rel(root, filepath.Clean(absPath))
	if err != nil {
		return "", NewInvalidPathError(path, err.Error())
	}

	rel = filepath.ToSlash(rel)

	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", NewInvalidPathError(path, "path is outside of the workspace root "+root)
	}

	return rel, nil
}

// splitPath returns the segments of a normalized relative path. The root has no segments.
func splitPath(rel string) []string {
	if rel == rootPath {
		return nil
	}

	return strings.Split(rel, "/")
}

// joinPath joins a normalized relative parent path and a child segment.
func joinPath(parent, name string) string {
	if parent == rootPath {
		return name
	}

	return parent + "/" + name
}

// absPath returns the filesystem path of a normalized relative path.
func absPath(root, rel string) string {
	if rel == rootPath {
		return root
	}

	return filepath.Join(root, filepath.FromSlash(rel))
}
