package workspace

import (
	"os"
	"path/filepath"
	"sort"

	clone "github.com/huandu/go-clone"

	"github.com/codescope/codescope/internal/errors"
	"github.com/codescope/codescope/internal/vfs"
)

type nodeState uint8

const (
	// stateInherit nodes take the state of their parent.
	stateInherit nodeState = iota
	stateIncluded
	stateExcluded
)

// node is one path segment of the tree. An explicit state applies to the node and everything nested beneath it,
// except where a descendant sets its own state. Explicit states always differ from the inherited one.
type node struct {
	Children map[string]*node
	State    nodeState
}

func (n *node) effective(parentIncluded bool) bool {
	switch n.State {
	case stateIncluded:
		return true
	case stateExcluded:
		return false
	default:
		return parentIncluded
	}
}

func (n *node) childNames() []string {
	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// PathTree is a hierarchical index of the paths included under a root directory.
//
// Paths are keyed by their slash-separated segments relative to the root. Including or excluding a directory
// applies to its whole subtree, so both operations cost time proportional to the depth of the path rather than
// the number of included paths. Directory contents are read from the filesystem only when AllPaths lists them.
//
// Read methods never mutate the tree, but mutation must not run concurrently with anything else. Give
// concurrent consumers their own Clone instead of sharing one tree.
type PathTree struct {
	fs      vfs.FS
	root    *node
	rootDir string
}

// NewPathTree returns an empty tree rooted at rootDir on the given filesystem.
func NewPathTree(fs vfs.FS, rootDir string) (*PathTree, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}

	return &PathTree{
		fs:      fs,
		root:    &node{},
		rootDir: absRoot,
	}, nil
}

// Root returns the absolute root directory of the tree.
func (tree *PathTree) Root() string {
	return tree.rootDir
}

// Include returns true if path is included, either directly or through an included ancestor directory. A directory
// is not included just because some path nested beneath it is. Paths that cannot be normalized are never included.
func (tree *PathTree) Include(path string) bool {
	rel, err := relativePath(tree.rootDir, path)
	if err != nil {
		return false
	}

	current := tree.root
	included := current.effective(false)

	for _, segment := range splitPath(rel) {
		child, ok := current.Children[segment]
		if !ok {
			return included
		}

		current = child
		included = current.effective(included)
	}

	return included
}

// IncludePaths marks every path, and for directories everything nested within them, as included.
// All paths are validated before the tree is changed.
func (tree *PathTree) IncludePaths(paths ...string) error {
	rels, err := tree.relativePaths(paths)
	if err != nil {
		return err
	}

	for _, rel := range rels {
		tree.mark(rel, stateIncluded)
	}

	return nil
}

// ExcludePaths removes every path, and for directories everything nested within them, from the included set.
// Paths included before the call are excluded even if they were added explicitly; a later IncludePaths call
// includes them again. All paths are validated before the tree is changed.
func (tree *PathTree) ExcludePaths(paths ...string) error {
	rels, err := tree.relativePaths(paths)
	if err != nil {
		return err
	}

	for _, rel := range rels {
		tree.mark(rel, stateExcluded)
	}

	return nil
}

// AllPaths returns every included path in segment-wise lexicographic order. Included directories are expanded
// into the files found beneath them. An included path that does not exist on the filesystem is returned as is, and
// nothing nested beneath it is listed separately.
//
// Entries that cannot be read are skipped. The returned error, if any, aggregates ExpansionError values for the
// skipped entries and is returned along with the paths that could be listed.
func (tree *PathTree) AllPaths() ([]string, error) {
	var (
		paths    []string
		warnings *errors.MultiError
	)

	tree.collect(rootPath, tree.root, false, &paths, &warnings)

	return paths, warnings.ErrorOrNil()
}

// Clone returns a deep copy of the tree. Changes to either tree never affect the other.
func (tree *PathTree) Clone() *PathTree {
	return &PathTree{
		fs:      tree.fs,
		root:    clone.Clone(tree.root).(*node),
		rootDir: tree.rootDir,
	}
}

func (tree *PathTree) relativePaths(paths []string) ([]string, error) {
	rels := make([]string, 0, len(paths))

	for _, path := range paths {
		rel, err := relativePath(tree.rootDir, path)
		if err != nil {
			return nil, err
		}

		rels = append(rels, rel)
	}

	return rels, nil
}

// mark sets the state of the node at rel, discards everything beneath it, then drops nodes on the path that no
// longer carry information.
func (tree *PathTree) mark(rel string, state nodeState) {
	segments := splitPath(rel)
	chain := make([]*node, 0, len(segments)+1)
	chain = append(chain, tree.root)

	current := tree.root
	parentIncluded := false

	for _, segment := range segments {
		parentIncluded = current.effective(parentIncluded)

		child, ok := current.Children[segment]
		if !ok {
			if current.Children == nil {
				current.Children = make(map[string]*node)
			}

			child = &node{}
			current.Children[segment] = child
		}

		chain = append(chain, child)
		current = child
	}

	current.Children = nil
	current.State = state

	if (state == stateIncluded) == parentIncluded {
		current.State = stateInherit
	}

	for i := len(chain) - 1; i > 0; i-- {
		if chain[i].State != stateInherit || len(chain[i].Children) > 0 {
			break
		}

		delete(chain[i-1].Children, segments[i-1])
	}
}

func (tree *PathTree) collect(rel string, current *node, parentIncluded bool, paths *[]string, warnings **errors.MultiError) {
	included := current.effective(parentIncluded)

	if !included {
		for _, name := range current.childNames() {
			tree.collect(joinPath(rel, name), current.Children[name], false, paths, warnings)
		}

		return
	}

	path := absPath(tree.rootDir, rel)

	info, err := vfs.Lstat(tree.fs, path)
	if err != nil {
		if !os.IsNotExist(err) {
			*warnings = (*warnings).Append(NewExpansionError(rel, err))

			return
		}

		if rel != rootPath {
			*paths = append(*paths, rel)

			return
		}

		for _, name := range current.childNames() {
			tree.collect(joinPath(rel, name), current.Children[name], true, paths, warnings)
		}

		return
	}

	if !info.IsDir() {
		*paths = append(*paths, rel)

		return
	}

	entries, err := vfs.ReadDir(tree.fs, path)
	if err != nil {
		*warnings = (*warnings).Append(NewExpansionError(rel, err))

		return
	}

	names := make([]string, 0, len(entries)+len(current.Children))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	for name := range current.Children {
		if !containsName(entries, name) {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	for _, name := range names {
		child, ok := current.Children[name]
		if !ok {
			child = &node{}
		}

		tree.collect(joinPath(rel, name), child, true, paths, warnings)
	}
}

func containsName(entries []os.FileInfo, name string) bool {
	for _, entry := range entries {
		if entry.Name() == name {
			return true
		}
	}

	return false
}
