// Package workspace tracks which paths under a project root are handed to analysis engines.
//
// A Workspace wraps a PathTree. Callers add explicitly requested paths, remove exclude patterns that are expanded
// against the filesystem, and then query the result with Include or Paths. Clone gives each concurrent consumer
// an independent copy, so a workspace is built once and then distributed instead of being shared.
package workspace

import (
	"github.com/codescope/codescope/internal/errors"
	"github.com/codescope/codescope/internal/vfs"
	"github.com/codescope/codescope/pkg/log"
)

// Workspace is the set of paths eligible for analysis.
type Workspace struct {
	logger log.Logger
	tree   *PathTree
}

// New returns a workspace that takes ownership of tree. A nil tree is replaced by an empty tree rooted at the
// current working directory of the real filesystem.
func New(logger log.Logger, tree *PathTree) (*Workspace, error) {
	if tree == nil {
		var err error

		if tree, err = NewPathTree(vfs.NewOSFS(), rootPath); err != nil {
			return nil, err
		}
	}

	return &Workspace{
		logger: logger,
		tree:   tree,
	}, nil
}

// Clone returns a workspace wrapping an independent copy of the tree.
func (ws *Workspace) Clone() *Workspace {
	return &Workspace{
		logger: ws.logger,
		tree:   ws.tree.Clone(),
	}
}

// Root returns the absolute root directory of the workspace.
func (ws *Workspace) Root() string {
	return ws.tree.Root()
}

// Include returns true if path is part of the workspace.
func (ws *Workspace) Include(path string) bool {
	return ws.tree.Include(path)
}

// Paths returns every included path in lexical order. Entries that cannot be read are logged and skipped.
func (ws *Workspace) Paths() []string {
	paths, err := ws.tree.AllPaths()
	if err != nil {
		for _, warning := range errors.UnwrapMultiErrors(err) {
			ws.logger.Warnf("Listing workspace paths: %v", warning)
		}
	}

	return paths
}

// Add includes the given paths. Empty input leaves the workspace unchanged.
func (ws *Workspace) Add(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	return ws.tree.IncludePaths(paths...)
}

// Remove expands every pattern and excludes the matched paths. Patterns are applied independently: an invalid
// pattern does not stop the others, and all invalid patterns are returned together once the rest are applied.
// Entries skipped during expansion are logged as warnings and never cause an error.
func (ws *Workspace) Remove(patterns ...string) error {
	var errs *errors.MultiError

	for _, pattern := range patterns {
		if err := ws.remove(pattern); err != nil {
			errs = errs.Append(err)
		}
	}

	return errs.ErrorOrNil()
}

func (ws *Workspace) remove(pattern string) error {
	expansion, err := NewExclusion(ws.tree.fs, ws.tree.rootDir, pattern).Expand()
	if err != nil {
		return err
	}

	logger := ws.logger.WithField(log.FieldKeyPattern, pattern)

	for _, warning := range expansion.Warnings {
		logger.Warnf("Expanding exclude pattern: %v", warning)
	}

	logger.Debugf("Excluding %d paths", len(expansion.Paths))

	return ws.tree.ExcludePaths(expansion.Paths...)
}
