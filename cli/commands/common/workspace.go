// Package common contains the steps shared by the codescope commands.
package common

import (
	"github.com/codescope/codescope/internal/config"
	"github.com/codescope/codescope/internal/workspace"
	"github.com/codescope/codescope/options"
)

// NewWorkspace loads the project configuration and builds the workspace it describes.
//
// Include paths given on the command line replace the `include_paths` of the configuration file, and the root is
// included when neither gives any. Exclude patterns given on the command line are applied after the `exclude_paths`
// of the configuration file. The returned configuration reflects both.
func NewWorkspace(opts *options.Options) (*workspace.Workspace, *config.Config, error) {
	cfg, err := config.Load(opts.Logger, opts.FS, opts.WorkingDir, opts.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	if len(opts.IncludePaths) > 0 {
		cfg.IncludePaths = opts.IncludePaths
	}

	if len(cfg.IncludePaths) == 0 {
		cfg.IncludePaths = config.Patterns{"."}
	}

	cfg.ExcludePaths = append(cfg.ExcludePaths, opts.ExcludePaths...)

	tree, err := workspace.NewPathTree(opts.FS, opts.WorkingDir)
	if err != nil {
		return nil, nil, err
	}

	ws, err := workspace.New(opts.Logger, tree)
	if err != nil {
		return nil, nil, err
	}

	if err := ws.Add(cfg.IncludePaths...); err != nil {
		return nil, nil, err
	}

	if err := ws.Remove(cfg.ExcludePaths...); err != nil {
		return nil, nil, err
	}

	opts.Logger.Debugf("Workspace %s: included %v, excluded %v", ws.Root(), cfg.IncludePaths, cfg.ExcludePaths)

	return ws, cfg, nil
}
