// Package engines implements the `engines` command, which writes the configuration file of every enabled engine.
package engines

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/codescope/codescope/cli/commands/common"
	"github.com/codescope/codescope/cli/format"
	analysis "github.com/codescope/codescope/internal/engines"
	"github.com/codescope/codescope/internal/filesystem"
	"github.com/codescope/codescope/options"
)

const CommandName = "engines"

func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:   CommandName,
		Usage:  "Write a configuration file for every enabled engine and print where it was written.",
		Action: func(ctx *cli.Context) error { return Run(ctx.Context, opts) },
	}
}

func Run(ctx context.Context, opts *options.Options) error {
	formatter, err := format.Resolve(opts.Format)
	if err != nil {
		return err
	}

	ws, cfg, err := common.NewWorkspace(opts)
	if err != nil {
		return err
	}

	fsys, err := filesystem.New(opts.WorkingDir)
	if err != nil {
		return err
	}

	preparer := &analysis.Preparer{
		Registry:   analysis.DefaultRegistry(),
		Filesystem: fsys,
		OutputFS:   opts.FS,
		OutputDir:  opts.OutputDir,
	}

	files, err := preparer.Prepare(ctx, opts.Logger, ws, cfg)
	if err != nil {
		return err
	}

	return formatter.ConfigFiles(opts.Writer, files)
}
