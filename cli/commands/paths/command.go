// Package paths implements the `paths` command, which prints the files that would be analyzed.
package paths

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/codescope/codescope/cli/commands/common"
	"github.com/codescope/codescope/cli/format"
	"github.com/codescope/codescope/options"
)

const CommandName = "paths"

func NewCommand(opts *options.Options) *cli.Command {
	return &cli.Command{
		Name:   CommandName,
		Usage:  "Print the paths of the workspace after applying include paths and exclude patterns.",
		Action: func(ctx *cli.Context) error { return Run(ctx.Context, opts) },
	}
}

func Run(_ context.Context, opts *options.Options) error {
	formatter, err := format.Resolve(opts.Format)
	if err != nil {
		return err
	}

	ws, _, err := common.NewWorkspace(opts)
	if err != nil {
		return err
	}

	return formatter.Paths(opts.Writer, ws.Paths())
}
