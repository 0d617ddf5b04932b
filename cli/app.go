// Package cli builds the codescope command line application.
package cli

import (
	"github.com/urfave/cli/v2"

	"github.com/codescope/codescope/cli/commands/engines"
	"github.com/codescope/codescope/cli/commands/paths"
	"github.com/codescope/codescope/options"
	"github.com/codescope/codescope/pkg/log"
)

// Version is set at build time.
var Version = "dev"

// NewApp creates the codescope CLI app.
func NewApp(opts *options.Options) *cli.App {
	return &cli.App{
		Name:  "codescope",
		Usage: "Select the files of a project that analysis engines should look at.",
		Description: `The workspace starts with the include paths of the command line or of the
configuration file, or with the whole project if there are none. Exclude patterns
are then expanded against the project directory and removed from it.`,
		UsageText: "codescope [global options] <command>",
		Version:   Version,
		Writer:    opts.Writer,
		ErrWriter: opts.ErrWriter,
		Flags:     NewGlobalFlags(opts),
		Commands: []*cli.Command{
			paths.NewCommand(opts),
			engines.NewCommand(opts),
		},
		Before: func(ctx *cli.Context) error {
			return initialSetup(ctx, opts)
		},
		// Errors are reported by the caller.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func initialSetup(ctx *cli.Context, opts *options.Options) error {
	if err := opts.Logger.SetLevel(ctx.String(FlagNameLogLevel)); err != nil {
		return err
	}

	opts.LogLevel = opts.Logger.Level()
	opts.IncludePaths = ctx.StringSlice(FlagNameInclude)
	opts.ExcludePaths = ctx.StringSlice(FlagNameExclude)

	if err := opts.Normalize(); err != nil {
		return err
	}

	ctx.Context = log.ContextWithLogger(ctx.Context, opts.Logger)

	return nil
}
