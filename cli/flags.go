package cli

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/codescope/codescope/cli/format"
	"github.com/codescope/codescope/options"
	"github.com/codescope/codescope/pkg/log"
)

const (
	FlagNameWorkingDir = "working-dir"
	FlagNameConfig     = "config"
	FlagNameLogLevel   = "log-level"
	FlagNameFormat     = "format"
	FlagNameInclude    = "include"
	FlagNameExclude    = "exclude"
	FlagNameOutputDir  = "output-dir"

	EnvNameWorkingDir = "CODE_PATH"
	EnvNameLogLevel   = "CODESCOPE_LOG_LEVEL"
)

// NewGlobalFlags returns the flags shared by all commands.
func NewGlobalFlags(opts *options.Options) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        FlagNameWorkingDir,
			EnvVars:     []string{EnvNameWorkingDir},
			Usage:       "The project directory to analyze. Defaults to the current directory.",
			Destination: &opts.WorkingDir,
		},
		&cli.StringFlag{
			Name:        FlagNameConfig,
			Usage:       "Path to the configuration file. Defaults to .codescope.yml in the working directory.",
			Destination: &opts.ConfigPath,
		},
		&cli.StringFlag{
			Name:    FlagNameLogLevel,
			EnvVars: []string{EnvNameLogLevel},
			Usage:   "Sets the logging level, one of: " + log.AllLevels.String() + ".",
			Value:   opts.LogLevel.String(),
		},
		&cli.StringFlag{
			Name:        FlagNameFormat,
			Aliases:     []string{"f"},
			Usage:       "Output format, one of: " + strings.Join(format.Names(), ", ") + ".",
			Value:       opts.Format,
			Destination: &opts.Format,
		},
		&cli.StringSliceFlag{
			Name:  FlagNameInclude,
			Usage: "A path to include in the workspace, replaces the include_paths of the configuration file. Can be given multiple times.",
		},
		&cli.StringSliceFlag{
			Name:  FlagNameExclude,
			Usage: "A pattern to exclude from the workspace, in addition to the exclude_paths of the configuration file. Can be given multiple times.",
		},
		&cli.StringFlag{
			Name:        FlagNameOutputDir,
			Usage:       "The directory engine configuration files are written to.",
			Value:       opts.OutputDir,
			Destination: &opts.OutputDir,
		},
	}
}
