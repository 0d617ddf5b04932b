// Package options provides the set of options that configure a codescope run.
package options

import (
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"

	"github.com/codescope/codescope/internal/errors"
	"github.com/codescope/codescope/internal/vfs"
	"github.com/codescope/codescope/pkg/log"
)

const (
	// DefaultFormat is the name of the formatter used when none is given.
	DefaultFormat = "text"

	defaultOutputDirName = "codescope-config"

	defaultLogLevel = log.InfoLevel
)

// Options represents the configuration of a single run.
type Options struct {
	// Writer receives the command output, ErrWriter receives the log.
	Writer    io.Writer
	ErrWriter io.Writer

	Logger log.Logger

	// FS is used to read the configuration file and to write engine configuration files.
	FS vfs.FS

	// WorkingDir is the root of the analyzed project.
	WorkingDir string

	// ConfigPath is an explicitly given configuration file, empty to look up the default one in WorkingDir.
	ConfigPath string

	// IncludePaths replace the `include_paths` of the configuration file when not empty.
	IncludePaths []string

	// ExcludePaths are removed from the workspace in addition to the `exclude_paths` of the configuration file.
	ExcludePaths []string

	// Format is the name of the output formatter.
	Format string

	// OutputDir is the directory engine configuration files are written to.
	OutputDir string

	LogLevel log.Level
}

// NewOptions returns options with the default values.
func NewOptions() *Options {
	return &Options{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Logger:    log.New(log.WithLevel(defaultLogLevel), log.WithOutput(os.Stderr), log.WithFormatter(newLogFormatter(os.Stderr))),
		FS:        vfs.NewOSFS(),
		Format:    DefaultFormat,
		OutputDir: filepath.Join(os.TempDir(), defaultOutputDirName),
		LogLevel:  defaultLogLevel,
	}
}

// Normalize resolves the user-supplied directories to absolute paths, expanding a leading `~`. An empty working
// directory is replaced by the current one.
func (opts *Options) Normalize() error {
	if opts.WorkingDir == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return errors.New(err)
		}

		opts.WorkingDir = currentDir
	}

	var err error

	if opts.WorkingDir, err = absPath(opts.WorkingDir, ""); err != nil {
		return err
	}

	if opts.OutputDir, err = absPath(opts.OutputDir, opts.WorkingDir); err != nil {
		return err
	}

	if opts.ConfigPath != "" {
		if opts.ConfigPath, err = absPath(opts.ConfigPath, opts.WorkingDir); err != nil {
			return err
		}
	}

	return nil
}

// absPath expands a leading `~` in path and makes it absolute, relative to base if given or the current directory
// otherwise.
func absPath(path, base string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.New(err)
	}

	if base != "" && !filepath.IsAbs(expanded) {
		expanded = filepath.Join(base, expanded)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", errors.New(err)
	}

	return abs, nil
}

// newLogFormatter returns a text formatter that only colors the output when it is written to a terminal.
func newLogFormatter(output *os.File) logrus.Formatter {
	terminal := isatty.IsTerminal(output.Fd()) || isatty.IsCygwinTerminal(output.Fd())

	return &logrus.TextFormatter{
		DisableColors:    !terminal,
		DisableTimestamp: true,
		PadLevelText:     terminal,
	}
}
