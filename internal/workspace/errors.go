package workspace

import (
	"fmt"

	"github.com/codescope/codescope/internal/errors"
)

// InvalidPathError is returned when a path is empty, malformed, or resolves outside the workspace root.
type InvalidPathError struct {
	Path   string
	Reason string
}

func (err InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", err.Path, err.Reason)
}

// NewInvalidPathError creates a new InvalidPathError with a stack trace.
func NewInvalidPathError(path, reason string) error {
	return errors.New(InvalidPathError{Path: path, Reason: reason})
}

// PatternError is returned when an exclusion pattern is structurally invalid.
type PatternError struct {
	Err     error
	Pattern string
}

func (err PatternError) Error() string {
	return fmt.Sprintf("invalid exclude pattern %q: %v", err.Pattern, err.Err)
}

func (err PatternError) Unwrap() error {
	return err.Err
}

// NewPatternError creates a new PatternError with a stack trace.
func NewPatternError(pattern string, cause error) error {
	return errors.New(PatternError{Pattern: pattern, Err: cause})
}

// ExpansionError reports an entry that could not be read while expanding a pattern or listing paths.
// It is recoverable: the entry is skipped and the error is reported as a warning.
type ExpansionError struct {
	Err  error
	Path string
}

func (err ExpansionError) Error() string {
	return fmt.Sprintf("skipping %q: %v", err.Path, err.Err)
}

func (err ExpansionError) Unwrap() error {
	return err.Err
}

// NewExpansionError creates a new ExpansionError.
func NewExpansionError(path string, cause error) error {
	return errors.New(ExpansionError{Path: path, Err: cause})
}
