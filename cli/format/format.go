// Package format renders command results for the terminal or for other programs.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/codescope/codescope/internal/errors"
)

// Formatter names.
const (
	TextFormat = "text"
	JSONFormat = "json"
)

// formatters is keyed by formatter name.
var formatters = map[string]func() Formatter{
	TextFormat: func() Formatter { return &TextFormatter{} },
	JSONFormat: func() Formatter { return &JSONFormatter{} },
}

// InvalidFormatterError is returned by Resolve for an unknown formatter name.
type InvalidFormatterError struct {
	Name string
}

func (err InvalidFormatterError) Error() string {
	return fmt.Sprintf("%q is not a valid formatter, valid options are: %s", err.Name, strings.Join(Names(), ", "))
}

// Resolve returns a new formatter with the given name.
func Resolve(name string) (Formatter, error) {
	newFormatter, ok := formatters[name]
	if !ok {
		return nil, errors.New(errors.ErrorWithExitCode{Err: InvalidFormatterError{Name: name}, ExitCode: 1})
	}

	return newFormatter(), nil
}

// Names returns the names of all formatters, sorted.
func Names() []string {
	names := make([]string, 0, len(formatters))

	for name := range formatters {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
