package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/codescope/codescope/internal/engines"
	"github.com/codescope/codescope/internal/errors"
)

// Formatter writes command results to w.
type Formatter interface {
	// Paths writes the paths of a workspace.
	Paths(w io.Writer, paths []string) error
	// ConfigFiles writes the engine configuration files that were prepared.
	ConfigFiles(w io.Writer, files []*engines.ConfigFile) error
}

// TextFormatter writes one line per result.
type TextFormatter struct{}

func (formatter *TextFormatter) Paths(w io.Writer, paths []string) error {
	for _, path := range paths {
		if _, err := fmt.Fprintln(w, path); err != nil {
			return errors.New(err)
		}
	}

	return nil
}

func (formatter *TextFormatter) ConfigFiles(w io.Writer, files []*engines.ConfigFile) error {
	for _, file := range files {
		_, err := fmt.Fprintf(w, "%s (%s): %s, %d included, %d excluded\n",
			file.Engine.Name, file.Engine.Image, file.Path, len(file.IncludePaths), len(file.ExcludePaths))
		if err != nil {
			return errors.New(err)
		}
	}

	return nil
}

// JSONFormatter writes a single indented JSON document.
type JSONFormatter struct{}

func (formatter *JSONFormatter) Paths(w io.Writer, paths []string) error {
	if paths == nil {
		paths = []string{}
	}

	return writeJSON(w, struct {
		Paths []string `json:"paths"`
	}{paths})
}

func (formatter *JSONFormatter) ConfigFiles(w io.Writer, files []*engines.ConfigFile) error {
	if files == nil {
		files = []*engines.ConfigFile{}
	}

	return writeJSON(w, struct {
		Engines []*engines.ConfigFile `json:"engines"`
	}{files})
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(value); err != nil {
		return errors.New(err)
	}

	return nil
}
