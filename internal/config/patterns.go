package config

import (
	"gopkg.in/yaml.v3"

	"github.com/codescope/codescope/internal/errors"
)

// Patterns is a list of paths or glob patterns. In YAML it is written either as a list or as a single string.
type Patterns []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (patterns *Patterns) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*patterns = nil

			return nil
		}

		*patterns = Patterns{value.Value}

		return nil
	case yaml.SequenceNode:
		var list []string

		if err := value.Decode(&list); err != nil {
			return err
		}

		*patterns = list

		return nil
	}

	return errors.Errorf("line %d: expected a string or a list of strings", value.Line)
}
