package config

import (
	"fmt"
)

// ConfigError is returned when the configuration file cannot be read or parsed.
type ConfigError struct {
	Err  error
	Path string
}

// NewConfigError returns a ConfigError for the file at path.
func NewConfigError(path string, err error) ConfigError {
	return ConfigError{Err: err, Path: path}
}

func (err ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration file %q: %v", err.Path, err.Err)
}

func (err ConfigError) Unwrap() error {
	return err.Err
}
