package config

import (
	"bytes"
	"io"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/codescope/codescope/internal/errors"
	"github.com/codescope/codescope/internal/vfs"
	"github.com/codescope/codescope/pkg/log"
)

// DefaultConfigFile is the name of the configuration file looked up in the working directory.
const DefaultConfigFile = ".codescope.yml"

// FindConfigFile returns the path of the configuration file to load. An explicitly given path is returned as is,
// otherwise DefaultConfigFile in workingDir is returned if it exists. An empty path means there is no config file.
func FindConfigFile(fs vfs.FS, workingDir, explicit string) (string, error) {
	if explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(workingDir, explicit)
		}

		return filepath.Clean(explicit), nil
	}

	path := filepath.Join(workingDir, DefaultConfigFile)

	exists, err := vfs.FileExists(fs, path)
	if err != nil {
		return "", errors.New(NewConfigError(path, err))
	}

	if !exists {
		return "", nil
	}

	return path, nil
}

// Load finds and parses the configuration file. A missing default config file results in an empty configuration,
// a missing explicitly given file is an error.
func Load(l log.Logger, fs vfs.FS, workingDir, explicit string) (*Config, error) {
	path, err := FindConfigFile(fs, workingDir, explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		l.Debugf("No %s found in %s", DefaultConfigFile, workingDir)

		return &Config{}, nil
	}

	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, errors.New(NewConfigError(path, err))
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.New(NewConfigError(path, err))
	}

	cfg.SourceFile = path

	l.Debugf("Loaded configuration from %s", path)

	return cfg, nil
}

// Parse decodes a YAML document. An empty document results in an empty configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}

		return nil, err
	}

	return cfg, nil
}
