// Package config loads the project configuration file, `.codescope.yml`.
package config

import (
	"maps"
	"slices"
	"sort"
)

// Config is the parsed project configuration. A zero Config is valid and means nothing was configured.
type Config struct {
	// IncludePaths are the paths added to the workspace when none are given on the command line.
	IncludePaths Patterns `yaml:"include_paths"`
	// ExcludePaths are the patterns removed from the workspace of every engine.
	ExcludePaths Patterns `yaml:"exclude_paths"`
	// Engines is keyed by engine name.
	Engines map[string]*EngineConfig `yaml:"engines"`

	// SourceFile is the path the configuration was read from, empty if no file was found.
	SourceFile string `yaml:"-"`
}

// EngineConfig is the configuration of a single engine.
type EngineConfig struct {
	Enabled      bool           `yaml:"enabled"`
	ExcludePaths Patterns       `yaml:"exclude_paths"`
	Config       map[string]any `yaml:"config"`
}

// EngineNames returns the names of the enabled engines, sorted.
func (cfg *Config) EngineNames() []string {
	if cfg == nil {
		return nil
	}

	names := make([]string, 0, len(cfg.Engines))

	for name, engine := range cfg.Engines {
		if engine != nil && engine.Enabled {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// Engine returns the configuration of the named engine, or nil if it is not configured.
func (cfg *Config) Engine(name string) *EngineConfig {
	if cfg == nil {
		return nil
	}

	return cfg.Engines[name]
}

// EngineConfig returns a copy of the free-form `config` map of the named engine. The copy is never nil, so callers
// may add keys to it.
func (cfg *Config) EngineConfig(name string) map[string]any {
	values := make(map[string]any)

	if engine := cfg.Engine(name); engine != nil {
		maps.Copy(values, engine.Config)
	}

	return values
}

// EngineExcludePaths returns the project exclude patterns followed by the exclude patterns of the named engine.
func (cfg *Config) EngineExcludePaths(name string) []string {
	if cfg == nil {
		return nil
	}

	patterns := slices.Clone([]string(cfg.ExcludePaths))

	if engine := cfg.Engine(name); engine != nil {
		patterns = append(patterns, engine.ExcludePaths...)
	}

	return patterns
}
