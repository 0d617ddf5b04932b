// Package engines prepares the per-engine configuration files handed to analysis engines.
package engines

import (
	"sort"
)

// Engine is an analysis engine known to codescope.
type Engine struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Registry maps engine names to engines.
type Registry map[string]Engine

// DefaultRegistry returns the engines codescope knows about.
func DefaultRegistry() Registry {
	return NewRegistry(
		Engine{Name: "brakeman", Image: "codescope/brakeman"},
		Engine{Name: "duplication", Image: "codescope/duplication"},
		Engine{Name: "eslint", Image: "codescope/eslint"},
		Engine{Name: "gofmt", Image: "codescope/gofmt"},
		Engine{Name: "golint", Image: "codescope/golint"},
		Engine{Name: "rubocop", Image: "codescope/rubocop"},
	)
}

// NewRegistry returns a registry of the given engines.
func NewRegistry(engines ...Engine) Registry {
	registry := make(Registry, len(engines))

	for _, engine := range engines {
		registry[engine.Name] = engine
	}

	return registry
}

// Lookup returns the engine with the given name.
func (registry Registry) Lookup(name string) (Engine, error) {
	engine, ok := registry[name]
	if !ok {
		return Engine{}, UnknownEngineError{Name: name, Known: registry.Names()}
	}

	return engine, nil
}

// Names returns the names of all registered engines, sorted.
func (registry Registry) Names() []string {
	names := make([]string, 0, len(registry))

	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
