package engines

import (
	"fmt"
	"strings"
)

// UnknownEngineError is returned when the configuration enables an engine that is not in the registry.
type UnknownEngineError struct {
	Name  string
	Known []string
}

func (err UnknownEngineError) Error() string {
	return fmt.Sprintf("unknown engine %q, supported engines: %s", err.Name, strings.Join(err.Known, ", "))
}
