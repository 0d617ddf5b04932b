package log

// Field keys shared by the packages that log through this logger.
const (
	FieldKeyPattern = "pattern"
	FieldKeyEngine  = "engine"
	FieldKeyPath    = "path"
)

// Fields type, used to pass to `WithFields`.
type Fields map[string]any
