package link

import "fmt"

// ConfigError reports an invalid configuration field. It is fatal at
// startup, never a runtime fault.
type ConfigError struct {
	Field string
	Value string
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}
