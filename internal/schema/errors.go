package schema

import "fmt"

// ValidationError reports a structural mismatch between a fetched payload and
// the generated schema. Field names the violated constraint's location.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" && e.Field != "(root)" {
		return fmt.Sprintf("schema validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("schema validation error: %s", e.Message)
}
