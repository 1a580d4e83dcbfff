package models

import "fmt"

// ValidationError is a field-level constraint violation surfaced by model
// hooks. Handlers map it to a 400 response keyed by Field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
