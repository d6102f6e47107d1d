package entities

import "fmt"

// ValidationError reports a required field that is missing or unusable
// before a submit. It is caught at the form/handler boundary and never
// reaches the persistence layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
