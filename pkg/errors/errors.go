package errors

import (
	"errors"
	"fmt"
)

// FieldError is a validation failure tied to one input field.
// Handlers render it as a 400 with a fields map.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError builds a *FieldError.
func NewFieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}

// AsFieldError unwraps err into a *FieldError.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
