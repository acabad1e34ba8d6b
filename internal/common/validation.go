package common

import "fmt"

// ValidationError reports a rejected input field. It matches ErrValidation
// with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Required builds a ValidationError for an empty field.
func Required(field string) error {
	return &ValidationError{Field: field, Reason: "is required"}
}

// TooLong builds a ValidationError for a field over its maximum length.
func TooLong(field string, max int) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %d characters", max)}
}

// TooShort builds a ValidationError for a field below its minimum length.
func TooShort(field string, min int) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at least %d characters", min)}
}
