package api

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks a subject or child row that does not exist. Repositories
// wrap it with context, e.g. fmt.Errorf("patient %s: %w", mrn, api.ErrNotFound).
var ErrNotFound = errors.New("not found")

// ValidationError reports required fields missing from a request. It is
// raised before any transaction opens.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Fields, ", "))
}

// Validation builds a ValidationError for the named fields.
func Validation(fields ...string) error {
	return &ValidationError{Fields: fields}
}

// Invalid builds a 400-mapped error with a free-form message (e.g. duplicate
// natural key on registration).
func Invalid(message string) error {
	return &invalidError{message: message}
}

type invalidError struct {
	message string
}

func (e *invalidError) Error() string { return e.message }

// IsValidation reports whether err maps to a 400 response.
func IsValidation(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	var ie *invalidError
	return errors.As(err, &ie)
}

// IsNotFound reports whether err maps to a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
