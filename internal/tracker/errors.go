package tracker

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record matches both the id and the
// requesting user. A record owned by someone else reports the same error
// so callers cannot probe for other users' data.
var ErrNotFound = errors.New("record not found")

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func requiredField(field string) error {
	return &ValidationError{Field: field, Message: field + " is required"}
}
