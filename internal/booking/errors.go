package booking

import (
	"errors"
	"fmt"
)

// FieldError collects per-field validation messages. Validation failures are
// returned as values so callers can branch on them without exception-style
// control flow; the handler layer turns the field map into a 400 body.
type FieldError struct {
	fields map[string][]string
}

func newFieldError() *FieldError {
	return &FieldError{fields: make(map[string][]string)}
}

// AsFieldError returns the FieldError wrapped in err, or nil.
func AsFieldError(err error) *FieldError {
	if err == nil {
		return nil
	}

	var fe *FieldError
	if errors.As(err, &fe) {
		return fe
	}

	return nil
}

func (e *FieldError) add(field, msg string) {
	e.fields[field] = append(e.fields[field], msg)
}

func (e *FieldError) count() int {
	return len(e.fields)
}

// Has reports whether the field carries at least one message.
func (e *FieldError) Has(field string) bool {
	return len(e.fields[field]) > 0
}

// Fields returns the per-field messages.
func (e *FieldError) Fields() map[string][]string {
	return e.fields
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%+v", e.fields)
}

// orNil collapses an empty FieldError to a nil error.
func (e *FieldError) orNil() error {
	if e.count() == 0 {
		return nil
	}
	return e
}
