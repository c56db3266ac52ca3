package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a numeric engine input is structurally invalid
	ErrInvalidInput = errors.New("invalid input")
	// ErrMalformedValue is returned when a stored value has no numeric content
	ErrMalformedValue = errors.New("malformed value")
)

// ValueError ties a parsing or validation failure to the field that caused it
type ValueError struct {
	Field string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %v: %q", e.Field, e.Err, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
