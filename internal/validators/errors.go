package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrInvalidInput    = errors.New("inputs are incorrect")
)

// ValidationError lists every rule a payload broke.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Reasons, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
