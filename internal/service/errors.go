package service

import (
	"errors"
	"fmt"
)

// Domain errors shared by all services. Handlers map these to HTTP status
// codes; anything unrecognized becomes a 500.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("not resource owner")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// ValidationError carries the human-readable reason an input was rejected.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Validationf builds a *ValidationError with a formatted message.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
