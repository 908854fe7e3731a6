// Package apperrors defines the error taxonomy shared by services and
// controllers and its mapping to HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden means the record exists but belongs to another user.
	ErrForbidden = errors.New("not authorized")
	// ErrNoContacts means a broadcast was attempted with zero contacts.
	ErrNoContacts = errors.New("no emergency contacts found, please add contacts first")
)

// ValidationError reports missing or malformed input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// TransportError wraps an SMS transport failure that is not covered by
// the region fallback rule.
type TransportError struct {
	Recipient string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("sms send to %s failed: %v", e.Recipient, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Status maps an error to the HTTP status code the API responds with.
// Uncategorized errors map to 500.
func Status(err error) int {
	var (
		ve *ValidationError
		te *TransportError
	)
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNoContacts):
		return http.StatusBadRequest
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &te):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
