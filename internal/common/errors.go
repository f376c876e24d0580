// Package common defines shared sentinel errors used across the cptracker
// layers. Callers should use errors.Is to match these values; layers attach
// human-readable detail by wrapping (fmt.Errorf("%w: ...", err)).
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Request validation errors.
	ErrorValidation = errors.New("validation error")

	// Token errors. ErrTokenExpired is kept distinct from ErrInvalidToken
	// internally; the HTTP layer deliberately reports both the same way.
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// messageError pairs a sentinel kind with a client-facing message. Error()
// returns only the message, so the HTTP layer can forward it verbatim while
// still classifying the error with errors.Is.
type messageError struct {
	kind    error
	message string
}

func (e *messageError) Error() string { return e.message }
func (e *messageError) Unwrap() error { return e.kind }

// Wrap attaches a client-facing message to one of the sentinel kinds above.
func Wrap(kind error, message string) error {
	return &messageError{kind: kind, message: message}
}
