package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Sentinel error kinds surfaced to API callers. Handlers wrap these with
// fmt.Errorf("%w: ...") and controllers map them to HTTP statuses through
// StatusCode, so the mapping lives in exactly one place.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidState  = errors.New("invalid state")
	ErrInvalidInput  = errors.New("invalid input")
	ErrConflict      = errors.New("conflict")
	ErrAlreadyActive = errors.New("already active")
)

// StatusCode returns the HTTP status for an error kind. Unknown errors are
// treated as internal failures and must not leak detail to the client.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidState):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrAlreadyActive):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// IsExpected reports whether the error is one of the user-facing kinds, as
// opposed to an unexpected storage failure.
func IsExpected(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrAlreadyActive)
}
