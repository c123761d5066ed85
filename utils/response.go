package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Rohitsah12/healthFirst/apperrors"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ErrorJSON writes an error with the HTTP status derived from its kind.
// Unexpected failures are reported generically so internals don't leak.
func ErrorJSON(c *fiber.Ctx, message string, err error) error {
	status := apperrors.StatusCode(err)
	resp := ErrorResponse{Message: message}
	if apperrors.IsExpected(err) {
		resp.Error = err.Error()
	}
	return c.Status(status).JSON(resp)
}
