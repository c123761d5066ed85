package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, fiber.StatusNotFound},
		{ErrInvalidState, fiber.StatusBadRequest},
		{ErrInvalidInput, fiber.StatusBadRequest},
		{ErrConflict, fiber.StatusConflict},
		{ErrAlreadyActive, fiber.StatusConflict},
		{errors.New("boom"), fiber.StatusInternalServerError},
		{nil, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(tt.err))
	}
}

func TestStatusCodeUnwrapsChains(t *testing.T) {
	wrapped := fmt.Errorf("%w: doctor not found", ErrNotFound)
	assert.Equal(t, fiber.StatusNotFound, StatusCode(wrapped))

	twice := fmt.Errorf("booking failed: %w", wrapped)
	assert.Equal(t, fiber.StatusNotFound, StatusCode(twice))
}

func TestIsExpected(t *testing.T) {
	assert.True(t, IsExpected(fmt.Errorf("%w: slot taken", ErrConflict)))
	assert.True(t, IsExpected(ErrAlreadyActive))
	assert.False(t, IsExpected(errors.New("connection refused")))
	assert.False(t, IsExpected(nil))
}
