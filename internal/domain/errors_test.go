package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_UnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	err := NewValidationError("phone", "too short")
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "phone")
	assert.Contains(t, err.Error(), "too short")
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "name", Message: "required"},
		{Field: "nameBn", Message: "required"},
	})
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "validation: 2 errors", err.Error())
}
