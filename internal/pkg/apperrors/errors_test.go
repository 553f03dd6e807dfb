package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	appErr := NewInternal("failed to create category", cause)

	assert.True(t, errors.Is(appErr, cause))
	assert.Contains(t, appErr.Error(), "failed to create category")
	assert.Contains(t, appErr.Error(), cause.Error())
}

func TestAppErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		kind Kind
	}{
		{"validation", NewValidation("Slug already in use"), KindValidation},
		{"not found", NewNotFound("Product not found"), KindNotFound},
		{"capacity", NewCapacityExceeded("Maximum 10 featured products allowed"), KindCapacityExceeded},
		{"unauthorized", NewUnauthorized("Unauthorized"), KindUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.err.Message, tt.err.Error())

			var appErr *AppError
			assert.True(t, errors.As(fmt.Errorf("wrapped: %w", tt.err), &appErr))
			assert.Equal(t, tt.kind, appErr.Kind)
		})
	}
}
