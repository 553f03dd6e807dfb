package serverutils

import (
	"strings"

	"placid-catalog-be/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Message: message,
		Data:    data,
	}
}

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts failures into a
// client-facing ValidationError listing the offending fields.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return apperrors.NewValidation("Invalid request body")
		}
		fields := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fields = append(fields, fe.Field()+" ("+fe.Tag()+")")
		}
		return apperrors.NewValidation("Invalid request: " + strings.Join(fields, ", "))
	}
	return nil
}
