package serverutils

import (
	"errors"

	"placid-catalog-be/internal/pkg/apperrors"
	"placid-catalog-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service errors into client payloads.
// ValidationError/CapacityExceededError → 400, NotFoundError → 404,
// UnauthorizedError → 401, everything else → 500 with a generic message.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			status := fiber.StatusInternalServerError
			switch appErr.Kind {
			case apperrors.KindValidation, apperrors.KindCapacityExceeded:
				status = fiber.StatusBadRequest
			case apperrors.KindConflict:
				status = fiber.StatusConflict
			case apperrors.KindNotFound:
				status = fiber.StatusNotFound
			case apperrors.KindUnauthorized:
				status = fiber.StatusUnauthorized
			}
			if status == fiber.StatusInternalServerError {
				log.Error("HTTP", "Internal error", map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Error(),
				})
				return ctx.Status(status).JSON(fiber.Map{"message": "Internal server error"})
			}
			return ctx.Status(status).JSON(fiber.Map{"message": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		log.Error("HTTP", "Unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
	}
}
