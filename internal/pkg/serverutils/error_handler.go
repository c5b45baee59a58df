package serverutils

import (
	"errors"

	"healthlink-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps handler errors to the flat {"error": msg}
// body, with the error kind deciding the status code.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return ctx.Status(statusFor(err)).JSON(ErrorResponse{Error: err.Error()})
	}
}

func statusFor(err error) int {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		switch appErr.Kind {
		case apperror.KindValidation:
			return fiber.StatusBadRequest
		case apperror.KindNotFound:
			return fiber.StatusNotFound
		case apperror.KindUnauthorized:
			return fiber.StatusUnauthorized
		case apperror.KindUpstream:
			return fiber.StatusBadGateway
		}
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fiber.StatusBadRequest
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	return fiber.StatusInternalServerError
}
