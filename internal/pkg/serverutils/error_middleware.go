package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studytrail-be/pkg/reading"
)

// AppError carries an HTTP status alongside the message so controllers can
// bubble errors straight to the middleware.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

var ErrNotFound = NewAppError(fiber.StatusNotFound, "resource not found")

// ErrorHandlerMiddleware maps domain errors to HTTP statuses. Range errors
// from the reading core are the caller's fault, so they come back as 400s.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Status).JSON(fiber.Map{"message": appErr.Message})
		}

		var rangeErr *reading.RangeError
		if errors.As(err, &rangeErr) ||
			errors.Is(err, reading.ErrNegativeDuration) ||
			errors.Is(err, reading.ErrUnknownCategory) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
	}
}
