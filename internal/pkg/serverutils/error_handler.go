package serverutils

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"moodmovie-be/internal/pkg/logger"
	"moodmovie-be/pkg/recommend"
)

// ErrorHandlerMiddleware turns errors returned by handlers into JSON responses.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, log, err)
	}
}

// WriteError maps the error taxonomy onto HTTP statuses.
func WriteError(ctx *fiber.Ctx, log logger.ILogger, err error) error {
	var rateLimited *recommend.RateLimitedError
	if errors.As(err, &rateLimited) {
		wait := rateLimited.WaitSeconds()
		ctx.Set(fiber.HeaderRetryAfter, strconv.Itoa(wait))
		return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorResponseWithData(
			fiber.StatusTooManyRequests, rateLimited.Error(),
			map[string]interface{}{"retry_after_seconds": wait},
		))
	}

	var invalid *RequestValidationError
	if errors.As(err, &invalid) {
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponseWithData(
			fiber.StatusBadRequest, invalid.Error(),
			map[string]interface{}{"fields": invalid.Fields},
		))
	}

	var fe *fiber.Error
	switch {
	case errors.Is(err, recommend.ErrValidation):
		return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, err.Error()))
	case errors.Is(err, recommend.ErrInference):
		log.Warn("HTTP", "Request failed on inference", map[string]interface{}{"path": ctx.Path(), "error": err.Error()})
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse(
			fiber.StatusUnprocessableEntity, "Could not understand your mood, please try describing it differently",
		))
	case errors.As(err, &fe):
		return ctx.Status(fe.Code).JSON(ErrorResponse(fe.Code, fe.Message))
	}

	log.Error("HTTP", "Unhandled request error", map[string]interface{}{
		"path":   ctx.Path(),
		"method": ctx.Method(),
		"error":  err.Error(),
	})
	return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
}
