package serverutils

import (
	"errors"
	"runtime/debug"

	"newsroom-be/internal/pkg/logger"
	"newsroom-be/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware funnels every error returned by a handler into the
// uniform error envelope, logging it before the response is emitted.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status, message, issues := apperrors.MapToHTTP(err)

		// Errors raised by the framework itself (unmatched route, method
		// not allowed, body over the size limit) carry their own status.
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status, message = fe.Code, fe.Message
		}

		log.Error("http", message, map[string]interface{}{
			"status": status,
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
			"stack":  string(debug.Stack()),
		})

		return ctx.Status(status).JSON(ErrorResponse(status, message, issues))
	}
}
