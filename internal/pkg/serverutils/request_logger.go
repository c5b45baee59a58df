package serverutils

import (
	"healthlink-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// RequestLoggerMiddleware records every dispatched method+path. When the
// identity middleware resolved a caller, the entry carries their user id.
func RequestLoggerMiddleware(sysLogger logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()

		details := map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"status": ctx.Response().StatusCode(),
		}
		if userId, ok := ctx.Locals("user_id").(string); ok {
			details["user_id"] = userId
		}
		sysLogger.Info("http", "Request dispatched", details)
		return err
	}
}
