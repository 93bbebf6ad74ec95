package http

import (
	"league-backend/internal/shared/contextkeys"
	"league-backend/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware attaches a correlation ID to every request,
// propagating it through the user context so usecase and store logs can
// be tied back to the request. An inbound X-Request-ID is honored.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.SetUserContext(contextkeys.WithRequestID(c.UserContext(), requestID))
		c.Set(requestIDHeader, requestID)
		return c.Next()
	}
}

// RequestLoggerMiddleware logs one line per handled request.
func RequestLoggerMiddleware(log logger.Logger) fiber.Handler {
	accessLog := log.WithComponent("http")
	return func(c *fiber.Ctx) error {
		err := c.Next()
		accessLog.WithContext(c.UserContext()).WithFields(map[string]interface{}{
			"method": c.Method(),
			"path":   c.Path(),
			"status": c.Response().StatusCode(),
		}).Info("request handled")
		return err
	}
}
