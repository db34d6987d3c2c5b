package web

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

const userLocal = "userID"

// RequireUser extracts the externally issued user identifier. The ledger
// never validates or issues these; authentication lives with the identity
// collaborator in front of this API.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "missing X-User-ID header",
			})
		}
		c.Locals(userLocal, userID)
		return c.Next()
	}
}

func userID(c *fiber.Ctx) string {
	id, _ := c.Locals(userLocal).(string)
	return id
}

// LoggingMiddleware logs each request in a structured line, with the level
// keyed off the response status.
func LoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		statusCode := c.Response().StatusCode()
		logLevel := slog.LevelInfo
		if statusCode >= 400 && statusCode < 500 {
			logLevel = slog.LevelWarn
		} else if statusCode >= 500 {
			logLevel = slog.LevelError
		}

		attrs := []any{
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", statusCode),
			slog.Duration("duration", duration),
		}
		if id := userID(c); id != "" {
			attrs = append(attrs, slog.String("user_id", id))
		}
		if err != nil {
			attrs = append(attrs, slog.Any("error", err))
		}

		slog.Log(c.UserContext(), logLevel, "HTTP request", attrs...)
		return err
	}
}
