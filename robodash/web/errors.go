package web

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/mascotlabs/robodash/robodash/database/repositories"
)

// fail converts a service error into the {success:false, message} result
// shape the dashboard branches on. Storage failures surface as a generic
// retryable message; the detail stays in the log.
func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "something went wrong, please retry"

	switch {
	case errors.Is(err, repositories.ErrNotFound):
		status, message = fiber.StatusNotFound, "not found"
	case errors.Is(err, repositories.ErrInsufficientPoints):
		status, message = fiber.StatusConflict, "not enough points"
	case errors.Is(err, repositories.ErrAlreadyOwned):
		status, message = fiber.StatusConflict, "mascot already owned"
	case errors.Is(err, repositories.ErrMascotFull):
		status, message = fiber.StatusConflict, "mascot has no free equipment slot"
	case errors.Is(err, repositories.ErrAlreadyEquipped):
		status, message = fiber.StatusConflict, "item is already equipped to a mascot"
	case errors.Is(err, repositories.ErrNotEquipped):
		status, message = fiber.StatusConflict, "item is not equipped to this mascot"
	default:
		slog.Error("Request failed",
			slog.String("type", "http"),
			slog.String("path", c.Path()),
			slog.Any("error", err))
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}
