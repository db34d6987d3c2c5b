// Package web exposes the ledger to the dashboard UI over HTTP. It is a
// thin translation layer: identity comes in as an opaque header, results go
// out in the {success, data|message} shape the UI branches on.
package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func NewServer(handlers *Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "robodash",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": message,
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(compress.New())
	app.Use(LoggingMiddleware())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	handlers.Register(app)
	return app
}
