package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"akademiku_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra la cadena base: recovery → cors → logger.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
