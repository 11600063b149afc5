package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "akademiku_backend/internals/databases"
	helper "akademiku_backend/internals/helpers"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Akademiku API")
	})

	// Archivos subidos (fotos, anexos, entregas). Solo lectura.
	app.Static("/media", helper.MediaRoot(), fiber.Static{
		Browse:   false,
		MaxAge:   3600,
		Compress: true,
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "conectada"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		sqlDB, err := database.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "sin conexión"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
