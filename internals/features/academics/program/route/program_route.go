package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	programController "akademiku_backend/internals/features/academics/program/controller"
)

// Escrituras de programas. Se montan bajo /api/a (solo administrador).
func ProgramAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := programController.NewProgramController(db)

	r.Post("/programs", ctrl.Create)
	r.Put("/programs/:id", ctrl.Update)
	r.Delete("/programs/:id", ctrl.Delete)
}

// Lecturas de programas para cualquier rol autenticado. Se montan bajo /api/u.
func ProgramUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := programController.NewProgramController(db)

	r.Get("/programs", ctrl.List)
	r.Get("/programs/:id", ctrl.GetByID)
}
