package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	rollCallController "akademiku_backend/internals/features/attendance/roll_call/controller"
)

// Llamados de asistencia. Se montan bajo /api/i (instructor y administrador);
// el controller limita a cada instructor a sus propios llamados.
func RollCallStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := rollCallController.NewRollCallController(db)

	r.Post("/roll-calls", ctrl.Create)
	r.Get("/roll-calls", ctrl.List)
	r.Get("/roll-calls/:id", ctrl.GetByID)
	r.Put("/roll-calls/:id", ctrl.Update)
	r.Delete("/roll-calls/:id", ctrl.Delete)
}
