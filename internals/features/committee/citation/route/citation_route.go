package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	citationController "akademiku_backend/internals/features/committee/citation/controller"
)

// Gestión de citaciones a comité. Se montan bajo /api/i.
// Las rutas fijas van antes que /:id para que Fiber no las capture.
func CitationStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := citationController.NewCitationController(db)

	r.Post("/citations", ctrl.Create)
	r.Get("/citations", ctrl.List)
	r.Get("/citations/my-reported", ctrl.MyReported)
	r.Get("/citations/pending", ctrl.Pending)
	r.Get("/citations/overdue", ctrl.Overdue)
	r.Get("/citations/stats", ctrl.Stats)
	r.Get("/citations/:id", ctrl.GetByID)
	r.Put("/citations/:id", ctrl.Update)
	r.Patch("/citations/:id/status", ctrl.ChangeStatus)
	r.Delete("/citations/:id", ctrl.Delete)
}

// Autoservicio del aprendiz citado. Se montan bajo /api/u.
func CitationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := citationController.NewCitationController(db)

	r.Get("/citations/mine", ctrl.MyCitations)
	r.Get("/citations/mine/pending", ctrl.MyPending)
	r.Get("/citations/mine/upcoming", ctrl.MyUpcoming)
}
