package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	followupController "akademiku_backend/internals/features/committee/citation_followup/controller"
)

// Seguimientos posteriores al comité. Se montan bajo /api/i.
func CitationFollowupStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := followupController.NewCitationFollowupController(db)

	r.Post("/citations/:citation_id/followups", ctrl.Create)
	r.Get("/citations/:citation_id/followups", ctrl.ListByCitation)
	r.Get("/followups/pending", ctrl.Pending)
	r.Put("/followups/:id", ctrl.Update)
	r.Delete("/followups/:id", ctrl.Delete)
}
