package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attachmentController "akademiku_backend/internals/features/committee/citation_attachment/controller"
)

// Soportes documentales de las citaciones. Se montan bajo /api/i.
func CitationAttachmentStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attachmentController.NewCitationAttachmentController(db)

	r.Post("/citations/:citation_id/attachments", ctrl.Upload)
	r.Get("/citations/:citation_id/attachments", ctrl.ListByCitation)
	r.Delete("/citation-attachments/:id", ctrl.Delete)
}
