package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "akademiku_backend/internals/features/activities/submission/controller"
)

// Revisión de entregas por el staff. Se montan bajo /api/i.
func SubmissionStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := submissionController.NewSubmissionController(db)

	r.Get("/activities/:activity_id/submissions", ctrl.ListByActivity)
	r.Get("/submissions/:id", ctrl.GetByID)
	r.Patch("/submissions/:id/review", ctrl.MarkReviewed)
}

// Entregas del propio aprendiz. Se montan bajo /api/u.
func SubmissionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := submissionController.NewSubmissionController(db)

	r.Get("/submissions", ctrl.MySubmissions)
	r.Get("/activities/:activity_id/submission", ctrl.MySubmission)
	r.Put("/activities/:activity_id/submission", ctrl.UpsertDraft)
	r.Post("/activities/:activity_id/submission/file", ctrl.UploadFile)
	r.Post("/activities/:activity_id/submission/submit", ctrl.Submit)
}
