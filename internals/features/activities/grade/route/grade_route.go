package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "akademiku_backend/internals/features/activities/grade/controller"
)

// Calificación de entregas. Se montan bajo /api/i.
func GradeStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradeController.NewGradeController(db)

	r.Post("/submissions/:submission_id/grade", ctrl.Grade)
	r.Get("/submissions/:submission_id/grade", ctrl.GetBySubmission)
}

// Calificaciones propias del aprendiz. Se montan bajo /api/u.
func GradeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := gradeController.NewGradeController(db)

	r.Get("/grades", ctrl.MyGrades)
	r.Get("/grades/summary", ctrl.MySummary)
}
