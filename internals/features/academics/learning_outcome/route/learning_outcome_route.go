package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	outcomeController "akademiku_backend/internals/features/academics/learning_outcome/controller"
)

// Escrituras. Se montan bajo /api/a (solo administrador).
func LearningOutcomeAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := outcomeController.NewLearningOutcomeController(db)

	r.Post("/learning-outcomes", ctrl.Create)
	r.Put("/learning-outcomes/:id", ctrl.Update)
	r.Delete("/learning-outcomes/:id", ctrl.Delete)
}

// Lecturas para cualquier rol autenticado. Se montan bajo /api/u.
func LearningOutcomeUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := outcomeController.NewLearningOutcomeController(db)

	r.Get("/learning-outcomes", ctrl.List)
	r.Get("/learning-outcomes/:id", ctrl.GetByID)
}
