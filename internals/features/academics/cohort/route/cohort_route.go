package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cohortController "akademiku_backend/internals/features/academics/cohort/controller"
)

// Escrituras de fichas. Se montan bajo /api/a (solo administrador).
func CohortAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := cohortController.NewCohortController(db)

	r.Post("/cohorts", ctrl.Create)
	r.Put("/cohorts/:id", ctrl.Update)
	r.Delete("/cohorts/:id", ctrl.Delete)
}

// Lecturas para cualquier rol autenticado. Se montan bajo /api/u.
func CohortUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := cohortController.NewCohortController(db)

	r.Get("/cohorts", ctrl.List)
	r.Get("/cohorts/:id", ctrl.GetByID)
}

// Listado de aprendices de la ficha. Se monta bajo /api/i (instructor y admin).
func CohortStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := cohortController.NewCohortController(db)

	r.Get("/cohorts/:id/roster", ctrl.Roster)
}
