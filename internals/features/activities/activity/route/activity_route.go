package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityController "akademiku_backend/internals/features/activities/activity/controller"
)

// Gestión de actividades del instructor/administrador. Se montan bajo /api/i.
func ActivityStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := activityController.NewActivityController(db)

	r.Post("/activities", ctrl.Create)
	r.Get("/activities", ctrl.List)
	r.Get("/activities/by-cohort/:cohort_id", ctrl.ByCohort)
	r.Put("/activities/:id", ctrl.Update)
	r.Patch("/activities/:id/state", ctrl.ChangeState)
	r.Delete("/activities/:id", ctrl.Delete)
}

// Vista del aprendiz (y lecturas comunes). Se montan bajo /api/u.
func ActivityUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := activityController.NewActivityController(db)

	r.Get("/activity-types", ctrl.ListTypes)
	r.Get("/activities", ctrl.ListForApprentice)
	r.Get("/activities/pending", ctrl.PendingForApprentice)
	r.Get("/activities/progress", ctrl.ApprenticeProgress)
	r.Get("/activities/:id", ctrl.GetByID)
}
