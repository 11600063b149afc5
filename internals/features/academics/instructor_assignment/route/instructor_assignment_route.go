package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "akademiku_backend/internals/features/academics/instructor_assignment/controller"
)

// Gestión de asignaciones. Se montan bajo /api/a (solo administrador).
func InstructorAssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := assignmentController.NewInstructorAssignmentController(db)

	r.Post("/instructor-assignments", ctrl.Create)
	r.Put("/instructor-assignments/:id", ctrl.Update)
	r.Delete("/instructor-assignments/:id", ctrl.Delete)
}

// Consulta de asignaciones. Se montan bajo /api/i (instructor ve las suyas).
func InstructorAssignmentStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := assignmentController.NewInstructorAssignmentController(db)

	r.Get("/instructor-assignments", ctrl.List)
	r.Get("/instructor-assignments/:id", ctrl.GetByID)
}
