package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "akademiku_backend/internals/features/academics/enrollment/controller"
)

// Gestión de matrículas. Se montan bajo /api/a (solo administrador).
func EnrollmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	r.Post("/enrollments", ctrl.Create)
	r.Patch("/enrollments/:id/status", ctrl.ChangeStatus)
	r.Post("/enrollments/:id/photo", ctrl.UploadPhoto)
}

// Consulta de matrículas para personal. Se montan bajo /api/i.
func EnrollmentStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	r.Get("/enrollments", ctrl.List)
}

// Matrículas del propio aprendiz. Se montan bajo /api/u.
func EnrollmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	r.Get("/enrollments/mine", ctrl.MyEnrollments)
}
