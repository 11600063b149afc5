package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cohortRoute "akademiku_backend/internals/features/academics/cohort/route"
	enrollmentRoute "akademiku_backend/internals/features/academics/enrollment/route"
	assignmentRoute "akademiku_backend/internals/features/academics/instructor_assignment/route"
	outcomeRoute "akademiku_backend/internals/features/academics/learning_outcome/route"
	programRoute "akademiku_backend/internals/features/academics/program/route"
)

/* ===================== ADMIN ===================== */
// Catálogo académico: programas, fichas, resultados, matrículas y
// asignaciones de instructor.
func AcademicAdminRoutes(r fiber.Router, db *gorm.DB) {
	programRoute.ProgramAdminRoutes(r, db)
	cohortRoute.CohortAdminRoutes(r, db)
	outcomeRoute.LearningOutcomeAdminRoutes(r, db)
	enrollmentRoute.EnrollmentAdminRoutes(r, db)
	assignmentRoute.InstructorAssignmentAdminRoutes(r, db)
}

/* ===================== STAFF ===================== */
func AcademicStaffRoutes(r fiber.Router, db *gorm.DB) {
	cohortRoute.CohortStaffRoutes(r, db)
	enrollmentRoute.EnrollmentStaffRoutes(r, db)
	assignmentRoute.InstructorAssignmentStaffRoutes(r, db)
}

/* ===================== USER ===================== */
func AcademicUserRoutes(r fiber.Router, db *gorm.DB) {
	programRoute.ProgramUserRoutes(r, db)
	cohortRoute.CohortUserRoutes(r, db)
	outcomeRoute.LearningOutcomeUserRoutes(r, db)
	enrollmentRoute.EnrollmentUserRoutes(r, db)
}
