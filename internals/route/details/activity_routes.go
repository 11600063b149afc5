package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "akademiku_backend/internals/features/activities/activity/route"
	gradeRoute "akademiku_backend/internals/features/activities/grade/route"
	submissionRoute "akademiku_backend/internals/features/activities/submission/route"
)

/* ===================== STAFF ===================== */
// Actividades, entregas y calificación.
func ActivitiesStaffRoutes(r fiber.Router, db *gorm.DB) {
	activityRoute.ActivityStaffRoutes(r, db)
	submissionRoute.SubmissionStaffRoutes(r, db)
	gradeRoute.GradeStaffRoutes(r, db)
}

/* ===================== USER ===================== */
func ActivitiesUserRoutes(r fiber.Router, db *gorm.DB) {
	activityRoute.ActivityUserRoutes(r, db)
	submissionRoute.SubmissionUserRoutes(r, db)
	gradeRoute.GradeUserRoutes(r, db)
}
