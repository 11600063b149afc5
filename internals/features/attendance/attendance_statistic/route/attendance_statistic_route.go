package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	statisticController "akademiku_backend/internals/features/attendance/attendance_statistic/controller"
)

// Estadísticas agregadas. Se montan bajo /api/i.
func AttendanceStatisticStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := statisticController.NewAttendanceStatisticController(db)

	r.Get("/attendance-statistics", ctrl.List)
	r.Post("/attendance-statistics/recompute", ctrl.Recompute)
}

// Estadísticas del propio aprendiz. Se montan bajo /api/u.
func AttendanceStatisticUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := statisticController.NewAttendanceStatisticController(db)

	r.Get("/attendance-statistics/mine", ctrl.MyStatistics)
}
