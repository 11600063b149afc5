package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordRoute "akademiku_backend/internals/features/attendance/attendance_record/route"
	statisticRoute "akademiku_backend/internals/features/attendance/attendance_statistic/route"
	rollCallRoute "akademiku_backend/internals/features/attendance/roll_call/route"
)

/* ===================== STAFF ===================== */
// Llamados a lista, registros individuales y estadísticas.
func AttendanceStaffRoutes(r fiber.Router, db *gorm.DB) {
	rollCallRoute.RollCallStaffRoutes(r, db)
	recordRoute.AttendanceRecordStaffRoutes(r, db)
	statisticRoute.AttendanceStatisticStaffRoutes(r, db)
}

/* ===================== USER ===================== */
func AttendanceUserRoutes(r fiber.Router, db *gorm.DB) {
	recordRoute.AttendanceRecordUserRoutes(r, db)
	statisticRoute.AttendanceStatisticUserRoutes(r, db)
}
