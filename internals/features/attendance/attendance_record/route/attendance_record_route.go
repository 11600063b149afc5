package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recordController "akademiku_backend/internals/features/attendance/attendance_record/controller"
)

// Registro de asistencia. Se montan bajo /api/i.
func AttendanceRecordStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := recordController.NewAttendanceRecordController(db)

	r.Post("/attendance-records", ctrl.Create)
	r.Patch("/attendance-records/:id", ctrl.Mark)
}

// Historial propio del aprendiz. Se montan bajo /api/u.
func AttendanceRecordUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := recordController.NewAttendanceRecordController(db)

	r.Get("/attendance-records/mine", ctrl.MyRecords)
}
