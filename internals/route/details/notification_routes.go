package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationRoute "akademiku_backend/internals/features/notifications/notification/route"
)

/* ===================== ADMIN ===================== */
// Historial de despacho.
func NotificationsAdminRoutes(r fiber.Router, db *gorm.DB) {
	notificationRoute.NotificationAdminRoutes(r, db)
}

/* ===================== STAFF ===================== */
// Envío manual.
func NotificationsStaffRoutes(r fiber.Router, db *gorm.DB) {
	notificationRoute.NotificationStaffRoutes(r, db)
}

/* ===================== USER ===================== */
// Bandeja, configuración y tipos.
func NotificationsUserRoutes(r fiber.Router, db *gorm.DB) {
	notificationRoute.NotificationUserRoutes(r, db)
}
