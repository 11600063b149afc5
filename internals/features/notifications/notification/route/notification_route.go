package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "akademiku_backend/internals/features/notifications/notification/controller"
)

// Bandeja del usuario autenticado y su configuración. Se montan bajo /api/u.
func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)
	configCtrl := notificationController.NewNotificationConfigController(db)

	r.Get("/notification-types", ctrl.ListTypes)
	r.Get("/notification-config", configCtrl.GetMine)
	r.Put("/notification-config", configCtrl.UpdateMine)

	r.Get("/notifications", ctrl.List)
	r.Get("/notifications/unread", ctrl.Unread)
	r.Get("/notifications/summary", ctrl.Summary)
	r.Patch("/notifications/read", ctrl.MarkRead)
	r.Patch("/notifications/read-all", ctrl.MarkAllRead)
	r.Get("/notifications/:id", ctrl.GetByID)
	r.Delete("/notifications/:id", ctrl.Delete)
}

// Envío manual del staff. Se montan bajo /api/i.
func NotificationStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	r.Post("/notifications/send", ctrl.CustomSend)
}

// Auditoría de entregas. Se montan bajo /api/a.
func NotificationAdminRoutes(r fiber.Router, db *gorm.DB) {
	configCtrl := notificationController.NewNotificationConfigController(db)

	r.Get("/notification-history", configCtrl.ListHistory)
}
