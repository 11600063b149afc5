package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "akademiku_backend/internals/features/home/dashboard/controller"
)

// Resumen de inicio: un solo endpoint para cualquier rol autenticado,
// la respuesta depende del rol del token. Se monta bajo /api/u.
func DashboardUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	r.Get("/dashboard", ctrl.Home)
}
