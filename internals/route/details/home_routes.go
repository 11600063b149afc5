package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "akademiku_backend/internals/features/home/dashboard/route"
)

/* ===================== USER ===================== */
// Resumen de inicio según rol.
func HomeUserRoutes(r fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardUserRoutes(r, db)
}
