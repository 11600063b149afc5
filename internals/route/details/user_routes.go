package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userRoute "akademiku_backend/internals/features/users/user/route"
)

/* ===================== ADMIN ===================== */
func UsersAdminRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(r, db)
}

/* ===================== USER ===================== */
func UsersSelfRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserSelfRoutes(r, db)
}
