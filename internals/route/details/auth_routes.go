package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "akademiku_backend/internals/features/users/auth/route"
)

// AuthRoutes se monta directo sobre la app: maneja su propio grupo
// /api/auth con los limiters de login/registro.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authRoute.AuthRoutes(app, db)
}
