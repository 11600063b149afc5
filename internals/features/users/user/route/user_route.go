package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/constants"
	authController "akademiku_backend/internals/features/users/auth/controller"
	userController "akademiku_backend/internals/features/users/user/controller"
	authMw "akademiku_backend/internals/middlewares/auth"
)

// Rutas de administración de usuarios. Se montan bajo /api/a.
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)
	authCtrl := authController.NewAuthController(db)

	// 🔒 Solo administradores
	users := r.Group("/users",
		authMw.OnlyRoles("Gestión de usuarios restringida al administrador", constants.RoleAdministrator),
	)

	users.Get("/", userCtrl.List)
	users.Post("/", authCtrl.Register) // con sesión de admin el rol del body sí se respeta
	users.Get("/:id", userCtrl.GetByID)
	users.Put("/:id", userCtrl.Update)
	users.Delete("/:id", userCtrl.Deactivate)
	users.Post("/:id/photo", userCtrl.UploadPhoto)
}

// Rutas del propio usuario autenticado. Se montan bajo /api/u.
func UserSelfRoutes(r fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	r.Put("/users/me", userCtrl.UpdateMe)
	r.Post("/users/me/photo", userCtrl.UploadMyPhoto)
}
