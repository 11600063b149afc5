// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "akademiku_backend/internals/features/users/auth/controller"
	"akademiku_backend/internals/middlewares"
	authMw "akademiku_backend/internals/middlewares/auth"
)

// Base: /api/auth
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := app.Group("/api/auth")

	// 🔓 Público
	baseAuth.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", middlewares.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/refresh-token", authController.RefreshToken)
	baseAuth.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), authController.ForgotPassword)
	baseAuth.Post("/reset-password", authController.ResetPassword)

	// 🔒 Requiere sesión
	protected := baseAuth.Group("", authMw.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Post("/change-password", authController.ChangePassword)
	protected.Get("/me", authController.Me)
}
