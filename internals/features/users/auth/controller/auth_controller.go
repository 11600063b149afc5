package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"akademiku_backend/internals/features/users/auth/service"
	userDTO "akademiku_backend/internals/features/users/user/dto"
	userModel "akademiku_backend/internals/features/users/user/model"
	helper "akademiku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

/* ==========================
   Delegación al servicio
========================== */

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	return service.RefreshToken(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return service.ChangePassword(ac.DB, c)
}

func (ac *AuthController) ForgotPassword(c *fiber.Ctx) error {
	return service.RequestPasswordReset(ac.DB, c)
}

func (ac *AuthController) ResetPassword(c *fiber.Ctx) error {
	return service.ResetPassword(ac.DB, c)
}

/* ==========================
   ME (perfil de la sesión)
========================== */

// GET /api/auth/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "users_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	return helper.Success(c, "Perfil de la sesión", userDTO.NewUserResponse(&user))
}
