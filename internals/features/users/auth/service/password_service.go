package service

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"akademiku_backend/internals/configs"
	authDTO "akademiku_backend/internals/features/users/auth/dto"
	authModel "akademiku_backend/internals/features/users/auth/model"
	userModel "akademiku_backend/internals/features/users/user/model"
	helper "akademiku_backend/internals/helpers"

	notifService "akademiku_backend/internals/features/notifications/service"
)

const resetTokenTTL = 24 * time.Hour

// Mensaje único: nunca se revela si el correo/documento existe.
const resetRequestedMsg = "Se ha enviado un correo con instrucciones para recuperar la contraseña."

/* ==========================
   SOLICITAR RECUPERACIÓN
========================== */

// POST /api/auth/forgot-password
func RequestPasswordReset(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	document := strings.TrimSpace(req.DocumentNumber)
	if email == "" && document == "" {
		return helper.Error(c, fiber.StatusBadRequest, "Debe proporcionar email o documento")
	}

	var user userModel.UserModel
	q := db.Where("users_is_active = true")
	if email != "" {
		q = q.Where("users_email = ?", email)
	} else {
		q = q.Where("users_document_number = ?", document)
	}
	if err := q.First(&user).Error; err != nil {
		// Respuesta idéntica exista o no el usuario
		return helper.Success(c, resetRequestedMsg, nil)
	}

	token := uuid.NewString()
	reset := &authModel.PasswordResetTokenModel{
		PasswordResetTokensUserID:    user.UsersID,
		PasswordResetTokensToken:     token,
		PasswordResetTokensExpiresAt: nowUTC().Add(resetTokenTTL),
	}
	if err := db.Create(reset).Error; err != nil {
		log.Println("[ERROR] forgot-password: no se pudo crear el token:", err)
		return helper.Success(c, resetRequestedMsg, nil)
	}

	// El correo sale por el canal de email de notificaciones; si falla,
	// la respuesta no cambia.
	go sendResetEmail(&user, token)

	return helper.Success(c, resetRequestedMsg, nil)
}

func sendResetEmail(user *userModel.UserModel, token string) {
	frontend := configs.GetEnv("FRONTEND_URL", "http://localhost:5173")
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(frontend, "/"), token)

	subject := "Recuperación de contraseña"
	body := fmt.Sprintf(
		"Hola %s,\n\nPara restablecer tu contraseña haz clic en el siguiente enlace: %s\n\nEl enlace es válido por 24 horas. Si no solicitaste este cambio, ignora este correo.",
		user.UsersFirstName, resetURL,
	)
	if err := notifService.SendPlainEmail(user.UsersEmail, user.FullName(), subject, body); err != nil {
		log.Println("[WARN] forgot-password: no se pudo enviar el correo:", err)
	}
}

/* ==========================
   CONFIRMAR RECUPERACIÓN
========================== */

// POST /api/auth/reset-password
func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.NewPassword != req.NewPasswordConfirm {
		return helper.Error(c, fiber.StatusBadRequest, "Las contraseñas no coinciden")
	}

	var reset authModel.PasswordResetTokenModel
	if err := db.Where("password_reset_tokens_token = ?", strings.TrimSpace(req.Token)).
		First(&reset).Error; err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "El token no es válido o ha expirado")
	}
	if !reset.Usable(nowUTC()) {
		return helper.Error(c, fiber.StatusBadRequest, "El token no es válido o ha expirado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo cifrar la contraseña")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.UserModel{}).
			Where("users_id = ?", reset.PasswordResetTokensUserID).
			Update("users_password", string(hash)).Error; err != nil {
			return err
		}
		// Un solo uso
		return tx.Model(&authModel.PasswordResetTokenModel{}).
			Where("password_reset_tokens_id = ?", reset.PasswordResetTokensID).
			Update("password_reset_tokens_used_at", nowUTC()).Error
	})
	if err != nil {
		log.Println("[ERROR] reset-password:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo restablecer la contraseña")
	}

	// Las sesiones abiertas dejan de poder renovarse
	if err := revokeAllRefreshTokens(db, reset.PasswordResetTokensUserID); err != nil {
		log.Println("[WARN] reset-password: no se pudieron revocar los refresh tokens:", err)
	}

	return helper.Success(c, "La contraseña ha sido restablecida correctamente.", nil)
}
