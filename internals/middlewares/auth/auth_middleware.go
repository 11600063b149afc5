// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"akademiku_backend/internals/configs"
	authModel "akademiku_backend/internals/features/users/auth/model"
	helper "akademiku_backend/internals/helpers"
)

func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Authorization header (o cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Blacklist (una vez por request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			if err := db.Where("token_blacklist_token = ?", tokenString).First(&existing).Error; err == nil {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revocado")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] blacklist lookup:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 3) Parse & verificación de firma
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vacío")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido")
		}

		// Solo tokens de acceso pasan por aquí
		if typ, _ := claims["typ"].(string); typ != "" && typ != "access" {
			return fiber.NewError(fiber.StatusUnauthorized, "Tipo de token inválido")
		}

		// 4) Expiración (con skew)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token expirado")
		}

		// 5) user_id + usuario activo
		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sin usuario válido")
		}
		c.Locals(helper.LocUserID, userID.String())

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Usuario no encontrado")
			}
			return fiber.NewError(fiber.StatusForbidden, "Tu cuenta está desactivada")
		}

		// 6) Claims básicos a Locals (rol)
		storeBasicClaimsToLocals(c, claims)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}
