// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "akademiku_backend/internals/helpers"
)

/* ======== Extractors ======== */

func extractBearerToken(c *fiber.Ctx) (string, error) {
	// Authorization header, con fallback a cookie
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("no se envió token")
	}

	// Split tolerante a espacios dobles, case-insensitive
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("formato de token inválido")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("token vacío")
	}
	return tok, nil
}

func validateTokenExpiry(claims jwt.MapClaims, skew time.Duration) error {
	expVal, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("token sin exp")
	}

	var expUnix int64
	switch t := expVal.(type) {
	case float64:
		expUnix = int64(t)
	case int64:
		expUnix = t
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return fmt.Errorf("exp inválido")
		}
		expUnix = n
	default:
		return fmt.Errorf("tipo de exp inválido")
	}

	now := time.Now().UTC()
	expTime := time.Unix(expUnix, 0).UTC()
	if now.After(expTime.Add(skew)) {
		return fmt.Errorf("token expiró en %v", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"]
	if !ok {
		return uuid.Nil, fmt.Errorf("token sin sub")
	}
	s, ok := sub.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("sub con tipo inválido")
	}
	return uuid.Parse(strings.TrimSpace(s))
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var row struct {
		UsersIsActive bool
	}
	if err := db.Table("users").
		Select("users_is_active").
		Where("users_id = ? AND users_deleted_at IS NULL", userID).
		Take(&row).Error; err != nil {
		return err
	}
	if !row.UsersIsActive {
		return errors.New("usuario inactivo")
	}
	return nil
}

/* ======== Store claims to Locals ======== */

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals(helper.LocUserRole, role)
	}
}
