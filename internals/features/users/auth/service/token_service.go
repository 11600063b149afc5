// internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"akademiku_backend/internals/configs"
	authModel "akademiku_backend/internals/features/users/auth/model"
	userModel "akademiku_backend/internals/features/users/user/model"
	helper "akademiku_backend/internals/helpers"
)

/* ==========================
   Const & TTLs
========================== */

const (
	accessTTLDefault  = 15 * time.Minute
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func accessTTL() time.Duration {
	if v := configs.GetEnv("JWT_ACCESS_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return accessTTLDefault
}

func refreshTTL() time.Duration {
	if v := configs.GetEnv("JWT_REFRESH_TTL_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * 24 * time.Hour
		}
	}
	return refreshTTLDefault
}

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(configs.GetEnv("JWT_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET sin configurar")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(configs.GetEnv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET sin configurar")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Se persiste el HMAC-SHA256 del refresh token, nunca el texto plano.
func computeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

/* ==========================
   Claims builders
========================== */

func buildAccessClaims(user *userModel.UserModel, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":             "access",
		"sub":             user.UsersID.String(),
		"role":            string(user.UsersRole),
		"document_number": user.UsersDocumentNumber,
		"full_name":       user.FullName(),
		"iat":             now.Unix(),
		"exp":             now.Add(ttl).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time, ttl time.Duration) jwt.MapClaims {
	return jwt.MapClaims{
		"typ": "refresh",
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
}

/* ==========================
   Emisión de pares de tokens
========================== */

// mintTokenPair firma access+refresh, persiste el hash del refresh (con
// user agent e IP) y deja ambos tokens en cookies httpOnly.
func mintTokenPair(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) (string, string, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := nowUTC()
	aTTL, rTTL := accessTTL(), refreshTTL()

	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now, aTTL)).
		SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el access token")
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.UsersID, now, rTTL)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "No se pudo generar el refresh token")
	}

	rt := &authModel.RefreshTokenModel{
		RefreshTokensUserID:    user.UsersID,
		RefreshTokensTokenHash: computeRefreshHash(refreshToken, refreshSecret),
		RefreshTokensExpiresAt: now.Add(rTTL),
		RefreshTokensUserAgent: strptr(c.Get("User-Agent")),
		RefreshTokensIP:        strptr(c.IP()),
	}
	if err := db.Create(rt).Error; err != nil {
		return "", "", fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar el refresh token")
	}

	setAuthCookies(c, accessToken, refreshToken, now, aTTL, rTTL)
	return accessToken, refreshToken, nil
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, now time.Time, aTTL, rTTL time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(aTTL),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(rTTL),
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{"access_token", "refresh_token"} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			HTTPOnly: true,
			Secure:   true,
			SameSite: "None",
			Path:     "/",
			Expires:  expired,
			MaxAge:   -1,
		})
	}
}

/* ==========================
   REFRESH TOKEN (rotación)
========================== */

// POST /api/auth/refresh-token
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Cookies("refresh_token"))
	if raw == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		raw = strings.TrimSpace(body.RefreshToken)
	}
	if raw == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "No se envió refresh token")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return helper.Error(c, fiber.StatusUnauthorized, "Tipo de token inválido")
	}
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	// El hash debe existir, sin revocar y sin vencer
	hash := computeRefreshHash(raw, refreshSecret)
	var stored authModel.RefreshTokenModel
	if err := db.
		Where("refresh_tokens_token_hash = ? AND refresh_tokens_revoked_at IS NULL AND refresh_tokens_expires_at > ?", hash, nowUTC()).
		First(&stored).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token no reconocido")
	}

	var user userModel.UserModel
	if err := db.First(&user, "users_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}
	if !user.UsersIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Tu cuenta está desactivada")
	}

	// ROTACIÓN: se revoca el token usado antes de emitir el nuevo par
	now := nowUTC()
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("refresh_tokens_id = ?", stored.RefreshTokensID).
		Update("refresh_tokens_revoked_at", now).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo rotar el refresh token")
	}

	accessToken, refreshToken, err := mintTokenPair(db, c, &user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Token renovado", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

// Revoca todos los refresh tokens vivos de un usuario (p.ej. tras reset).
func revokeAllRefreshTokens(db *gorm.DB, userID uuid.UUID) error {
	return db.Model(&authModel.RefreshTokenModel{}).
		Where("refresh_tokens_user_id = ? AND refresh_tokens_revoked_at IS NULL", userID).
		Update("refresh_tokens_revoked_at", nowUTC()).Error
}
