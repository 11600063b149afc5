package service

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"akademiku_backend/internals/configs"
	"akademiku_backend/internals/constants"
	authDTO "akademiku_backend/internals/features/users/auth/dto"
	authModel "akademiku_backend/internals/features/users/auth/model"
	userDTO "akademiku_backend/internals/features/users/user/dto"
	userModel "akademiku_backend/internals/features/users/user/model"
	helper "akademiku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */

// El registro público siempre crea APRENDIZ. Cuando la petición llega por la
// ruta de administración (Locals con rol ADMINISTRADOR), se respeta el rol
// pedido en el body.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req userDTO.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Password != req.PasswordConfirm {
		return helper.Error(c, fiber.StatusBadRequest, "Las contraseñas no coinciden")
	}

	user := req.ToModel()

	if req.UsersRole != nil {
		callerRole, _ := c.Locals(helper.LocUserRole).(string)
		if callerRole == string(constants.RoleAdministrator) {
			r, err := constants.ParseRole(*req.UsersRole)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, err.Error())
			}
			user.UsersRole = r
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo cifrar la contraseña")
	}
	user.UsersPassword = string(hash)

	if err := db.Create(user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusConflict, "El documento o el correo ya está registrado")
		}
		log.Println("[ERROR] register:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registro exitoso", userDTO.NewUserResponse(user))
}

/* ==========================
   LOGIN (documento + contraseña)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.Where("users_document_number = ?", strings.TrimSpace(req.DocumentNumber)).
		First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Documento o contraseña incorrectos")
	}
	if !user.UsersIsActive {
		return helper.Error(c, fiber.StatusForbidden, "Tu cuenta está desactivada. Contacta al administrador.")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UsersPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Documento o contraseña incorrectos")
	}

	// Último acceso, best-effort
	now := nowUTC()
	if err := db.Model(&userModel.UserModel{}).
		Where("users_id = ?", user.UsersID).
		UpdateColumn("users_last_login_at", now).Error; err != nil {
		log.Println("[WARN] login: no se pudo registrar el último acceso:", err)
	}
	user.UsersLastLoginAt = &now

	accessToken, refreshToken, err := mintTokenPair(db, c, &user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Inicio de sesión exitoso", authDTO.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         userDTO.NewUserResponse(&user),
	})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	accessToken := helper.GetRawAccessToken(c)

	// Blacklist del access token (idempotente)
	if accessToken != "" {
		entry := &authModel.TokenBlacklistModel{
			TokenBlacklistToken:     accessToken,
			TokenBlacklistExpiredAt: nowUTC().Add(resolveBlacklistTTL(accessToken)),
		}
		if err := db.Create(entry).Error; err != nil && !helper.IsUniqueViolation(err) {
			log.Println("[WARN] logout: no se pudo poner el token en blacklist:", err)
		}
	}

	// Revocar el refresh token que venga en cookie
	if rt := strings.TrimSpace(c.Cookies("refresh_token")); rt != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			hash := computeRefreshHash(rt, refreshSecret)
			if err := db.Model(&authModel.RefreshTokenModel{}).
				Where("refresh_tokens_token_hash = ? AND refresh_tokens_revoked_at IS NULL", hash).
				Update("refresh_tokens_revoked_at", nowUTC()).Error; err != nil {
				log.Println("[WARN] logout: no se pudo revocar el refresh token:", err)
			}
		}
	}

	clearAuthCookies(c)
	return helper.Success(c, "Sesión cerrada correctamente", nil)
}

// TTL de blacklist: hasta el exp del token (+1m de margen), con override por env.
func resolveBlacklistTTL(accessToken string) time.Duration {
	ttl := 2 * time.Minute
	if v := configs.GetEnv("BLACKLIST_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	jwtSecret := strings.TrimSpace(configs.JWTSecret)
	if jwtSecret == "" || accessToken == "" {
		return ttl
	}
	if tok, err := jwt.Parse(accessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}); err == nil {
		if claims, ok := tok.Claims.(jwt.MapClaims); ok && tok.Valid {
			if exp, ok := claims["exp"].(float64); ok {
				until := time.Until(time.Unix(int64(exp), 0))
				if until > 0 {
					return until + time.Minute
				}
				return time.Minute
			}
		}
	}
	return ttl
}

/* ==========================
   CHANGE PASSWORD
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.NewPassword != req.NewPasswordConfirm {
		return helper.Error(c, fiber.StatusBadRequest, "Las nuevas contraseñas no coinciden")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "users_id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UsersPassword), []byte(req.CurrentPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "La contraseña actual no coincide")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo cifrar la contraseña")
	}
	if err := db.Model(&userModel.UserModel{}).
		Where("users_id = ?", userID).
		Update("users_password", string(hash)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la contraseña")
	}

	return helper.Success(c, "Contraseña actualizada correctamente", nil)
}
