package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"akademiku_backend/internals/constants"
)

// Locals keys que llena el middleware de auth.
const (
	LocUserID   = "user_id"
	LocUserRole = "user_role"
	LocRawToken = "raw_token"
)

// Toma user_id de c.Locals("user_id").
// 401 si no hay sesión, 400 si el formato no es válido.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v := c.Locals(LocUserID)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
	}

	switch t := v.(type) {
	case uuid.UUID:
		if t == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		return t, nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID del token no es válido")
		}
		return id, nil
	case []byte:
		s := strings.TrimSpace(string(t))
		if s == "" {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID del token no es válido")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "User ID del token no es válido")
	}
}

// Toma el rol (enum cerrado) de c.Locals("user_role").
func GetUserRoleFromToken(c *fiber.Ctx) (constants.Role, error) {
	v := c.Locals(LocUserRole)
	if v == nil {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
	}

	switch t := v.(type) {
	case constants.Role:
		if !t.IsValid() {
			return "", fiber.NewError(fiber.StatusForbidden, "Rol del token no es válido")
		}
		return t, nil
	case string:
		r, err := constants.ParseRole(strings.TrimSpace(t))
		if err != nil {
			return "", fiber.NewError(fiber.StatusForbidden, "Rol del token no es válido")
		}
		return r, nil
	default:
		return "", fiber.NewError(fiber.StatusForbidden, "Rol del token no es válido")
	}
}

// IsStaff: administrador o instructor.
func IsStaff(r constants.Role) bool {
	switch r {
	case constants.RoleAdministrator, constants.RoleInstructor:
		return true
	case constants.RoleApprentice:
		return false
	}
	return false
}
