package auth

import (
	"github.com/gofiber/fiber/v2"

	"akademiku_backend/internals/constants"
	helper "akademiku_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError valida el rol (enum cerrado) + mensaje custom.
func RoleMiddlewareWithCustomError(allowedRoles []constants.Role, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, ok := c.Locals(helper.LocUserRole).(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: falta información de rol",
			})
		}

		role, err := constants.ParseRole(raw)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Rol desconocido",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "No tienes permiso para acceder a este recurso"
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}

// OnlyRoles: atajo para registrar guards por ruta.
func OnlyRoles(customMessage string, roles ...constants.Role) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
