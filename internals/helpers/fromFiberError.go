package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError convierte un error salido de una Transaction (normalmente
// *fiber.Error) en el envelope JSON estándar via helper.Error.
// Si no es *fiber.Error, cae a 500 con el mensaje original.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
