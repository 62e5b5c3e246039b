package validate

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetByCode(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params(key)
		if code == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("params invalid"))
		}

		// Save input to context locals
		c.Locals("orderCode", code)

		// Continue to next handler
		return c.Next()
	}
}
