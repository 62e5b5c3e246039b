package validate

import (
	"fmt"
	"strconv"

	"hotel_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateServiceItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateServiceItemInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// EditServiceItem kiểm tra id trên path và body sửa món trước khi vào handler.
func EditServiceItem(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemId, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "ID không hợp lệ",
			})
		}

		var input model.EditServiceItemInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("itemId", itemId)
		c.Locals("input", input)
		return c.Next()
	}
}
