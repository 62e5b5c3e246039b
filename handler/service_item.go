package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/jinzhu/copier"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateServiceItem(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	input, _ := c.Locals("input").(model.CreateServiceItemInput)

	var item model.ServiceItem
	copier.Copy(&item, &input)
	item.IsAvailable = true
	if item.Currency == "" {
		item.Currency = "VND"
	}

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo món", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func EditServiceItem(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	itemId, _ := c.Locals("itemId").(int)
	input, _ := c.Locals("input").(model.EditServiceItemInput)

	var item model.ServiceItem
	if err := database.DB.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Không tìm thấy món", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	copier.CopyWithOption(&item, &input, copier.Option{IgnoreEmpty: true})
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể cập nhật món", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func GetServiceItems(c *fiber.Ctx) error {
	claim, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	if claim.PropertyId == nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Tài khoản chưa gắn với khách sạn nào", nil)
	}

	var items []model.ServiceItem
	if err := database.DB.
		Where("property_id = ?", *claim.PropertyId).
		Order("category, name").
		Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}
