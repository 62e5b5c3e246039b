package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"

	"github.com/gofiber/fiber/v2"
)

func CreateProperty(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	input, _ := c.Locals("input").(model.CreatePropertyInput)

	var newProperty model.Property
	copier.Copy(&newProperty, &input)
	newProperty.Slug = slug.Make(input.Name)
	newProperty.IsActive = true
	if newProperty.Timezone == "" {
		newProperty.Timezone = "Asia/Ho_Chi_Minh"
	}

	var existing model.Property
	if err := database.DB.Where("slug = ?", newProperty.Slug).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Khách sạn đã tồn tại", nil)
	}

	if err := database.DB.Create(&newProperty).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo khách sạn", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, newProperty)
}

func GetProperties(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	var properties []model.Property
	if err := database.DB.Preload("Rooms").Order("id").Find(&properties).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, properties)
}

func CreateRoom(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	input, _ := c.Locals("input").(model.CreateRoomInput)

	var room model.Room
	copier.Copy(&room, &input)

	var existing model.Room
	if err := database.DB.Where("property_id = ? AND number = ?", input.PropertyId, input.Number).First(&existing).Error; err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Số phòng đã tồn tại", nil)
	}

	if err := database.DB.Create(&room).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo phòng", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, room)
}

func GetRoomsByProperty(c *fiber.Ctx) error {
	claim, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	if claim.PropertyId == nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Tài khoản chưa gắn với khách sạn nào", nil)
	}

	var rooms []model.Room
	if err := database.DB.Where("property_id = ?", *claim.PropertyId).Order("number").Find(&rooms).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, rooms)
}
