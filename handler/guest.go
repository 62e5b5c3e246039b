package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/notify"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// POST /api/v1/khach-san/:slug/don-hang — khách đặt dịch vụ phòng
func PlaceOrder(c *fiber.Ctx) error {
	propertySlug := c.Params("slug")

	var property model.Property
	if err := database.DB.Where("slug = ? AND is_active IS true", propertySlug).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Khách sạn không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	input, _ := c.Locals("input").(model.CreateOrderInput)

	// Phòng là weak reference: sai số phòng thì báo lỗi chứ không tự tạo
	var roomId *uint
	if input.RoomNumber != nil && *input.RoomNumber != "" {
		var room model.Room
		if err := database.DB.Where("property_id = ? AND number = ?", property.ID, *input.RoomNumber).First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Số phòng không tồn tại", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		roomId = &room.ID
	}

	order, err := model.NewOrder(property.ID, roomId, input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	if err := Orders.Insert(c.Context(), order); err != nil {
		if errors.Is(err, model.ErrConflict) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ORDER_CODE_DUPLICATED, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Không thể tạo đơn hàng", err)
	}

	// Báo bộ phận trực, không chặn response
	go notify.SendNewOrderAlert(order)

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

// GET /api/v1/don-hang/:orderCode — khách tra cứu đơn theo mã
func TrackOrder(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	order, err := Orders.GetByCode(c.Context(), orderCode)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":   order,
		"actions": order.AvailableActions(),
	})
}

// POST /api/v1/don-hang/:orderCode/cancel — khách tự hủy khi đơn chưa giao
func CancelOrderByGuest(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	order, rec, err := Orders.UpdateStatus(c.Context(), orderCode, model.ActionCancel, nil, "guest")
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		case errors.Is(err, model.ErrInvalidTransition):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Đơn hàng không thể hủy ở trạng thái hiện tại", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	go Dispatcher.Dispatch(order, rec)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Hủy đơn hàng thành công!",
		"order":   order,
	})
}

// GET /api/v1/khach-san/:slug/menu — thực đơn dịch vụ phòng
func GetServiceMenu(c *fiber.Ctx) error {
	propertySlug := c.Params("slug")

	var property model.Property
	if err := database.DB.Where("slug = ? AND is_active IS true", propertySlug).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Khách sạn không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var items []model.ServiceItem
	if err := database.DB.
		Where("property_id = ? AND is_available IS true", property.ID).
		Order("category, name").
		Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tải thực đơn", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"property": fiber.Map{
			"name": property.Name,
			"slug": property.Slug,
		},
		"items": items,
	})
}
