package handler

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GET /api/v1/orders?status=pending,confirmed&search=...&limit=10&page=1
func GetOrders(c *fiber.Ctx) error {
	claim, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	if claim.PropertyId == nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Tài khoản chưa gắn với khách sạn nào", nil)
	}

	filterInput := new(model.FilterOrderInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	orders, totalCount, err := Orders.List(c.Context(), *claim.PropertyId, *filterInput)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tải danh sách đơn", err)
	}

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// GET /api/v1/orders/:orderCode
func GetOrderByCode(c *fiber.Ctx) error {
	orderCode, _ := c.Locals("orderCode").(string)

	order, err := Orders.GetByCode(c.Context(), orderCode)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// PATCH /api/v1/orders/:orderCode/action
// Body: { "action": "confirm" | "reject" | "start_preparing" | "mark_ready" | "mark_delivered" | "cancel", "reason": "..." }
func ApplyOrderAction(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Vui lòng đăng nhập", nil)
	}

	orderCode, _ := c.Locals("orderCode").(string)
	input, _ := c.Locals("input").(model.OrderActionInput)

	order, rec, err := Orders.UpdateStatus(c.Context(), orderCode, input.Action, input.Reason, claim.Username)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		case errors.Is(err, model.ErrUnknownAction):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ORDER_ACTION_UNKNOWN, err)
		case errors.Is(err, model.ErrInvalidTransition):
			// client đang nhìn trạng thái cũ → bảo họ refresh, không retry mù
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ORDER_MOVED_ON, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	// Thông báo khách + đẩy realtime, không chặn response
	go Dispatcher.Dispatch(order, rec)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":      order,
		"transition": rec,
	})
}

// GET /api/v1/orders/:orderCode/actions — nút thao tác khả dụng cho dashboard
func GetOrderActions(c *fiber.Ctx) error {
	orderCode, _ := c.Locals("orderCode").(string)

	order, err := Orders.GetByCode(c.Context(), orderCode)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"status":  order.Status,
		"actions": order.AvailableActions(),
	})
}

// GET /api/v1/orders/:orderCode/history
func GetOrderHistory(c *fiber.Ctx) error {
	orderCode, _ := c.Locals("orderCode").(string)

	logs, err := Orders.History(c.Context(), orderCode)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, logs)
}

// GET /api/v1/orders/stats — đếm đơn theo trạng thái cho badge trên dashboard
func GetOrderStats(c *fiber.Ctx) error {
	claim, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}
	if claim.PropertyId == nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Tài khoản chưa gắn với khách sạn nào", nil)
	}

	type statusCount struct {
		Status model.OrderStatus `json:"status"`
		Count  int64             `json:"count"`
	}
	var counts []statusCount
	if err := database.DB.Model(&model.Order{}).
		Select("status, count(*) as count").
		Where("property_id = ?", *claim.PropertyId).
		Group("status").
		Scan(&counts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, counts)
}
