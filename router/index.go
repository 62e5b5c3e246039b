package router

import (
	"hotel_manager/handler"
	"hotel_manager/middleware"
	"hotel_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)

	// Dashboard nhân viên
	orders := v1.Group("/orders", logger.New())
	orders.Get("/", middleware.Protected(), handler.GetOrders)
	orders.Get("/stats", middleware.Protected(), handler.GetOrderStats)
	orders.Get("/feed/:propertyId", middleware.Protected(), websocket.New(handler.OrderFeedSocket))
	orders.Get("/:orderCode", middleware.Protected(), validate.GetByCode("orderCode"), handler.GetOrderByCode)
	orders.Get("/:orderCode/actions", middleware.Protected(), validate.GetByCode("orderCode"), handler.GetOrderActions)
	orders.Get("/:orderCode/history", middleware.Protected(), validate.GetByCode("orderCode"), handler.GetOrderHistory)
	orders.Patch("/:orderCode/action", middleware.Protected(), validate.OrderAction("orderCode"), handler.ApplyOrderAction)

	property := v1.Group("/property", logger.New())
	property.Get("/", middleware.Protected(), handler.GetProperties)
	property.Post("/", middleware.Protected(), validate.CreateProperty(), handler.CreateProperty)
	property.Get("/rooms", middleware.Protected(), handler.GetRoomsByProperty)
	property.Post("/rooms", middleware.Protected(), validate.CreateRoom(), handler.CreateRoom)

	serviceItem := v1.Group("/service-item", logger.New())
	serviceItem.Get("/", middleware.Protected(), handler.GetServiceItems)
	serviceItem.Post("/", middleware.Protected(), validate.CreateServiceItem(), handler.CreateServiceItem)
	serviceItem.Put("/:itemId", middleware.Protected(), validate.EditServiceItem("itemId"), handler.EditServiceItem)
	serviceItem.Post("/:itemId/image", middleware.Protected(), handler.UploadServiceItemImage)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	// Khách (không cần đăng nhập)
	khachsan := v1.Group("/khach-san")
	khachsan.Get("/:slug/menu", handler.GetServiceMenu)
	khachsan.Post("/:slug/don-hang", validate.CreateOrder(), handler.PlaceOrder)

	donhang := v1.Group("/don-hang")
	donhang.Get("/:orderCode", handler.TrackOrder)
	donhang.Post("/:orderCode/cancel", handler.CancelOrderByGuest)
}
