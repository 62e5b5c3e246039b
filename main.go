package main

import (
	"log"

	"hotel_manager/config"
	"hotel_manager/database"
	"hotel_manager/handler"
	"hotel_manager/helper"
	"hotel_manager/notify"
	"hotel_manager/router"
	"hotel_manager/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	orders := store.NewOrderStore(database.DB)

	redisClient := redis.NewClient(&redis.Options{
		Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
	})

	dispatcher := notify.NewDispatcher(
		notify.NewGuestEmailNotifier(),
		notify.NewRedisNotifier(redisClient),
	)
	if gateway := config.Config("WHATSAPP_GATEWAY_URL"); gateway != "" {
		dispatcher.Register(notify.NewWhatsAppNotifier(
			notify.NewWhatsAppClient(gateway, config.Config("WHATSAPP_GATEWAY_TOKEN")),
		))
	}

	handler.Init(orders, dispatcher)

	helper.StartOrderSweeper(orders, dispatcher)
	defer helper.StopOrderSweeper()
	helper.StartMenuScheduler()
	defer helper.StopMenuScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
