package handler

import (
	"context"
	"strconv"
	"sync"

	"hotel_manager/config"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/notify"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once

	feedClients = make(map[uint]map[*websocket.Conn]bool)
	feedMu      sync.Mutex
)

func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		redisClient = redis.NewClient(&redis.Options{
			Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		})
	})
	return redisClient
}

// OrderFeedSocket đẩy realtime trạng thái đơn cho dashboard của một property.
// Mỗi transition được RedisNotifier publish lên kênh property:<id>:orders,
// handler này subscribe và forward xuống mọi client đang mở.
func OrderFeedSocket(c *websocket.Conn) {
	propertyIdStr := c.Params("propertyId")
	id64, _ := strconv.ParseUint(propertyIdStr, 10, 64)
	propertyId := uint(id64)

	// Khi WS disconnect → xoá client
	defer func() {
		feedMu.Lock()
		if feedClients[propertyId] != nil {
			delete(feedClients[propertyId], c)
		}
		feedMu.Unlock()
		c.Close()
	}()

	feedMu.Lock()
	if feedClients[propertyId] == nil {
		feedClients[propertyId] = make(map[*websocket.Conn]bool)
	}
	feedClients[propertyId][c] = true
	feedMu.Unlock()

	// Gửi danh sách đơn đang mở lần đầu
	var openOrders []model.Order
	database.DB.Preload("Items").Preload("Room").
		Where("property_id = ? AND status IN ?", propertyId,
			[]model.OrderStatus{model.OrderPending, model.OrderConfirmed, model.OrderPreparing, model.OrderReady}).
		Order("created_at desc").
		Find(&openOrders)
	c.WriteJSON(openOrders)

	// Sub kênh Redis của property
	pubsub := getRedisClient().Subscribe(
		context.Background(),
		notify.OrderChannel(propertyId),
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		feedMu.Lock()
		conns := feedClients[propertyId]
		for conn := range conns {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				delete(conns, conn)
				conn.Close()
			}
		}
		feedMu.Unlock()
	}
}
