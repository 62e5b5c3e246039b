package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotel_manager/model"

	"github.com/redis/go-redis/v9"
)

// RedisNotifier publish sự kiện chuyển trạng thái lên kênh của property,
// websocket handler subscribe kênh này để đẩy realtime xuống dashboard.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func (n *RedisNotifier) Name() string { return "redis" }

func OrderChannel(propertyId uint) string {
	return fmt.Sprintf("property:%d:orders", propertyId)
}

func (n *RedisNotifier) Notify(order *model.Order, rec *model.TransitionRecord) error {
	payload, err := json.Marshal(map[string]any{
		"orderCode": order.PublicCode,
		"from":      rec.From,
		"to":        rec.To,
		"action":    rec.Action,
		"at":        rec.At,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return n.client.Publish(ctx, OrderChannel(order.PropertyID), payload).Err()
}
