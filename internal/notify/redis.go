package notify

import (
	"context"
	"io"
	"log"

	"github.com/redis/go-redis/v9"
)

// Channel is the redis pub/sub channel cart changes are published on.
const Channel = "cart.changed"

// RedisPublisher mirrors cart-changed events onto redis pub/sub so other
// processes (or browser sessions connected elsewhere) can observe them.
type RedisPublisher struct {
	client *redis.Client
	logger *log.Logger
}

func NewRedisPublisher(client *redis.Client, logger *log.Logger) *RedisPublisher {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &RedisPublisher{client: client, logger: logger}
}

func (p *RedisPublisher) CartChanged(ctx context.Context, userID string) {
	if err := p.client.Publish(ctx, Channel, userID).Err(); err != nil {
		// Notification is best-effort; the mutation already succeeded.
		p.logger.Printf("notify: publish user_id=%s error=%v", userID, err)
	}
}
