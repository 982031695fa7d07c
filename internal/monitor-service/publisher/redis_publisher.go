package publisher

import (
	"VCS_Uptime_Monitor/internal/monitor-service/model"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisPublisher struct {
	client *redis.Client
	ttl    time.Duration
}

func StatusKey(id string) string {
	return fmt.Sprintf("monitor:status:%s", id)
}

// Publish stores the latest status of the monitor. The key expires after ttl
// so that deleted or stopped monitors disappear from the cache.
func (r *redisPublisher) Publish(ctx context.Context, m model.Monitor) error {
	b, err := json.Marshal(model.NewStatusEvent(m))
	if err != nil {
		return fmt.Errorf("RedisPublisher.Publish: %w", err)
	}
	if err = r.client.Set(ctx, StatusKey(m.ID), string(b), r.ttl).Err(); err != nil {
		return fmt.Errorf("RedisPublisher.Publish: %w", err)
	}
	return nil
}

func NewRedisPublisher(client *redis.Client, ttl time.Duration) Publisher {
	return &redisPublisher{
		client: client,
		ttl:    ttl,
	}
}
