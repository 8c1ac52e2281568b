package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NotifyChannel 是导出结果的 Redis Pub/Sub 频道，API 进程订阅后转发给 WebSocket。
const NotifyChannel = "resume_notify"

const (
	StatusCompleted = "completed"
	StatusError     = "error"
)

// NotifyMessage 是通过 Redis 转发给前端的导出结果。
// 字段名与前端解析保持一致。
type NotifyMessage struct {
	Type          string `json:"type"`
	Status        string `json:"status"`
	Format        Format `json:"format"`
	Version       uint64 `json:"version"`
	CorrelationID string `json:"correlation_id"`
	URL           string `json:"url,omitempty"`
	ErrorCode     int    `json:"error_code"`
	ErrorMessage  string `json:"error_message"`
}

const notifyType = "export"

// Publisher 发布导出结果。
type Publisher interface {
	Publish(ctx context.Context, msg NotifyMessage) error
}

type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client, channel: NotifyChannel}
}

func (p *RedisPublisher) Publish(ctx context.Context, msg NotifyMessage) error {
	msg.Type = notifyType
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish redis notification to %q: %w", p.channel, err)
	}
	return nil
}
