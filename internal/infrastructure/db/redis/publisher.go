package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/talentia/contracts-system/internal/core/domain"
)

// NotificationPublisher implements ports.RealtimePush over Redis pub/sub.
// Each user has a dedicated channel; the WebSocket hub subscribes it for
// every live connection. Publishing to a channel with no subscribers is a
// no-op; offline recipients catch up from the stored records.
type NotificationPublisher struct {
	client *redis.Client
}

func NewNotificationPublisher(client *redis.Client) *NotificationPublisher {
	return &NotificationPublisher{client: client}
}

// UserChannel returns the pub/sub channel carrying a user's live notifications.
func UserChannel(userID string) string {
	return "notify:user:" + userID
}

// Send publishes the notification as JSON on the recipient's channel.
func (p *NotificationPublisher) Send(ctx context.Context, userID string, n *domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	if err := p.client.Publish(ctx, UserChannel(userID), payload).Err(); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}
