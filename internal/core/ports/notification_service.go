package ports

import (
	"context"

	"github.com/talentia/contracts-system/internal/core/domain"
)

// CreateNotificationInput carries the data for a single notification record.
type CreateNotificationInput struct {
	UserID   string
	Type     domain.NotificationType
	Title    string
	Message  string
	Metadata domain.Metadata
}

// NotificationService persists notifications and answers read/unread queries.
// Creation additionally triggers a best-effort real-time push that never
// affects the outcome of the call.
type NotificationService interface {
	Create(ctx context.Context, input CreateNotificationInput) (*domain.Notification, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkAsRead(ctx context.Context, notificationID, userID string) error
	MarkAllAsRead(ctx context.Context, userID string) (int64, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

// RealtimePush delivers a notification to the recipient's live connection.
// Delivery is fire-and-forget; the durable record is the source of truth.
type RealtimePush interface {
	Send(ctx context.Context, userID string, n *domain.Notification) error
}

// PushEnqueuer hands a persisted notification to the asynchronous delivery
// pipeline. Enqueue must not block the caller beyond queue admission.
type PushEnqueuer interface {
	Enqueue(n *domain.Notification)
}
