package ports

import (
	"context"

	"github.com/talentia/contracts-system/internal/core/domain"
)

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
	// ListByUser returns the user's notifications, newest first, at most limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error)
	// MarkRead flips the read flag of a single notification. The update is
	// conditional on both id and userID matching; an owner mismatch behaves
	// exactly like a missing document (domain.ErrNotificationNotFound).
	MarkRead(ctx context.Context, id, userID string) error
	// MarkAllRead flips the read flag on every unread notification of the
	// user and returns how many documents were modified.
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
}
