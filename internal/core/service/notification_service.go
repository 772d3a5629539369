package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/talentia/contracts-system/internal/core/domain"
	"github.com/talentia/contracts-system/internal/core/ports"
)

// maxNotificationsPage caps how many notifications a single listing returns.
const maxNotificationsPage = 50

// NotificationService turns domain events into durable notification records
// and hands each persisted record to the asynchronous push pipeline. The
// write must succeed for the operation to succeed; the push is best-effort.
type NotificationService struct {
	repo   ports.NotificationRepository
	push   ports.PushEnqueuer
	logger zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, push ports.PushEnqueuer, logger zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, push: push, logger: logger}
}

// Create persists a new unread notification and enqueues a real-time push.
func (s *NotificationService) Create(ctx context.Context, input ports.CreateNotificationInput) (*domain.Notification, error) {
	n := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		Metadata:  input.Metadata,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Str("type", string(input.Type)).Msg("failed to persist notification")
		return nil, fmt.Errorf("create notification: %w", err)
	}

	// The record is committed; delivery failures stay in the push pipeline.
	if s.push != nil {
		s.push.Enqueue(n)
	}

	s.logger.Debug().
		Str("notification_id", n.ID).
		Str("user_id", n.UserID).
		Str("type", string(n.Type)).
		Msg("notification created")

	return n, nil
}

// ListForUser returns the user's most recent notifications, newest first,
// capped at maxNotificationsPage.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID, maxNotificationsPage)
}

// MarkAsRead flips the read flag of one notification owned by userID.
func (s *NotificationService) MarkAsRead(ctx context.Context, notificationID, userID string) error {
	return s.repo.MarkRead(ctx, notificationID, userID)
}

// MarkAllAsRead flips the read flag on all the user's unread notifications.
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID string) (int64, error) {
	modified, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all as read: %w", err)
	}
	return modified, nil
}

// UnreadCount returns the number of unread notifications for badge display.
func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}
