package domain

import (
	"errors"
	"time"
)

// NotificationType tags a notification with the business event that produced it.
type NotificationType string

const (
	NotifJobApplication     NotificationType = "job_application"
	NotifJobPosted          NotificationType = "job_posted"
	NotifApplicationStatus  NotificationType = "application_status"
	NotifNewMessage         NotificationType = "new_message"
	NotifContractSigned     NotificationType = "contract_signed"
	NotifPaymentReceived    NotificationType = "payment_received"
	NotifPaymentSent        NotificationType = "payment_sent"
	NotifProjectCompleted   NotificationType = "project_completed"
	NotifEvaluationReceived NotificationType = "evaluation_received"
	NotifTaskAssigned       NotificationType = "task_assigned"
	NotifMention            NotificationType = "mention"
	NotifInvitationAccepted NotificationType = "invitation_accepted"
	NotifTaskStatusChanged  NotificationType = "task_status_changed"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Metadata is the open key-value payload carried by a notification. Each
// event type has its own shape; values must round-trip through JSON.
type Metadata map[string]any

// Notification is a durable per-recipient record of a domain event.
// Content is immutable after creation; only the read flag ever changes.
type Notification struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	UserID    string           `json:"user_id" bson:"user_id"`
	Type      NotificationType `json:"type" bson:"type"`
	Title     string           `json:"title" bson:"title"`
	Message   string           `json:"message" bson:"message"`
	Metadata  Metadata         `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Read      bool             `json:"read" bson:"read"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
}
