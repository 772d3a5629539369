package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/talentia/contracts-system/internal/core/domain"
	"github.com/talentia/contracts-system/internal/core/ports"
)

// Notifier implements ports.Notifier: one declarative emitter per business
// event, each composing wording from the catalog plus the metadata payload
// the client needs to deep-link. All emitters delegate to the notification
// service; they carry no state of their own.
type Notifier struct {
	notifications ports.NotificationService
	catalog       MessageCatalog
}

// NewNotifier builds a Notifier. A nil catalog falls back to DefaultCatalog.
func NewNotifier(notifications ports.NotificationService, catalog MessageCatalog) *Notifier {
	if catalog == nil {
		catalog = DefaultCatalog
	}
	return &Notifier{notifications: notifications, catalog: catalog}
}

func (n *Notifier) emit(ctx context.Context, userID string, typ domain.NotificationType, meta domain.Metadata, args ...any) error {
	tpl, ok := n.catalog[typ]
	if !ok {
		return fmt.Errorf("no message template for event type %q", typ)
	}
	_, err := n.notifications.Create(ctx, ports.CreateNotificationInput{
		UserID:   userID,
		Type:     typ,
		Title:    tpl.Title,
		Message:  fmt.Sprintf(tpl.Format, args...),
		Metadata: meta,
	})
	return err
}

// JobApplication notifies a company that someone applied to its job posting.
func (n *Notifier) JobApplication(ctx context.Context, companyID, applicantName, jobTitle, applicationID string) error {
	return n.emit(ctx, companyID, domain.NotifJobApplication, domain.Metadata{
		"jobTitle":      jobTitle,
		"applicationId": applicationID,
		"action":        "view_application",
	}, applicantName, jobTitle)
}

// JobPosted notifies a professional that a job matching their profile went live.
func (n *Notifier) JobPosted(ctx context.Context, userID, jobTitle, jobID string) error {
	return n.emit(ctx, userID, domain.NotifJobPosted, domain.Metadata{
		"jobTitle": jobTitle,
		"jobId":    jobID,
		"action":   "view_job",
	}, jobTitle)
}

// ApplicationStatus notifies an applicant that their application changed state.
func (n *Notifier) ApplicationStatus(ctx context.Context, applicantID, jobTitle, status, applicationID string) error {
	return n.emit(ctx, applicantID, domain.NotifApplicationStatus, domain.Metadata{
		"jobTitle":      jobTitle,
		"status":        status,
		"applicationId": applicationID,
		"action":        "view_application",
	}, jobTitle, status)
}

// NewMessage notifies a user about an incoming chat message.
func (n *Notifier) NewMessage(ctx context.Context, recipientID, senderName, conversationID string) error {
	return n.emit(ctx, recipientID, domain.NotifNewMessage, domain.Metadata{
		"senderName":     senderName,
		"conversationId": conversationID,
		"action":         "open_conversation",
	}, senderName)
}

// ContractSigned notifies both parties that the contract is fully executed.
// Two independent records are written, one per recipient.
func (n *Notifier) ContractSigned(ctx context.Context, freelancerID, clientID, contractTitle, contractID string) error {
	meta := domain.Metadata{
		"contractTitle": contractTitle,
		"contractId":    contractID,
		"action":        "view_contract",
	}
	return errors.Join(
		n.emit(ctx, freelancerID, domain.NotifContractSigned, meta, contractTitle),
		n.emit(ctx, clientID, domain.NotifContractSigned, meta, contractTitle),
	)
}

// PaymentReceived notifies the payee.
func (n *Notifier) PaymentReceived(ctx context.Context, recipientID string, amount float64, currency, paymentID string) error {
	return n.emit(ctx, recipientID, domain.NotifPaymentReceived, domain.Metadata{
		"amount":    amount,
		"currency":  currency,
		"paymentId": paymentID,
		"action":    "view_payment",
	}, amount, currency)
}

// PaymentSent notifies the payer.
func (n *Notifier) PaymentSent(ctx context.Context, payerID string, amount float64, currency, paymentID string) error {
	return n.emit(ctx, payerID, domain.NotifPaymentSent, domain.Metadata{
		"amount":    amount,
		"currency":  currency,
		"paymentId": paymentID,
		"action":    "view_payment",
	}, amount, currency)
}

// ProjectCompleted notifies both parties. Two independent records are written.
func (n *Notifier) ProjectCompleted(ctx context.Context, freelancerID, clientID, projectName, projectID string) error {
	meta := domain.Metadata{
		"projectName": projectName,
		"projectId":   projectID,
		"action":      "view_project",
	}
	return errors.Join(
		n.emit(ctx, freelancerID, domain.NotifProjectCompleted, meta, projectName),
		n.emit(ctx, clientID, domain.NotifProjectCompleted, meta, projectName),
	)
}

// EvaluationReceived notifies a user that they were evaluated.
func (n *Notifier) EvaluationReceived(ctx context.Context, userID, evaluatorName, evaluationID string) error {
	return n.emit(ctx, userID, domain.NotifEvaluationReceived, domain.Metadata{
		"evaluatorName": evaluatorName,
		"evaluationId":  evaluationID,
		"action":        "view_evaluation",
	}, evaluatorName)
}

// TaskAssigned notifies the assignee of a new task.
func (n *Notifier) TaskAssigned(ctx context.Context, assigneeID, taskName, projectName, taskID string) error {
	return n.emit(ctx, assigneeID, domain.NotifTaskAssigned, domain.Metadata{
		"taskName":    taskName,
		"projectName": projectName,
		"taskId":      taskID,
		"action":      "view_task",
	}, taskName, projectName)
}

// Mention notifies a user that they were mentioned somewhere.
func (n *Notifier) Mention(ctx context.Context, userID, mentionerName, place, refID string) error {
	return n.emit(ctx, userID, domain.NotifMention, domain.Metadata{
		"mentionerName": mentionerName,
		"context":       place,
		"refId":         refID,
		"action":        "view_mention",
	}, mentionerName, place)
}

// InvitationAccepted notifies the inviter that their invitation was accepted.
func (n *Notifier) InvitationAccepted(ctx context.Context, inviterID, inviteeName, invitationID string) error {
	return n.emit(ctx, inviterID, domain.NotifInvitationAccepted, domain.Metadata{
		"inviteeName":  inviteeName,
		"invitationId": invitationID,
		"action":       "view_team",
	}, inviteeName)
}

// TaskStatusChanged notifies a watcher that a task moved to a new state.
func (n *Notifier) TaskStatusChanged(ctx context.Context, userID, taskName, status, taskID string) error {
	return n.emit(ctx, userID, domain.NotifTaskStatusChanged, domain.Metadata{
		"taskName": taskName,
		"status":   status,
		"taskId":   taskID,
		"action":   "view_task",
	}, taskName, status)
}
