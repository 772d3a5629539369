package ports

import "context"

// Notifier exposes one typed emitter per business event. Each emitter
// composes a fixed title/message pair plus the metadata the client needs to
// deep-link, and delegates to NotificationService.Create. Emitters have no
// state and no failure modes of their own.
//
// ContractSigned and ProjectCompleted are dual-recipient: they write two
// independent notification records, one per party.
type Notifier interface {
	JobApplication(ctx context.Context, companyID, applicantName, jobTitle, applicationID string) error
	JobPosted(ctx context.Context, userID, jobTitle, jobID string) error
	ApplicationStatus(ctx context.Context, applicantID, jobTitle, status, applicationID string) error
	NewMessage(ctx context.Context, recipientID, senderName, conversationID string) error
	ContractSigned(ctx context.Context, freelancerID, clientID, contractTitle, contractID string) error
	PaymentReceived(ctx context.Context, recipientID string, amount float64, currency, paymentID string) error
	PaymentSent(ctx context.Context, payerID string, amount float64, currency, paymentID string) error
	ProjectCompleted(ctx context.Context, freelancerID, clientID, projectName, projectID string) error
	EvaluationReceived(ctx context.Context, userID, evaluatorName, evaluationID string) error
	TaskAssigned(ctx context.Context, assigneeID, taskName, projectName, taskID string) error
	Mention(ctx context.Context, userID, mentionerName, place, refID string) error
	InvitationAccepted(ctx context.Context, inviterID, inviteeName, invitationID string) error
	TaskStatusChanged(ctx context.Context, userID, taskName, status, taskID string) error
}
