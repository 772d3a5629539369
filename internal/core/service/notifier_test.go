package service

import (
	"context"
	"strings"
	"testing"

	"github.com/talentia/contracts-system/internal/core/domain"
)

func newNotifier(t *testing.T) (*Notifier, *stubNotificationRepo) {
	t.Helper()
	repo := newStubNotificationRepo()
	svc := newNotificationSvc(repo, &stubEnqueuer{})
	return NewNotifier(svc, nil), repo
}

func byUser(repo *stubNotificationRepo, userID string) []*domain.Notification {
	var out []*domain.Notification
	for _, n := range repo.byID {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

func TestNotifier_ContractSigned_DualRecipient(t *testing.T) {
	notifier, repo := newNotifier(t)

	err := notifier.ContractSigned(context.Background(), "p1", "e1", "X", "c1")
	if err != nil {
		t.Fatalf("ContractSigned: %v", err)
	}

	if len(repo.byID) != 2 {
		t.Fatalf("expected exactly 2 records, got %d", len(repo.byID))
	}

	forFreelancer := byUser(repo, "p1")
	forClient := byUser(repo, "e1")
	if len(forFreelancer) != 1 || len(forClient) != 1 {
		t.Fatalf("expected one record per party, got %d/%d", len(forFreelancer), len(forClient))
	}
	if forFreelancer[0].ID == forClient[0].ID {
		t.Fatalf("dual-recipient records must have independent ids")
	}
	for _, n := range repo.byID {
		if n.Type != domain.NotifContractSigned {
			t.Fatalf("unexpected type %s", n.Type)
		}
		if n.Metadata["contractId"] != "c1" || n.Metadata["action"] != "view_contract" {
			t.Fatalf("metadata shape wrong: %v", n.Metadata)
		}
		if !strings.Contains(n.Message, "X") {
			t.Fatalf("message template not applied: %q", n.Message)
		}
	}
}

func TestNotifier_ProjectCompleted_DualRecipient(t *testing.T) {
	notifier, repo := newNotifier(t)

	if err := notifier.ProjectCompleted(context.Background(), "p1", "e1", "Redesign", "pr1"); err != nil {
		t.Fatalf("ProjectCompleted: %v", err)
	}

	if len(repo.byID) != 2 {
		t.Fatalf("expected exactly 2 records, got %d", len(repo.byID))
	}
	if len(byUser(repo, "p1")) != 1 || len(byUser(repo, "e1")) != 1 {
		t.Fatalf("expected one record per party")
	}
}

func TestNotifier_JobApplication_MetadataShape(t *testing.T) {
	notifier, repo := newNotifier(t)

	if err := notifier.JobApplication(context.Background(), "e1", "Ana", "Backend Dev", "app1"); err != nil {
		t.Fatalf("JobApplication: %v", err)
	}

	records := byUser(repo, "e1")
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	n := records[0]
	if n.Type != domain.NotifJobApplication {
		t.Fatalf("unexpected type %s", n.Type)
	}
	if n.Metadata["jobTitle"] != "Backend Dev" || n.Metadata["applicationId"] != "app1" || n.Metadata["action"] != "view_application" {
		t.Fatalf("metadata shape wrong: %v", n.Metadata)
	}
	if !strings.Contains(n.Message, "Ana") || !strings.Contains(n.Message, "Backend Dev") {
		t.Fatalf("message template not applied: %q", n.Message)
	}
}

func TestNotifier_PaymentEvents_FormatAmount(t *testing.T) {
	notifier, repo := newNotifier(t)

	if err := notifier.PaymentReceived(context.Background(), "p1", 1250.5, "USD", "pay1"); err != nil {
		t.Fatalf("PaymentReceived: %v", err)
	}
	if err := notifier.PaymentSent(context.Background(), "e1", 1250.5, "USD", "pay1"); err != nil {
		t.Fatalf("PaymentSent: %v", err)
	}

	received := byUser(repo, "p1")[0]
	if !strings.Contains(received.Message, "1250.50 USD") {
		t.Fatalf("amount not formatted: %q", received.Message)
	}
	sent := byUser(repo, "e1")[0]
	if sent.Type != domain.NotifPaymentSent {
		t.Fatalf("unexpected type %s", sent.Type)
	}
}

// Every emitter must produce its declared event type.
func TestNotifier_EventTypeCoverage(t *testing.T) {
	notifier, repo := newNotifier(t)
	ctx := context.Background()

	emitters := map[domain.NotificationType]func() error{
		domain.NotifJobApplication: func() error {
			return notifier.JobApplication(ctx, "u1", "Ana", "Job", "a1")
		},
		domain.NotifJobPosted: func() error {
			return notifier.JobPosted(ctx, "u2", "Job", "j1")
		},
		domain.NotifApplicationStatus: func() error {
			return notifier.ApplicationStatus(ctx, "u3", "Job", "accepted", "a1")
		},
		domain.NotifNewMessage: func() error {
			return notifier.NewMessage(ctx, "u4", "Ana", "conv1")
		},
		domain.NotifEvaluationReceived: func() error {
			return notifier.EvaluationReceived(ctx, "u5", "Ana", "ev1")
		},
		domain.NotifTaskAssigned: func() error {
			return notifier.TaskAssigned(ctx, "u6", "Task", "Project", "t1")
		},
		domain.NotifMention: func() error {
			return notifier.Mention(ctx, "u7", "Ana", "project chat", "m1")
		},
		domain.NotifInvitationAccepted: func() error {
			return notifier.InvitationAccepted(ctx, "u8", "Ana", "i1")
		},
		domain.NotifTaskStatusChanged: func() error {
			return notifier.TaskStatusChanged(ctx, "u9", "Task", "done", "t1")
		},
	}

	for typ, emit := range emitters {
		if err := emit(); err != nil {
			t.Fatalf("emitter for %s: %v", typ, err)
		}
	}

	seen := make(map[domain.NotificationType]int)
	for _, n := range repo.byID {
		seen[n.Type]++
	}
	for typ := range emitters {
		if seen[typ] != 1 {
			t.Fatalf("expected exactly one %s record, got %d", typ, seen[typ])
		}
	}
}

func TestNotifier_CustomCatalogOverridesWording(t *testing.T) {
	repo := newStubNotificationRepo()
	svc := newNotificationSvc(repo, &stubEnqueuer{})
	notifier := NewNotifier(svc, MessageCatalog{
		domain.NotifNewMessage: {Title: "New message", Format: "You have a new message from %s"},
	})

	if err := notifier.NewMessage(context.Background(), "u1", "Bob", "conv1"); err != nil {
		t.Fatalf("NewMessage: %v", err)
	}

	n := byUser(repo, "u1")[0]
	if n.Title != "New message" || !strings.Contains(n.Message, "Bob") {
		t.Fatalf("catalog override not applied: %q / %q", n.Title, n.Message)
	}
}

func TestNotifier_UnknownTypeFailsFast(t *testing.T) {
	repo := newStubNotificationRepo()
	svc := newNotificationSvc(repo, &stubEnqueuer{})
	notifier := NewNotifier(svc, MessageCatalog{}) // empty catalog

	if err := notifier.NewMessage(context.Background(), "u1", "Bob", "conv1"); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if len(repo.byID) != 0 {
		t.Fatalf("no record must be written without a template")
	}
}
