package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

// recordingNotifier tracks which emitter ran and with which recipient.
type recordingNotifier struct {
	stubNotifier
	calls []string
	err   error
}

func (n *recordingNotifier) record(name, recipient string) error {
	n.calls = append(n.calls, name+":"+recipient)
	return n.err
}

func (n *recordingNotifier) JobApplication(_ context.Context, companyID, _, _, _ string) error {
	return n.record("job_application", companyID)
}

func (n *recordingNotifier) PaymentReceived(_ context.Context, userID string, _ float64, _, _ string) error {
	return n.record("payment_received", userID)
}

func (n *recordingNotifier) TaskAssigned(_ context.Context, userID, _, _, _ string) error {
	return n.record("task_assigned", userID)
}

func TestEventHandler_Receive_RoutesToTypedEmitter(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	notifier := &recordingNotifier{}
	handler := NewEventHandler(notifier)

	body := `{"type":"payment_received","user_id":"p1","amount":1250.5,"currency":"USD","payment_id":"PAY-1"}`
	c, rec := newTestContext(e, http.MethodPost, "/internal/v1/events", body)

	if err := handler.Receive(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != "payment_received:p1" {
		t.Fatalf("unexpected emissions: %v", notifier.calls)
	}
}

func TestEventHandler_Receive_UnknownTypeRejected(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	handler := NewEventHandler(&recordingNotifier{})

	c, _ := newTestContext(e, http.MethodPost, "/internal/v1/events", `{"type":"carrier_pigeon"}`)

	err := handler.Receive(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestEventHandler_Receive_EmitterErrorBubblesUp(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	boom := errors.New("mongo down")
	handler := NewEventHandler(&recordingNotifier{err: boom})

	body := `{"type":"task_assigned","user_id":"p1","task_name":"Wireframes","project_name":"Portal","task_id":"TK-1"}`
	c, _ := newTestContext(e, http.MethodPost, "/internal/v1/events", body)

	if err := handler.Receive(c); !errors.Is(err, boom) {
		t.Fatalf("expected emitter error, got %v", err)
	}
}
