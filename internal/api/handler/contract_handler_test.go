package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentia/contracts-system/internal/core/domain"
	"github.com/talentia/contracts-system/internal/core/ports"
)

type stubContractService struct {
	createFn          func(ctx context.Context, input ports.CreateContractInput) (*ports.CreateContractResult, error)
	signFn            func(ctx context.Context, input ports.SignContractInput) (*ports.SignContractResult, error)
	completeFn        func(ctx context.Context, id string) (*domain.Contract, error)
	getFn             func(ctx context.Context, id string) (*domain.Contract, error)
	updateMilestoneFn func(ctx context.Context, contractID, milestoneID string, status domain.MilestoneStatus) (*domain.Milestone, error)
}

func (s *stubContractService) CreateContract(ctx context.Context, input ports.CreateContractInput) (*ports.CreateContractResult, error) {
	return s.createFn(ctx, input)
}

func (s *stubContractService) UpdateContract(ctx context.Context, id string, input ports.UpdateContractInput) (*domain.Contract, error) {
	return nil, errors.New("not implemented")
}

func (s *stubContractService) SignContract(ctx context.Context, input ports.SignContractInput) (*ports.SignContractResult, error) {
	return s.signFn(ctx, input)
}

func (s *stubContractService) CompleteContract(ctx context.Context, id string) (*domain.Contract, error) {
	return s.completeFn(ctx, id)
}

func (s *stubContractService) CancelContract(ctx context.Context, id string) (*domain.Contract, error) {
	return nil, errors.New("not implemented")
}

func (s *stubContractService) UpdateMilestoneStatus(ctx context.Context, contractID, milestoneID string, status domain.MilestoneStatus) (*domain.Milestone, error) {
	return s.updateMilestoneFn(ctx, contractID, milestoneID, status)
}

func (s *stubContractService) GetContract(ctx context.Context, id string) (*domain.Contract, error) {
	return s.getFn(ctx, id)
}

func (s *stubContractService) ListByFreelancer(ctx context.Context, freelancerID string) ([]*domain.Contract, error) {
	return nil, nil
}

func (s *stubContractService) ListByClient(ctx context.Context, clientID string) ([]*domain.Contract, error) {
	return nil, nil
}

// stubNotifier records contract_signed and project_completed emissions; the
// remaining emitters are unused by the contract handler.
type stubNotifier struct {
	signed    []string
	completed []string
}

func (n *stubNotifier) ContractSigned(_ context.Context, freelancerID, clientID, _, contractID string) error {
	n.signed = append(n.signed, freelancerID, clientID, contractID)
	return nil
}

func (n *stubNotifier) ProjectCompleted(_ context.Context, freelancerID, clientID, _, projectID string) error {
	n.completed = append(n.completed, freelancerID, clientID, projectID)
	return nil
}

func (n *stubNotifier) JobApplication(context.Context, string, string, string, string) error {
	return nil
}
func (n *stubNotifier) JobPosted(context.Context, string, string, string) error { return nil }
func (n *stubNotifier) ApplicationStatus(context.Context, string, string, string, string) error {
	return nil
}
func (n *stubNotifier) NewMessage(context.Context, string, string, string) error { return nil }
func (n *stubNotifier) PaymentReceived(context.Context, string, float64, string, string) error {
	return nil
}
func (n *stubNotifier) PaymentSent(context.Context, string, float64, string, string) error {
	return nil
}
func (n *stubNotifier) EvaluationReceived(context.Context, string, string, string) error { return nil }
func (n *stubNotifier) TaskAssigned(context.Context, string, string, string, string) error {
	return nil
}
func (n *stubNotifier) Mention(context.Context, string, string, string, string) error    { return nil }
func (n *stubNotifier) InvitationAccepted(context.Context, string, string, string) error { return nil }
func (n *stubNotifier) TaskStatusChanged(context.Context, string, string, string, string) error {
	return nil
}

func newTestContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context, userID, userName, role string) {
	c.Set("user_id", userID)
	c.Set("user_name", userName)
	c.Set("role", role)
}

const createBody = `{
	"freelancer": {"id": "p1", "name": "Ana Torres"},
	"client": {"id": "e1", "name": "Acme SA"},
	"value": 5000,
	"currency": "USD",
	"payment_terms": "fixed",
	"start_date": "2025-01-01T00:00:00Z",
	"end_date": "2025-06-30T00:00:00Z"
}`

func TestContractHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	created := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	stub := &stubContractService{
		createFn: func(_ context.Context, input ports.CreateContractInput) (*ports.CreateContractResult, error) {
			if input.Freelancer.ID != "p1" || input.Client.ID != "e1" || input.PaymentTerms != "fixed" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.CreateContractResult{
				ContractID: "CT-7A8B9C2D",
				Status:     string(domain.ContractDraft),
				CreatedAt:  created,
				Message:    "contrato creado en borrador",
			}, nil
		},
	}
	handler := NewContractHandler(stub, &stubNotifier{})

	c, rec := newTestContext(e, http.MethodPost, "/v1/contracts", createBody)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["contract_id"] != "CT-7A8B9C2D" || resp["status"] != "draft" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	links, ok := resp["_links"].(map[string]any)
	if !ok || links["self"] != "/v1/contracts/CT-7A8B9C2D" {
		t.Fatalf("unexpected links: %+v", resp["_links"])
	}
}

func TestContractHandler_Create_ValidationRejected(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubContractService{
		createFn: func(context.Context, ports.CreateContractInput) (*ports.CreateContractResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewContractHandler(stub, &stubNotifier{})

	// payment_terms outside the allowed set
	body := strings.Replace(createBody, `"fixed"`, `"weekly"`, 1)
	c, _ := newTestContext(e, http.MethodPost, "/v1/contracts", body)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestContractHandler_Sign_UsesClaimsIdentity(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubContractService{
		signFn: func(_ context.Context, input ports.SignContractInput) (*ports.SignContractResult, error) {
			if input.ContractID != "CT-1" || input.UserID != "p1" || input.Role != "professional" {
				t.Fatalf("claims not propagated: %+v", input)
			}
			return &ports.SignContractResult{
				ContractID:     "CT-1",
				Status:         string(domain.ContractPending),
				SignatureCount: 1,
				Message:        "firma registrada",
			}, nil
		},
	}
	handler := NewContractHandler(stub, &stubNotifier{})

	c, rec := newTestContext(e, http.MethodPost, "/v1/contracts/CT-1/signatures", "{}")
	c.SetParamNames("id")
	c.SetParamValues("CT-1")
	authenticate(c, "p1", "Ana Torres", "professional")

	if err := handler.Sign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["fully_executed"] != false || resp["signature_count"] != float64(1) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, ok := resp["integrity_anchor"]; ok {
		t.Fatalf("integrity_anchor must be omitted before full execution")
	}
}

func TestContractHandler_Sign_MissingClaims(t *testing.T) {
	e := echo.New()
	stub := &stubContractService{
		signFn: func(context.Context, ports.SignContractInput) (*ports.SignContractResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewContractHandler(stub, &stubNotifier{})

	c, _ := newTestContext(e, http.MethodPost, "/v1/contracts/CT-1/signatures", "{}")
	c.SetParamNames("id")
	c.SetParamValues("CT-1")

	err := handler.Sign(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestContractHandler_Sign_FullExecutionNotifiesBothParties(t *testing.T) {
	e := echo.New()
	notifier := &stubNotifier{}
	stub := &stubContractService{
		signFn: func(context.Context, ports.SignContractInput) (*ports.SignContractResult, error) {
			return &ports.SignContractResult{
				ContractID:      "CT-1",
				Status:          string(domain.ContractActive),
				SignatureCount:  2,
				FullyExecuted:   true,
				IntegrityAnchor: "0xabc",
				Message:         "contrato activo",
			}, nil
		},
		getFn: func(_ context.Context, id string) (*domain.Contract, error) {
			return &domain.Contract{
				ID:         id,
				Freelancer: domain.Party{ID: "p1", Name: "Ana Torres"},
				Client:     domain.Party{ID: "e1", Name: "Acme SA"},
			}, nil
		},
	}
	handler := NewContractHandler(stub, notifier)

	c, rec := newTestContext(e, http.MethodPost, "/v1/contracts/CT-1/signatures", "{}")
	c.SetParamNames("id")
	c.SetParamValues("CT-1")
	authenticate(c, "e1", "Acme SA", "company")

	if err := handler.Sign(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	want := []string{"p1", "e1", "CT-1"}
	if len(notifier.signed) != len(want) {
		t.Fatalf("contract_signed emission missing: %v", notifier.signed)
	}
	for i, v := range want {
		if notifier.signed[i] != v {
			t.Fatalf("unexpected emission args: %v", notifier.signed)
		}
	}
}

func TestContractHandler_Sign_DuplicateSignerBubblesUp(t *testing.T) {
	e := echo.New()
	stub := &stubContractService{
		signFn: func(context.Context, ports.SignContractInput) (*ports.SignContractResult, error) {
			return nil, domain.ErrAlreadySigned
		},
	}
	handler := NewContractHandler(stub, &stubNotifier{})

	c, _ := newTestContext(e, http.MethodPost, "/v1/contracts/CT-1/signatures", "{}")
	c.SetParamNames("id")
	c.SetParamValues("CT-1")
	authenticate(c, "p1", "Ana Torres", "professional")

	if err := handler.Sign(c); !errors.Is(err, domain.ErrAlreadySigned) {
		t.Fatalf("expected ErrAlreadySigned, got %v", err)
	}
}

func TestContractHandler_Complete_NotifiesBothParties(t *testing.T) {
	e := echo.New()
	notifier := &stubNotifier{}
	stub := &stubContractService{
		completeFn: func(_ context.Context, id string) (*domain.Contract, error) {
			return &domain.Contract{
				ID:         id,
				Status:     domain.ContractCompleted,
				Freelancer: domain.Party{ID: "p1", Name: "Ana Torres"},
				Client:     domain.Party{ID: "e1", Name: "Acme SA"},
			}, nil
		},
	}
	handler := NewContractHandler(stub, notifier)

	c, rec := newTestContext(e, http.MethodPost, "/v1/contracts/CT-1/complete", "")
	c.SetParamNames("id")
	c.SetParamValues("CT-1")

	if err := handler.Complete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(notifier.completed) != 3 || notifier.completed[0] != "p1" || notifier.completed[1] != "e1" {
		t.Fatalf("project_completed emission missing: %v", notifier.completed)
	}
}

func TestContractHandler_UpdateMilestone_InvalidStatusRejected(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubContractService{
		updateMilestoneFn: func(context.Context, string, string, domain.MilestoneStatus) (*domain.Milestone, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewContractHandler(stub, &stubNotifier{})

	c, _ := newTestContext(e, http.MethodPatch, "/v1/contracts/CT-1/milestones/MS-1", `{"status":"archived"}`)
	c.SetParamNames("id", "milestone_id")
	c.SetParamValues("CT-1", "MS-1")

	err := handler.UpdateMilestone(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}
