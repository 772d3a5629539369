package ports

import (
	"context"
	"time"

	"github.com/talentia/contracts-system/internal/core/domain"
)

// PartyInput identifies one side of a contract.
type PartyInput struct {
	ID   string
	Name string
}

// MilestoneInput describes a deliverable checkpoint supplied at creation time.
type MilestoneInput struct {
	Name        string
	Description string
	Amount      float64
	DueDate     time.Time
}

// CreateContractInput carries all data needed to create a contract in draft.
type CreateContractInput struct {
	Freelancer   PartyInput
	Client       PartyInput
	Value        float64
	Currency     string
	PaymentTerms string // hourly, fixed, milestone
	StartDate    time.Time
	EndDate      time.Time
	Terms        string
	Deliverables []string
	Milestones   []MilestoneInput
}

// CreateContractResult is returned by the service after creating a contract.
type CreateContractResult struct {
	ContractID string
	Status     string
	CreatedAt  time.Time
	Message    string
}

// UpdateContractInput carries a partial update. Nil fields are left untouched.
type UpdateContractInput struct {
	Value        *float64
	Currency     *string
	PaymentTerms *string
	StartDate    *time.Time
	EndDate      *time.Time
	Terms        *string
	Deliverables *[]string
}

// WalletProof is an externally produced cryptographic signature used when the
// signer signs with a wallet instead of the opaque in-app token.
type WalletProof struct {
	WalletAddress string
	Signature     string
	ContentHash   string
}

// SignContractInput carries the acting signer's identity and optional proof.
type SignContractInput struct {
	ContractID string
	UserID     string
	UserName   string
	Role       string
	IPAddress  string
	Wallet     *WalletProof // optional
}

// SignContractResult reports the outcome of a signature.
type SignContractResult struct {
	ContractID      string
	Status          string
	SignatureCount  int
	FullyExecuted   bool
	IntegrityAnchor string
	Message         string
}

// ContractService defines the lifecycle operations for contracts.
type ContractService interface {
	CreateContract(ctx context.Context, input CreateContractInput) (*CreateContractResult, error)
	UpdateContract(ctx context.Context, id string, input UpdateContractInput) (*domain.Contract, error)
	SignContract(ctx context.Context, input SignContractInput) (*SignContractResult, error)
	CompleteContract(ctx context.Context, id string) (*domain.Contract, error)
	CancelContract(ctx context.Context, id string) (*domain.Contract, error)
	UpdateMilestoneStatus(ctx context.Context, contractID, milestoneID string, status domain.MilestoneStatus) (*domain.Milestone, error)
	GetContract(ctx context.Context, id string) (*domain.Contract, error)
	ListByFreelancer(ctx context.Context, freelancerID string) ([]*domain.Contract, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Contract, error)
}
