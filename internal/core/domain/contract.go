package domain

import (
	"errors"
	"time"
)

// ContractStatus represents the lifecycle state of a contract.
type ContractStatus string

const (
	ContractDraft     ContractStatus = "draft"
	ContractPending   ContractStatus = "pending"
	ContractActive    ContractStatus = "active"
	ContractCompleted ContractStatus = "completed"
	ContractCancelled ContractStatus = "cancelled"
)

// RequiredSignatures is the number of distinct party signatures that fully
// executes a contract under the two-party model (one per role).
const RequiredSignatures = 2

// validContractTransitions defines the allowed state machine transitions.
// completed and cancelled are terminal.
var validContractTransitions = map[ContractStatus][]ContractStatus{
	ContractDraft:   {ContractPending, ContractCancelled},
	ContractPending: {ContractActive, ContractCancelled},
	ContractActive:  {ContractCompleted, ContractCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	for _, allowed := range validContractTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s ContractStatus) IsTerminal() bool {
	return s == ContractCompleted || s == ContractCancelled
}

// MilestoneStatus represents the state of a single contract milestone.
type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in-progress"
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneApproved   MilestoneStatus = "approved"
)

// ValidMilestoneStatus reports whether s is one of the known milestone states.
func ValidMilestoneStatus(s MilestoneStatus) bool {
	switch s {
	case MilestonePending, MilestoneInProgress, MilestoneCompleted, MilestoneApproved:
		return true
	}
	return false
}

// Payment terms accepted on a contract.
const (
	PaymentHourly    = "hourly"
	PaymentFixed     = "fixed"
	PaymentMilestone = "milestone"
)

var (
	ErrContractNotFound      = errors.New("contract not found")
	ErrContractClosed        = errors.New("contract is completed or cancelled")
	ErrContractFullySigned   = errors.New("contract is already fully signed")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrAlreadySigned         = errors.New("user has already signed this contract")
	ErrMilestoneNotFound     = errors.New("milestone not found")
	ErrMilestoneApproved     = errors.New("approved milestone cannot be modified")
	ErrInvalidMilestoneState = errors.New("invalid milestone status")
)

// Party identifies one side of a contract (freelancer or client/company).
type Party struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Signature records one party's proof of intent on a contract.
// SignatureToken is an opaque artifact; when the signer used an external
// wallet, the wallet fields carry the externally produced proof instead.
type Signature struct {
	UserID          string    `json:"user_id" bson:"user_id"`
	UserName        string    `json:"user_name" bson:"user_name"`
	Role            string    `json:"role" bson:"role"`
	SignedAt        time.Time `json:"signed_at" bson:"signed_at"`
	IPAddress       string    `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	SignatureToken  string    `json:"signature_token" bson:"signature_token"`
	WalletAddress   string    `json:"wallet_address,omitempty" bson:"wallet_address,omitempty"`
	WalletSignature string    `json:"wallet_signature,omitempty" bson:"wallet_signature,omitempty"`
	ContentHash     string    `json:"content_hash,omitempty" bson:"content_hash,omitempty"`
}

// Milestone is a deliverable checkpoint owned by its parent contract.
type Milestone struct {
	ID          string          `json:"id" bson:"id"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description" bson:"description"`
	Amount      float64         `json:"amount" bson:"amount"`
	DueDate     time.Time       `json:"due_date" bson:"due_date"`
	Status      MilestoneStatus `json:"status" bson:"status"`
	CompletedAt *time.Time      `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}

// Contract is the core aggregate root.
type Contract struct {
	ID              string         `json:"id" bson:"_id,omitempty"`
	Freelancer      Party          `json:"freelancer" bson:"freelancer"`
	Client          Party          `json:"client" bson:"client"`
	Value           float64        `json:"value" bson:"value"`
	Currency        string         `json:"currency" bson:"currency"`
	PaymentTerms    string         `json:"payment_terms" bson:"payment_terms"`
	StartDate       time.Time      `json:"start_date" bson:"start_date"`
	EndDate         time.Time      `json:"end_date" bson:"end_date"`
	Terms           string         `json:"terms" bson:"terms"`
	Deliverables    []string       `json:"deliverables" bson:"deliverables"`
	Milestones      []Milestone    `json:"milestones,omitempty" bson:"milestones,omitempty"`
	Signatures      []Signature    `json:"signatures" bson:"signatures"`
	Status          ContractStatus `json:"status" bson:"status"`
	IntegrityAnchor string         `json:"integrity_anchor,omitempty" bson:"integrity_anchor,omitempty"`
	CreatedAt       time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" bson:"updated_at"`
}

// IsParty reports whether the given user is one of the contract's two parties.
func (c *Contract) IsParty(userID string) bool {
	return userID == c.Freelancer.ID || userID == c.Client.ID
}

// HasSigned reports whether the given user already signed the contract.
func (c *Contract) HasSigned(userID string) bool {
	for _, s := range c.Signatures {
		if s.UserID == userID {
			return true
		}
	}
	return false
}

// FindMilestone returns a pointer to the milestone with the given id, or nil.
func (c *Contract) FindMilestone(id string) *Milestone {
	for i := range c.Milestones {
		if c.Milestones[i].ID == id {
			return &c.Milestones[i]
		}
	}
	return nil
}
