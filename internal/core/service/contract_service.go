package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/talentia/contracts-system/internal/core/domain"
	"github.com/talentia/contracts-system/internal/core/ports"
)

// ContractService owns the contract lifecycle: creation, partial updates,
// signature collection, milestone tracking and the workflow transitions into
// the terminal states. Every mutation runs under a per-contract lock so that
// concurrent read-modify-write cycles cannot lose signatures.
type ContractService struct {
	repo   ports.ContractRepository
	locks  *keyedMutex
	logger zerolog.Logger
}

func NewContractService(repo ports.ContractRepository, logger zerolog.Logger) *ContractService {
	return &ContractService{
		repo:   repo,
		locks:  newKeyedMutex(),
		logger: logger,
	}
}

// CreateContract creates a new contract in draft with no signatures.
func (s *ContractService) CreateContract(ctx context.Context, input ports.CreateContractInput) (*ports.CreateContractResult, error) {
	now := time.Now().UTC()

	milestones := make([]domain.Milestone, 0, len(input.Milestones))
	for _, m := range input.Milestones {
		milestones = append(milestones, domain.Milestone{
			ID:          "MS-" + uuid.NewString(),
			Name:        m.Name,
			Description: m.Description,
			Amount:      m.Amount,
			DueDate:     m.DueDate,
			Status:      domain.MilestonePending,
		})
	}

	contract := &domain.Contract{
		ID:           generateContractID(),
		Freelancer:   domain.Party{ID: input.Freelancer.ID, Name: input.Freelancer.Name},
		Client:       domain.Party{ID: input.Client.ID, Name: input.Client.Name},
		Value:        input.Value,
		Currency:     input.Currency,
		PaymentTerms: input.PaymentTerms,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Terms:        input.Terms,
		Deliverables: input.Deliverables,
		Milestones:   milestones,
		Signatures:   []domain.Signature{},
		Status:       domain.ContractDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, contract); err != nil {
		s.logger.Error().Err(err).Msg("failed to create contract")
		return nil, fmt.Errorf("create contract: %w", err)
	}

	s.logger.Info().
		Str("contract_id", contract.ID).
		Str("freelancer_id", contract.Freelancer.ID).
		Str("client_id", contract.Client.ID).
		Msg("contract created")

	return &ports.CreateContractResult{
		ContractID: contract.ID,
		Status:     string(contract.Status),
		CreatedAt:  contract.CreatedAt,
		Message:    "contract created in draft",
	}, nil
}

// UpdateContract merges the non-nil fields of input into the contract and
// refreshes the updated timestamp. Terminal contracts reject edits, and so do
// active ones: the integrity anchor covers the commercial terms, so they
// freeze the moment both parties have signed.
func (s *ContractService) UpdateContract(ctx context.Context, id string, input ports.UpdateContractInput) (*domain.Contract, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contract.Status.IsTerminal() {
		return nil, domain.ErrContractClosed
	}
	if contract.Status == domain.ContractActive {
		return nil, domain.ErrContractFullySigned
	}

	if input.Value != nil {
		contract.Value = *input.Value
	}
	if input.Currency != nil {
		contract.Currency = *input.Currency
	}
	if input.PaymentTerms != nil {
		contract.PaymentTerms = *input.PaymentTerms
	}
	if input.StartDate != nil {
		contract.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		contract.EndDate = *input.EndDate
	}
	if input.Terms != nil {
		contract.Terms = *input.Terms
	}
	if input.Deliverables != nil {
		contract.Deliverables = *input.Deliverables
	}
	contract.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, contract); err != nil {
		s.logger.Error().Err(err).Str("contract_id", id).Msg("failed to update contract")
		return nil, fmt.Errorf("update contract: %w", err)
	}
	return contract, nil
}

// SignContract appends the acting user's signature. Only the contract's two
// parties may sign; the first signature moves the contract to pending, the
// second to active, at which point the integrity anchor is derived and stored
// and no further signatures are admitted. A user id already present among the
// signatures is rejected without mutation.
func (s *ContractService) SignContract(ctx context.Context, input ports.SignContractInput) (*ports.SignContractResult, error) {
	unlock := s.locks.Lock(input.ContractID)
	defer unlock()

	contract, err := s.repo.FindByID(ctx, input.ContractID)
	if err != nil {
		return nil, err
	}
	if contract.Status.IsTerminal() {
		return nil, domain.ErrContractClosed
	}
	if contract.Status == domain.ContractActive || len(contract.Signatures) >= domain.RequiredSignatures {
		return nil, domain.ErrContractFullySigned
	}
	if !contract.IsParty(input.UserID) {
		return nil, domain.ErrForbidden
	}
	if contract.HasSigned(input.UserID) {
		return nil, domain.ErrAlreadySigned
	}

	now := time.Now().UTC()
	sig := domain.Signature{
		UserID:         input.UserID,
		UserName:       input.UserName,
		Role:           input.Role,
		SignedAt:       now,
		IPAddress:      input.IPAddress,
		SignatureToken: "SIG-" + uuid.NewString(),
	}
	if input.Wallet != nil {
		sig.WalletAddress = input.Wallet.WalletAddress
		sig.WalletSignature = input.Wallet.Signature
		sig.ContentHash = input.Wallet.ContentHash
	}

	contract.Signatures = append(contract.Signatures, sig)
	contract.UpdatedAt = now

	message := "signature recorded, waiting for the other party"
	if len(contract.Signatures) >= domain.RequiredSignatures {
		contract.Status = domain.ContractActive
		contract.IntegrityAnchor = IntegrityAnchor(contract)
		message = "contract fully signed and active"
	} else {
		contract.Status = domain.ContractPending
	}

	if err := s.repo.Update(ctx, contract); err != nil {
		s.logger.Error().Err(err).Str("contract_id", contract.ID).Msg("failed to persist signature")
		return nil, fmt.Errorf("sign contract: %w", err)
	}

	s.logger.Info().
		Str("contract_id", contract.ID).
		Str("user_id", input.UserID).
		Str("status", string(contract.Status)).
		Int("signatures", len(contract.Signatures)).
		Msg("contract signed")

	return &ports.SignContractResult{
		ContractID:      contract.ID,
		Status:          string(contract.Status),
		SignatureCount:  len(contract.Signatures),
		FullyExecuted:   contract.Status == domain.ContractActive,
		IntegrityAnchor: contract.IntegrityAnchor,
		Message:         message,
	}, nil
}

// CompleteContract moves an active contract to completed.
func (s *ContractService) CompleteContract(ctx context.Context, id string) (*domain.Contract, error) {
	return s.transition(ctx, id, domain.ContractCompleted)
}

// CancelContract moves any non-terminal contract to cancelled.
func (s *ContractService) CancelContract(ctx context.Context, id string) (*domain.Contract, error) {
	return s.transition(ctx, id, domain.ContractCancelled)
}

func (s *ContractService) transition(ctx context.Context, id string, next domain.ContractStatus) (*domain.Contract, error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	contract, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !contract.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, contract.Status, next)
	}

	contract.Status = next
	contract.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, fmt.Errorf("transition contract: %w", err)
	}

	s.logger.Info().Str("contract_id", id).Str("status", string(next)).Msg("contract status changed")
	return contract, nil
}

// UpdateMilestoneStatus sets a milestone's state. Transitioning into
// completed stamps the completion timestamp. Approved milestones are frozen:
// any further change is rejected here, not in the UI.
func (s *ContractService) UpdateMilestoneStatus(ctx context.Context, contractID, milestoneID string, status domain.MilestoneStatus) (*domain.Milestone, error) {
	if !domain.ValidMilestoneStatus(status) {
		return nil, domain.ErrInvalidMilestoneState
	}

	unlock := s.locks.Lock(contractID)
	defer unlock()

	contract, err := s.repo.FindByID(ctx, contractID)
	if err != nil {
		return nil, err
	}

	milestone := contract.FindMilestone(milestoneID)
	if milestone == nil {
		return nil, domain.ErrMilestoneNotFound
	}
	if milestone.Status == domain.MilestoneApproved {
		return nil, domain.ErrMilestoneApproved
	}

	milestone.Status = status
	if status == domain.MilestoneCompleted {
		now := time.Now().UTC()
		milestone.CompletedAt = &now
	}
	contract.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, contract); err != nil {
		return nil, fmt.Errorf("update milestone: %w", err)
	}

	s.logger.Info().
		Str("contract_id", contractID).
		Str("milestone_id", milestoneID).
		Str("status", string(status)).
		Msg("milestone status changed")

	out := *milestone
	return &out, nil
}

// GetContract retrieves a single contract by id.
func (s *ContractService) GetContract(ctx context.Context, id string) (*domain.Contract, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByFreelancer returns all contracts where the user is the freelancer party.
func (s *ContractService) ListByFreelancer(ctx context.Context, freelancerID string) ([]*domain.Contract, error) {
	return s.repo.ListByFreelancer(ctx, freelancerID)
}

// ListByClient returns all contracts where the user is the client party.
func (s *ContractService) ListByClient(ctx context.Context, clientID string) ([]*domain.Contract, error) {
	return s.repo.ListByClient(ctx, clientID)
}

// generateContractID returns a unique contract id in the format CT-XXXXXXXX.
func generateContractID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("CT-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("CT-%08X", b)
}
