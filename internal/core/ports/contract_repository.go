package ports

import (
	"context"

	"github.com/talentia/contracts-system/internal/core/domain"
)

// ContractRepository defines persistence operations for contracts.
type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	// FindByID retrieves a contract by id, returning domain.ErrContractNotFound
	// when no document matches.
	FindByID(ctx context.Context, id string) (*domain.Contract, error)
	// Update replaces the mutable fields of an existing contract. The caller
	// is responsible for serializing read-modify-write cycles per contract id.
	Update(ctx context.Context, c *domain.Contract) error
	ListByFreelancer(ctx context.Context, freelancerID string) ([]*domain.Contract, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Contract, error)
}
