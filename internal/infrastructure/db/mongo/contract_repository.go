package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talentia/contracts-system/internal/core/domain"
)

const collectionContracts = "contracts"

type ContractRepository struct {
	col *mongo.Collection
}

func NewContractRepository(db *mongo.Database) *ContractRepository {
	return &ContractRepository{col: db.Collection(collectionContracts)}
}

// Create inserts a new contract document.
func (r *ContractRepository) Create(ctx context.Context, c *domain.Contract) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, c)
	return err
}

// FindByID retrieves a contract by id.
func (r *ContractRepository) FindByID(ctx context.Context, id string) (*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Contract
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrContractNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Update replaces the contract document with the given state.
func (r *ContractRepository) Update(ctx context.Context, c *domain.Contract) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrContractNotFound
	}
	return nil
}

// ListByFreelancer returns all contracts with the given freelancer party id,
// most recently created first.
func (r *ContractRepository) ListByFreelancer(ctx context.Context, freelancerID string) ([]*domain.Contract, error) {
	return r.list(ctx, bson.M{"freelancer.id": freelancerID})
}

// ListByClient returns all contracts with the given client party id,
// most recently created first.
func (r *ContractRepository) ListByClient(ctx context.Context, clientID string) ([]*domain.Contract, error) {
	return r.list(ctx, bson.M{"client.id": clientID})
}

func (r *ContractRepository) list(ctx context.Context, filter bson.M) ([]*domain.Contract, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var contracts []*domain.Contract
	if err := cur.All(ctx, &contracts); err != nil {
		return nil, err
	}
	return contracts, nil
}

// EnsureIndexes creates necessary indexes on the contracts collection.
func (r *ContractRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "freelancer.id", Value: 1}}},
		{Keys: bson.D{{Key: "client.id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
