package repository

import (
	"context"

	"github.com/apoteklabs/apotek-cli/internal/purchase/domain"
)

type PurchaseRepository interface {
	Append(ctx context.Context, p domain.Purchase) error
	List(ctx context.Context) ([]domain.Purchase, error)
}

// memoryPurchaseRepository is an append-only log; append order is
// chronological order. No update or delete exists.
type memoryPurchaseRepository struct {
	purchases []domain.Purchase
}

func NewMemoryPurchaseRepository() PurchaseRepository {
	return &memoryPurchaseRepository{}
}

func (r *memoryPurchaseRepository) Append(_ context.Context, p domain.Purchase) error {
	r.purchases = append(r.purchases, p)
	return nil
}

func (r *memoryPurchaseRepository) List(_ context.Context) ([]domain.Purchase, error) {
	out := make([]domain.Purchase, len(r.purchases))
	copy(out, r.purchases)
	return out, nil
}
