package repository

import (
	"context"
	"fmt"

	"github.com/apoteklabs/apotek-cli/internal/customer/domain"
	"github.com/apoteklabs/apotek-cli/internal/platform/apperr"
)

type CustomerRepository interface {
	Create(ctx context.Context, name string, phone *string) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

// memoryCustomerRepository assigns ids from a monotonic counter starting
// at 1. The counter never resets, so ids are never reused even if
// deletion support is added later.
type memoryCustomerRepository struct {
	byID   map[int64]domain.Customer
	order  []int64
	nextID int64
}

func NewMemoryCustomerRepository() CustomerRepository {
	return &memoryCustomerRepository{
		byID:   make(map[int64]domain.Customer),
		nextID: 1,
	}
}

func (r *memoryCustomerRepository) Create(_ context.Context, name string, phone *string) (*domain.Customer, error) {
	c := domain.Customer{
		ID:    r.nextID,
		Name:  name,
		Phone: phone,
	}
	r.nextID++
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return &c, nil
}

func (r *memoryCustomerRepository) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	c, exists := r.byID[id]
	if !exists {
		return nil, fmt.Errorf("customer %d: %w", id, apperr.ErrNotFound)
	}
	return &c, nil
}

func (r *memoryCustomerRepository) List(_ context.Context) ([]domain.Customer, error) {
	customers := make([]domain.Customer, 0, len(r.order))
	for _, id := range r.order {
		customers = append(customers, r.byID[id])
	}
	return customers, nil
}
