package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/apoteklabs/apotek-cli/internal/customer/domain"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, name string, phone *string) (*domain.Customer, error) {
	args := m.Called(ctx, name, phone)
	if c := args.Get(0); c != nil {
		return c.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if cs := args.Get(0); cs != nil {
		return cs.([]domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}
