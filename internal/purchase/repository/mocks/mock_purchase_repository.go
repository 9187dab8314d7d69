package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/apoteklabs/apotek-cli/internal/purchase/domain"
)

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Append(ctx context.Context, p domain.Purchase) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPurchaseRepository) List(ctx context.Context) ([]domain.Purchase, error) {
	args := m.Called(ctx)
	if ps := args.Get(0); ps != nil {
		return ps.([]domain.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}
