package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/apoteklabs/apotek-cli/internal/catalog/domain"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Add(ctx context.Context, p domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Remove(ctx context.Context, barcode string) error {
	args := m.Called(ctx, barcode)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, barcode string, upd domain.ProductUpdate) (*domain.Product, error) {
	args := m.Called(ctx, barcode, upd)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	args := m.Called(ctx, barcode)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if ps := args.Get(0); ps != nil {
		return ps.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) SortedBy(ctx context.Context, key domain.SortKey) ([]domain.Product, error) {
	args := m.Called(ctx, key)
	if ps := args.Get(0); ps != nil {
		return ps.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) SearchByName(ctx context.Context, query string) ([]domain.Product, error) {
	args := m.Called(ctx, query)
	if ps := args.Get(0); ps != nil {
		return ps.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
