package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	catalogdomain "github.com/apoteklabs/apotek-cli/internal/catalog/domain"
	customerdomain "github.com/apoteklabs/apotek-cli/internal/customer/domain"
)

type MockCustomerDirectory struct {
	mock.Mock
}

func (m *MockCustomerDirectory) Lookup(ctx context.Context, id int64) (*customerdomain.Customer, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*customerdomain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockProductDirectory struct {
	mock.Mock
}

func (m *MockProductDirectory) SearchByBarcode(ctx context.Context, barcode string) (*catalogdomain.Product, error) {
	args := m.Called(ctx, barcode)
	if p := args.Get(0); p != nil {
		return p.(*catalogdomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
