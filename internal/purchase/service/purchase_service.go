package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/apoteklabs/apotek-cli/internal/catalog/domain"
	customerdomain "github.com/apoteklabs/apotek-cli/internal/customer/domain"
	"github.com/apoteklabs/apotek-cli/internal/platform/apperr"
	"github.com/apoteklabs/apotek-cli/internal/platform/logger"
	"github.com/apoteklabs/apotek-cli/internal/purchase/domain"
	"github.com/apoteklabs/apotek-cli/internal/purchase/repository"
)

// Placeholders for references that no longer resolve at display time.
const (
	RemovedProductName  = "(removed)"
	UnknownCustomerName = "(unknown)"
)

// CustomerDirectory is the slice of the customer service the ledger needs.
type CustomerDirectory interface {
	Lookup(ctx context.Context, id int64) (*customerdomain.Customer, error)
}

// ProductDirectory is the slice of the inventory service the ledger needs.
type ProductDirectory interface {
	SearchByBarcode(ctx context.Context, barcode string) (*catalogdomain.Product, error)
}

type PurchaseService interface {
	Record(ctx context.Context, customerID int64, barcode string, quantity int) (*domain.Purchase, error)
	List(ctx context.Context) ([]domain.Purchase, error)
	ListViews(ctx context.Context) ([]domain.PurchaseView, error)
}

type purchaseService struct {
	repo      repository.PurchaseRepository
	customers CustomerDirectory
	products  ProductDirectory
	now       func() time.Time
}

func NewPurchaseService(repo repository.PurchaseRepository, customers CustomerDirectory, products ProductDirectory) PurchaseService {
	return &purchaseService{
		repo:      repo,
		customers: customers,
		products:  products,
		now:       time.Now,
	}
}

func (s *purchaseService) Record(ctx context.Context, customerID int64, barcode string, quantity int) (*domain.Purchase, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity %d must be positive: %w", quantity, apperr.ErrInvalidArgument)
	}
	// The references must resolve at record time; later product removal
	// is allowed to leave them dangling.
	if _, err := s.customers.Lookup(ctx, customerID); err != nil {
		return nil, err
	}
	if _, err := s.products.SearchByBarcode(ctx, barcode); err != nil {
		return nil, err
	}

	purchase := domain.Purchase{
		ID:             uuid.NewString(),
		CustomerID:     customerID,
		ProductBarcode: barcode,
		Quantity:       quantity,
		Date:           s.now(),
	}
	if err := s.repo.Append(ctx, purchase); err != nil {
		logger.Error("purchase: failed to append record", err)
		return nil, err
	}
	logger.Info("purchase: recorded %d x %s for customer %d", quantity, barcode, customerID)
	return &purchase, nil
}

func (s *purchaseService) List(ctx context.Context) ([]domain.Purchase, error) {
	return s.repo.List(ctx)
}

// ListViews resolves customer and product names at display time. A
// purchase whose product was removed is shown with a placeholder name
// instead of failing the whole listing.
func (s *purchaseService) ListViews(ctx context.Context) ([]domain.PurchaseView, error) {
	purchases, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]domain.PurchaseView, 0, len(purchases))
	for _, p := range purchases {
		view := domain.PurchaseView{
			CustomerID:   p.CustomerID,
			CustomerName: UnknownCustomerName,
			Barcode:      p.ProductBarcode,
			ProductName:  RemovedProductName,
			Quantity:     p.Quantity,
			Date:         p.Date,
		}
		if customer, err := s.customers.Lookup(ctx, p.CustomerID); err == nil {
			view.CustomerName = customer.Name
		}
		if product, err := s.products.SearchByBarcode(ctx, p.ProductBarcode); err == nil {
			view.ProductName = product.Name
		}
		views = append(views, view)
	}
	return views, nil
}
