package service

import (
	"context"

	"github.com/apoteklabs/apotek-cli/internal/catalog/domain"
	"github.com/apoteklabs/apotek-cli/internal/catalog/repository"
	"github.com/apoteklabs/apotek-cli/internal/platform/logger"
)

type InventoryService interface {
	AddProduct(ctx context.Context, p domain.Product) error
	RemoveProduct(ctx context.Context, barcode string) error
	UpdateProduct(ctx context.Context, barcode string, upd domain.ProductUpdate) (*domain.Product, error)
	SearchByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	SearchByName(ctx context.Context, query string) ([]domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	SortedProducts(ctx context.Context, key domain.SortKey) ([]domain.Product, error)
}

type inventoryService struct {
	repo repository.ProductRepository
}

func NewInventoryService(repo repository.ProductRepository) InventoryService {
	return &inventoryService{repo: repo}
}

func (s *inventoryService) AddProduct(ctx context.Context, p domain.Product) error {
	return s.repo.Add(ctx, p)
}

func (s *inventoryService) RemoveProduct(ctx context.Context, barcode string) error {
	// Purchases referencing this barcode are left dangling on purpose;
	// the ledger resolves them to a placeholder at display time.
	return s.repo.Remove(ctx, barcode)
}

func (s *inventoryService) UpdateProduct(ctx context.Context, barcode string, upd domain.ProductUpdate) (*domain.Product, error) {
	updated, err := s.repo.Update(ctx, barcode, upd)
	if err != nil {
		return nil, err
	}
	logger.Info("inventory: updated product %s", barcode)
	return updated, nil
}

func (s *inventoryService) SearchByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	return s.repo.GetByBarcode(ctx, barcode)
}

func (s *inventoryService) SearchByName(ctx context.Context, query string) ([]domain.Product, error) {
	return s.repo.SearchByName(ctx, query)
}

func (s *inventoryService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *inventoryService) SortedProducts(ctx context.Context, key domain.SortKey) ([]domain.Product, error) {
	return s.repo.SortedBy(ctx, key)
}
