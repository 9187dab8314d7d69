package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/apoteklabs/apotek-cli/internal/catalog/domain"
	"github.com/apoteklabs/apotek-cli/internal/platform/apperr"
	"github.com/apoteklabs/apotek-cli/internal/platform/logger"
)

type ProductRepository interface {
	Add(ctx context.Context, p domain.Product) error
	Remove(ctx context.Context, barcode string) error
	Update(ctx context.Context, barcode string, upd domain.ProductUpdate) (*domain.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	SortedBy(ctx context.Context, key domain.SortKey) ([]domain.Product, error)
	SearchByName(ctx context.Context, query string) ([]domain.Product, error)
}

// memoryProductRepository keeps products in a barcode map plus an
// insertion-order list of barcodes. Not safe for concurrent use; the
// menu loop is the only caller.
type memoryProductRepository struct {
	byBarcode map[string]domain.Product
	order     []string
}

func NewMemoryProductRepository() ProductRepository {
	return &memoryProductRepository{
		byBarcode: make(map[string]domain.Product),
	}
}

func (r *memoryProductRepository) Add(_ context.Context, p domain.Product) error {
	if _, exists := r.byBarcode[p.Barcode]; exists {
		return fmt.Errorf("product barcode %s already exists: %w", p.Barcode, apperr.ErrDuplicateKey)
	}
	r.byBarcode[p.Barcode] = p
	r.order = append(r.order, p.Barcode)
	logger.Info("inventory: added product %s (%s)", p.Barcode, p.Type)
	return nil
}

func (r *memoryProductRepository) Remove(_ context.Context, barcode string) error {
	if _, exists := r.byBarcode[barcode]; !exists {
		return fmt.Errorf("product %s: %w", barcode, apperr.ErrNotFound)
	}
	delete(r.byBarcode, barcode)
	for i, b := range r.order {
		if b == barcode {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	logger.Info("inventory: removed product %s", barcode)
	return nil
}

func (r *memoryProductRepository) Update(_ context.Context, barcode string, upd domain.ProductUpdate) (*domain.Product, error) {
	p, exists := r.byBarcode[barcode]
	if !exists {
		return nil, fmt.Errorf("product %s: %w", barcode, apperr.ErrNotFound)
	}
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	p = upd.Apply(p)
	r.byBarcode[barcode] = p
	return &p, nil
}

func (r *memoryProductRepository) GetByBarcode(_ context.Context, barcode string) (*domain.Product, error) {
	p, exists := r.byBarcode[barcode]
	if !exists {
		return nil, fmt.Errorf("product %s: %w", barcode, apperr.ErrNotFound)
	}
	return &p, nil
}

func (r *memoryProductRepository) List(_ context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(r.order))
	for _, barcode := range r.order {
		products = append(products, r.byBarcode[barcode])
	}
	return products, nil
}

func (r *memoryProductRepository) SortedBy(ctx context.Context, key domain.SortKey) ([]domain.Product, error) {
	products, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(products, func(i, j int) bool {
		return key.Less(products[i], products[j])
	})
	return products, nil
}

func (r *memoryProductRepository) SearchByName(ctx context.Context, query string) ([]domain.Product, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matches := []domain.Product{}
	for _, p := range all {
		if p.MatchesName(query) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}
