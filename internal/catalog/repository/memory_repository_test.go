package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/apoteklabs/apotek-cli/internal/catalog/domain"
	"github.com/apoteklabs/apotek-cli/internal/platform/apperr"
)

func mustMedicine(t *testing.T, barcode, name string, price float64, manufacturer string) domain.Product {
	t.Helper()
	p, err := domain.NewMedicine(barcode, name, decimal.NewFromFloat(price), manufacturer, false)
	assert.NoError(t, err)
	return p
}

func TestMemoryProductRepository_AddAndGet(t *testing.T) {
	ctx := context.TODO()
	repo := NewMemoryProductRepository()

	added := mustMedicine(t, "M1", "Aspirin", 9.99, "Bayer")
	assert.NoError(t, repo.Add(ctx, added))

	got, err := repo.GetByBarcode(ctx, "M1")
	assert.NoError(t, err)
	assert.Equal(t, added, *got)
}

func TestMemoryProductRepository_DuplicateAdd(t *testing.T) {
	ctx := context.TODO()
	repo := NewMemoryProductRepository()

	original := mustMedicine(t, "M1", "Aspirin", 9.99, "Bayer")
	assert.NoError(t, repo.Add(ctx, original))

	duplicate := mustMedicine(t, "M1", "Ibuprofen", 5.00, "Teva")
	err := repo.Add(ctx, duplicate)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrDuplicateKey)

	// Store must be unchanged after the failed add.
	got, err := repo.GetByBarcode(ctx, "M1")
	assert.NoError(t, err)
	assert.Equal(t, original, *got)

	all, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryProductRepository_RemoveThenGet(t *testing.T) {
	ctx := context.TODO()
	repo := NewMemoryProductRepository()

	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "M1", "Aspirin", 9.99, "Bayer")))
	assert.NoError(t, repo.Remove(ctx, "M1"))

	_, err := repo.GetByBarcode(ctx, "M1")
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = repo.Remove(ctx, "M1")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMemoryProductRepository_ListInsertionOrder(t *testing.T) {
	ctx := context.TODO()
	repo := NewMemoryProductRepository()

	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "M3", "Cough Syrup", 7, "Teva")))
	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "M1", "Aspirin", 9.99, "Bayer")))
	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "M2", "Ibuprofen", 5, "Teva")))

	all, err := repo.List(ctx)
	assert.NoError(t, err)

	barcodes := []string{}
	for _, p := range all {
		barcodes = append(barcodes, p.Barcode)
	}
	assert.Equal(t, []string{"M3", "M1", "M2"}, barcodes)
}

func TestMemoryProductRepository_SortedBy(t *testing.T) {
	ctx := context.TODO()
	repo := NewMemoryProductRepository()

	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "B2", "Zinc", 5, "Solgar")))
	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "B1", "Aspirin", 5, "Bayer")))
	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "B3", "Ibuprofen", 3, "Teva")))

	t.Run("By price, non-decreasing with barcode tie-break", func(t *testing.T) {
		sorted, err := repo.SortedBy(ctx, domain.SortByPrice)
		assert.NoError(t, err)

		for i := 1; i < len(sorted); i++ {
			assert.False(t, sorted[i].Price.LessThan(sorted[i-1].Price))
		}
		// B1 and B2 both cost 5; barcode ascending decides.
		barcodes := []string{sorted[0].Barcode, sorted[1].Barcode, sorted[2].Barcode}
		assert.Equal(t, []string{"B3", "B1", "B2"}, barcodes)
	})

	t.Run("By name", func(t *testing.T) {
		sorted, err := repo.SortedBy(ctx, domain.SortByName)
		assert.NoError(t, err)
		assert.Equal(t, "Aspirin", sorted[0].Name)
		assert.Equal(t, "Ibuprofen", sorted[1].Name)
		assert.Equal(t, "Zinc", sorted[2].Name)
	})

	t.Run("By manufacturer", func(t *testing.T) {
		sorted, err := repo.SortedBy(ctx, domain.SortByManufacturer)
		assert.NoError(t, err)
		assert.Equal(t, "Bayer", sorted[0].Manufacturer)
		assert.Equal(t, "Solgar", sorted[1].Manufacturer)
		assert.Equal(t, "Teva", sorted[2].Manufacturer)
	})

	t.Run("Does not disturb insertion order", func(t *testing.T) {
		all, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "B2", all[0].Barcode)
	})
}

func TestMemoryProductRepository_Update(t *testing.T) {
	ctx := context.TODO()
	repo := NewMemoryProductRepository()
	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "M1", "Aspirin", 9.99, "Bayer")))

	t.Run("Updates mutable fields", func(t *testing.T) {
		newName := "Aspirin Forte"
		newPrice := decimal.NewFromFloat(12)
		updated, err := repo.Update(ctx, "M1", domain.ProductUpdate{Name: &newName, Price: &newPrice})

		assert.NoError(t, err)
		assert.Equal(t, "Aspirin Forte", updated.Name)
		assert.True(t, newPrice.Equal(updated.Price))

		got, err := repo.GetByBarcode(ctx, "M1")
		assert.NoError(t, err)
		assert.Equal(t, "Aspirin Forte", got.Name)
	})

	t.Run("Negative price rejected, store unchanged", func(t *testing.T) {
		bad := decimal.NewFromFloat(-5)
		_, err := repo.Update(ctx, "M1", domain.ProductUpdate{Price: &bad})

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrInvalidArgument)

		got, _ := repo.GetByBarcode(ctx, "M1")
		assert.True(t, decimal.NewFromFloat(12).Equal(got.Price))
	})

	t.Run("Unknown barcode", func(t *testing.T) {
		newName := "X"
		_, err := repo.Update(ctx, "NOPE", domain.ProductUpdate{Name: &newName})
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestMemoryProductRepository_SearchByName(t *testing.T) {
	ctx := context.TODO()
	repo := NewMemoryProductRepository()
	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "M1", "Aspirin", 9.99, "Bayer")))
	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "M2", "Aspirin Forte", 12, "Bayer")))
	assert.NoError(t, repo.Add(ctx, mustMedicine(t, "M3", "Ibuprofen", 5, "Teva")))

	matches, err := repo.SearchByName(ctx, "aspirin")
	assert.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, "M1", matches[0].Barcode)
	assert.Equal(t, "M2", matches[1].Barcode)

	none, err := repo.SearchByName(ctx, "vitamin")
	assert.NoError(t, err)
	assert.Empty(t, none)
}
