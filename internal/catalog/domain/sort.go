package domain

import (
	"fmt"
	"strings"

	"github.com/apoteklabs/apotek-cli/internal/platform/apperr"
)

type SortKey string

const (
	SortByName         SortKey = "name"
	SortByPrice        SortKey = "price"
	SortByManufacturer SortKey = "manufacturer"
)

func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByName:
		return SortByName, nil
	case SortByPrice:
		return SortByPrice, nil
	case SortByManufacturer:
		return SortByManufacturer, nil
	default:
		return "", fmt.Errorf("sort key %q (use name, price or manufacturer): %w", s, apperr.ErrInvalidArgument)
	}
}

// Less orders two products ascending by the key, ties broken by barcode
// ascending so the order is deterministic.
func (k SortKey) Less(a, b Product) bool {
	switch k {
	case SortByPrice:
		if !a.Price.Equal(b.Price) {
			return a.Price.LessThan(b.Price)
		}
	case SortByManufacturer:
		if a.Manufacturer != b.Manufacturer {
			return a.Manufacturer < b.Manufacturer
		}
	default: // SortByName
		if a.Name != b.Name {
			return a.Name < b.Name
		}
	}
	return a.Barcode < b.Barcode
}
