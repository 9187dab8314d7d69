package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/apoteklabs/apotek-cli/internal/platform/apperr"
)

// ProductUpdate carries the mutable product fields. Nil means "leave as
// is". The discriminator and variant fields are deliberately absent:
// a product never changes type after creation.
type ProductUpdate struct {
	Name         *string
	Price        *decimal.Decimal
	Manufacturer *string
}

func (u ProductUpdate) Validate() error {
	if u.Price != nil && u.Price.IsNegative() {
		return fmt.Errorf("price %s must not be negative: %w", u.Price, apperr.ErrInvalidArgument)
	}
	return nil
}

// Apply returns a copy of p with the non-nil fields replaced.
func (u ProductUpdate) Apply(p Product) Product {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Manufacturer != nil {
		p.Manufacturer = *u.Manufacturer
	}
	return p
}
