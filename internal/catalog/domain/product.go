package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/apoteklabs/apotek-cli/internal/platform/apperr"
)

type ProductType string

const (
	TypeMedicine   ProductType = "Medicine"
	TypeCosmetic   ProductType = "Cosmetic"
	TypeSupplement ProductType = "Supplement"
)

// AllProductTypes in the fixed reporting order.
var AllProductTypes = []ProductType{TypeMedicine, TypeCosmetic, TypeSupplement}

type CosmeticCategory string

const (
	CosmeticMakeup   CosmeticCategory = "makeup"
	CosmeticSkincare CosmeticCategory = "skincare"
)

type SupplementCategory string

const (
	SupplementVitamin SupplementCategory = "vitamin"
	SupplementMineral SupplementCategory = "mineral"
)

// Product is a tagged union: Type is the discriminator, and only the
// variant field matching Type is meaningful. Construct through
// NewMedicine/NewCosmetic/NewSupplement, never as a literal.
type Product struct {
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Manufacturer string          `json:"manufacturer"`
	Type         ProductType     `json:"type"`

	RequiresPrescription bool               `json:"requires_prescription,omitempty"` // Medicine
	CosmeticCategory     CosmeticCategory   `json:"cosmetic_category,omitempty"`     // Cosmetic
	SupplementCategory   SupplementCategory `json:"supplement_category,omitempty"`   // Supplement
}

func NewMedicine(barcode, name string, price decimal.Decimal, manufacturer string, requiresPrescription bool) (Product, error) {
	if err := validateShared(barcode, price); err != nil {
		return Product{}, err
	}
	return Product{
		Barcode:              barcode,
		Name:                 name,
		Price:                price,
		Manufacturer:         manufacturer,
		Type:                 TypeMedicine,
		RequiresPrescription: requiresPrescription,
	}, nil
}

func NewCosmetic(barcode, name string, price decimal.Decimal, manufacturer string, category CosmeticCategory) (Product, error) {
	if err := validateShared(barcode, price); err != nil {
		return Product{}, err
	}
	if category != CosmeticMakeup && category != CosmeticSkincare {
		return Product{}, fmt.Errorf("cosmetic category %q: %w", category, apperr.ErrInvalidArgument)
	}
	return Product{
		Barcode:          barcode,
		Name:             name,
		Price:            price,
		Manufacturer:     manufacturer,
		Type:             TypeCosmetic,
		CosmeticCategory: category,
	}, nil
}

func NewSupplement(barcode, name string, price decimal.Decimal, manufacturer string, category SupplementCategory) (Product, error) {
	if err := validateShared(barcode, price); err != nil {
		return Product{}, err
	}
	if category != SupplementVitamin && category != SupplementMineral {
		return Product{}, fmt.Errorf("supplement category %q: %w", category, apperr.ErrInvalidArgument)
	}
	return Product{
		Barcode:            barcode,
		Name:               name,
		Price:              price,
		Manufacturer:       manufacturer,
		Type:               TypeSupplement,
		SupplementCategory: category,
	}, nil
}

func validateShared(barcode string, price decimal.Decimal) error {
	if strings.TrimSpace(barcode) == "" {
		return fmt.Errorf("barcode must not be empty: %w", apperr.ErrInvalidArgument)
	}
	if price.IsNegative() {
		return fmt.Errorf("price %s must not be negative: %w", price, apperr.ErrInvalidArgument)
	}
	return nil
}

// TypeName returns the discriminator as the string used by reporting.
func (p Product) TypeName() string {
	return string(p.Type)
}

// VariantDetail renders the type-specific field for summaries and export.
func (p Product) VariantDetail() string {
	switch p.Type {
	case TypeMedicine:
		if p.RequiresPrescription {
			return "prescription required"
		}
		return "no prescription"
	case TypeCosmetic:
		return string(p.CosmeticCategory)
	case TypeSupplement:
		return string(p.SupplementCategory)
	default:
		return "unknown"
	}
}

// Summary is the one-line human-readable form shown by the menu.
func (p Product) Summary() string {
	return fmt.Sprintf("%s: Name - %s, Price - %s, Barcode - %s, Manufacturer - %s, %s",
		p.Type, p.Name, p.Price, p.Barcode, p.Manufacturer, p.VariantDetail())
}

// ExportLine is the pipe-delimited export format (without trailing newline).
func (p Product) ExportLine() string {
	return fmt.Sprintf("%s | %s | %s | %s | %s | %s",
		p.Barcode, p.Name, p.Type, p.Price, p.Manufacturer, p.VariantDetail())
}

// MatchesName reports whether the query is a case-insensitive substring
// of the product name.
func (p Product) MatchesName(query string) bool {
	return strings.Contains(strings.ToLower(p.Name), strings.ToLower(query))
}
