package domain

import (
	"fmt"
	"time"
)

// Purchase links a customer and a product by id/barcode only; neither
// record is owned here. The referenced product may be removed later,
// leaving the reference dangling until display time.
type Purchase struct {
	ID             string    `json:"id"`
	CustomerID     int64     `json:"customer_id"`
	ProductBarcode string    `json:"product_barcode"`
	Quantity       int       `json:"quantity"`
	Date           time.Time `json:"date"`
}

// PurchaseView is a purchase resolved against the customer registry and
// the inventory store for display or export. Placeholders stand in for
// references that no longer resolve.
type PurchaseView struct {
	CustomerID   int64
	CustomerName string
	Barcode      string
	ProductName  string
	Quantity     int
	Date         time.Time
}

// ExportLine is the pipe-delimited export format (without trailing newline).
func (v PurchaseView) ExportLine() string {
	return fmt.Sprintf("%d | %s | %s | %s | %d | %s",
		v.CustomerID, v.CustomerName, v.Barcode, v.ProductName, v.Quantity, v.Date.Format("2006-01-02"))
}

// Summary is the one-line form shown by the menu.
func (v PurchaseView) Summary() string {
	return fmt.Sprintf("Customer: %d (%s) | Product: %s (%s) | Quantity: %d | Date: %s",
		v.CustomerID, v.CustomerName, v.Barcode, v.ProductName, v.Quantity, v.Date.Format("2006-01-02"))
}
