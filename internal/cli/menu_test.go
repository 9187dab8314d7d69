package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	catalogrepo "github.com/apoteklabs/apotek-cli/internal/catalog/repository"
	catalogservice "github.com/apoteklabs/apotek-cli/internal/catalog/service"
	customerrepo "github.com/apoteklabs/apotek-cli/internal/customer/repository"
	customerservice "github.com/apoteklabs/apotek-cli/internal/customer/service"
	"github.com/apoteklabs/apotek-cli/internal/platform/charts"
	"github.com/apoteklabs/apotek-cli/internal/platform/export"
	purchaserepo "github.com/apoteklabs/apotek-cli/internal/purchase/repository"
	purchaseservice "github.com/apoteklabs/apotek-cli/internal/purchase/service"
)

// newTestMenu wires real in-memory components behind a scripted session.
func newTestMenu(t *testing.T, script []string) (*Menu, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()

	inventorySvc := catalogservice.NewInventoryService(catalogrepo.NewMemoryProductRepository())
	customerSvc := customerservice.NewCustomerService(customerrepo.NewMemoryCustomerRepository())
	purchaseSvc := purchaseservice.NewPurchaseService(purchaserepo.NewMemoryPurchaseRepository(), customerSvc, inventorySvc)

	in := strings.NewReader(strings.Join(script, "\n") + "\n")
	out := &bytes.Buffer{}
	menu := NewMenu(in, out, inventorySvc, customerSvc, purchaseSvc, export.NewExporter(dir), charts.NewRenderer(dir))
	return menu, out, dir
}

func TestMenu_FullSession(t *testing.T) {
	script := []string{
		"11", "Alice", "0501234567", // add customer
		"1", "1", "Aspirin", "9.99", "M1", "Bayer", "yes", // add medicine
		"12", "1", "M1", "2", // add purchase
		"13",            // list purchases
		"8", "1", "M1",  // search by barcode
		"17",            // exit
	}
	menu, out, _ := newTestMenu(t, script)

	menu.Run(context.TODO())

	output := out.String()
	assert.Contains(t, output, "Customer added successfully!")
	assert.Contains(t, output, "Customer ID: 1")
	assert.Contains(t, output, "Product added successfully!")
	assert.Contains(t, output, "Purchase added successfully!")
	assert.Contains(t, output, "Customer: 1 (Alice) | Product: M1 (Aspirin) | Quantity: 2")
	assert.Contains(t, output, "Medicine: Name - Aspirin")
	assert.Contains(t, output, "Exiting...")
}

func TestMenu_InvalidSelectionsNeverCrash(t *testing.T) {
	script := []string{"99", "abc", "0", "17"}
	menu, out, _ := newTestMenu(t, script)

	menu.Run(context.TODO())

	output := out.String()
	assert.Equal(t, 3, strings.Count(output, "Invalid choice! Please enter a number between 1 and 17."))
	assert.Contains(t, output, "Exiting...")
}

func TestMenu_OperationErrorsAreReported(t *testing.T) {
	script := []string{
		"9", "NOPE", // remove unknown product
		"12", "99", "M1", "1", // purchase for unknown customer
		"17",
	}
	menu, out, _ := newTestMenu(t, script)

	menu.Run(context.TODO())

	output := out.String()
	assert.Contains(t, output, "Error: product NOPE: not found")
	assert.Contains(t, output, "Error: customer 99: not found")
	assert.Contains(t, output, "Exiting...")
}

func TestMenu_ExportProducts(t *testing.T) {
	script := []string{
		"1", "2", "Lipstick", "5", "C1", "Lorea", "makeup", // add cosmetic
		"15", "inventory", // export, extension added automatically
		"17",
	}
	menu, out, dir := newTestMenu(t, script)

	menu.Run(context.TODO())

	assert.Contains(t, out.String(), "Inventory saved successfully to")

	content, err := os.ReadFile(filepath.Join(dir, "inventory.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "C1 | Lipstick | Cosmetic | 5 | Lorea | makeup\n", string(content))
}

func TestMenu_SortThenExportFollowsSortOrder(t *testing.T) {
	script := []string{
		"1", "1", "Zinc Oxide", "3", "B2", "Teva", "no",
		"1", "1", "Aspirin", "9.99", "B1", "Bayer", "no",
		"14", "name", "a", // sort by name ascending
		"15", "sorted.txt",
		"17",
	}
	menu, _, dir := newTestMenu(t, script)

	menu.Run(context.TODO())

	content, err := os.ReadFile(filepath.Join(dir, "sorted.txt"))
	assert.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "B1 | Aspirin"))
	assert.True(t, strings.HasPrefix(lines[1], "B2 | Zinc Oxide"))
}

func TestMenu_DanglingPurchaseListsPlaceholder(t *testing.T) {
	script := []string{
		"11", "Alice", "",
		"1", "1", "Aspirin", "9.99", "M1", "Bayer", "no",
		"12", "1", "M1", "1",
		"9", "M1", // remove the purchased product
		"13", // listing must still work
		"17",
	}
	menu, out, _ := newTestMenu(t, script)

	menu.Run(context.TODO())

	output := out.String()
	assert.Contains(t, output, "Product removed successfully.")
	assert.Contains(t, output, "Product: M1 ((removed))")
}
