package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	catalogdomain "github.com/apoteklabs/apotek-cli/internal/catalog/domain"
	catalogservice "github.com/apoteklabs/apotek-cli/internal/catalog/service"
	customerservice "github.com/apoteklabs/apotek-cli/internal/customer/service"
	"github.com/apoteklabs/apotek-cli/internal/platform/charts"
	"github.com/apoteklabs/apotek-cli/internal/platform/export"
	purchaseservice "github.com/apoteklabs/apotek-cli/internal/purchase/service"
	"github.com/apoteklabs/apotek-cli/internal/reporting"
)

// Menu is the interactive transport layer: it reads numbered selections,
// coerces input, invokes the services and reports failures without ever
// terminating the loop.
type Menu struct {
	in        *bufio.Scanner
	out       io.Writer
	inventory catalogservice.InventoryService
	customers customerservice.CustomerService
	purchases purchaseservice.PurchaseService
	exporter  *export.Exporter
	charts    *charts.Renderer

	// Current sort order applied by action 14; exports follow it.
	sortKey     *catalogdomain.SortKey
	sortReverse bool
}

func NewMenu(
	in io.Reader,
	out io.Writer,
	inventory catalogservice.InventoryService,
	customers customerservice.CustomerService,
	purchases purchaseservice.PurchaseService,
	exporter *export.Exporter,
	renderer *charts.Renderer,
) *Menu {
	return &Menu{
		in:        bufio.NewScanner(in),
		out:       out,
		inventory: inventory,
		customers: customers,
		purchases: purchases,
		exporter:  exporter,
		charts:    renderer,
	}
}

// Run loops until the exit action is chosen or input runs out.
func (m *Menu) Run(ctx context.Context) {
	for {
		m.printOptions()
		choice, ok := m.readLine("\nEnter your choice: ")
		if !ok {
			return
		}
		n, err := cast.ToIntE(choice)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid choice! Please enter a number between 1 and 17.")
			continue
		}
		switch n {
		case 1:
			m.addProduct(ctx)
		case 2:
			m.printInventory(ctx)
		case 3:
			m.printAllNames(ctx)
		case 4:
			m.printManufacturers(ctx)
		case 5:
			m.renderHistogram(ctx)
		case 6:
			m.renderPie(ctx)
		case 7:
			m.countByType(ctx)
		case 8:
			m.searchProduct(ctx)
		case 9:
			m.removeProduct(ctx)
		case 10:
			m.updateProduct(ctx)
		case 11:
			m.addCustomer(ctx)
		case 12:
			m.addPurchase(ctx)
		case 13:
			m.listPurchases(ctx)
		case 14:
			m.sortProducts(ctx)
		case 15:
			m.exportProducts(ctx)
		case 16:
			m.exportPurchases(ctx)
		case 17:
			fmt.Fprintln(m.out, "Exiting...")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please enter a number between 1 and 17.")
		}
	}
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out, "\n===== Pharmacy organization system =====")
	fmt.Fprintln(m.out, "1. Add Product")
	fmt.Fprintln(m.out, "2. Print Inventory")
	fmt.Fprintln(m.out, "3. Print the names of all products and customers")
	fmt.Fprintln(m.out, "4. Print all manufacturers")
	fmt.Fprintln(m.out, "5. Create a Histogram")
	fmt.Fprintln(m.out, "6. Create a Pie chart")
	fmt.Fprintln(m.out, "7. Count Products by Type")
	fmt.Fprintln(m.out, "8. Search Product")
	fmt.Fprintln(m.out, "9. Remove Product")
	fmt.Fprintln(m.out, "10. Update Product")
	fmt.Fprintln(m.out, "11. Add Customer")
	fmt.Fprintln(m.out, "12. Add Purchase")
	fmt.Fprintln(m.out, "13. List All Purchases")
	fmt.Fprintln(m.out, "14. Sort Products")
	fmt.Fprintln(m.out, "15. Save all the product data to a file")
	fmt.Fprintln(m.out, "16. Save all the purchase data to a file")
	fmt.Fprintln(m.out, "17. Exit")
}

// readLine prompts and reads one trimmed line; ok is false when input
// is exhausted.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) readInt(prompt string) (int, bool) {
	for {
		raw, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := cast.ToIntE(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Error: you didn't enter a number. Please try again.")
			continue
		}
		return n, true
	}
}

func (m *Menu) readInt64(prompt string) (int64, bool) {
	for {
		raw, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := cast.ToInt64E(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Error: you didn't enter a number. Please try again.")
			continue
		}
		return n, true
	}
}

func (m *Menu) readDecimal(prompt string) (decimal.Decimal, bool) {
	for {
		raw, ok := m.readLine(prompt)
		if !ok {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Fprintln(m.out, "Error: you didn't enter a number. Please try again.")
			continue
		}
		return d, true
	}
}

func (m *Menu) reportError(err error) {
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

func (m *Menu) addProduct(ctx context.Context) {
	fmt.Fprintln(m.out, "\n===== Product type =====")
	fmt.Fprintln(m.out, "1. Medicine")
	fmt.Fprintln(m.out, "2. Cosmetic")
	fmt.Fprintln(m.out, "3. Supplement")
	choice, ok := m.readLine("\nEnter your choice: ")
	if !ok {
		return
	}
	if choice != "1" && choice != "2" && choice != "3" {
		fmt.Fprintln(m.out, "Invalid choice!")
		return
	}

	name, ok := m.readLine("Enter product name: ")
	if !ok {
		return
	}
	price, ok := m.readDecimal("Enter product price: ")
	if !ok {
		return
	}
	barcode, ok := m.readLine("Enter product barcode: ")
	if !ok {
		return
	}
	manufacturer, ok := m.readLine("Enter manufacturer name: ")
	if !ok {
		return
	}

	var (
		product catalogdomain.Product
		err     error
	)
	switch choice {
	case "1":
		answer, ok := m.readLine("Is a prescription required (yes/no): ")
		if !ok {
			return
		}
		requires := strings.EqualFold(answer, "yes")
		product, err = catalogdomain.NewMedicine(barcode, name, price, manufacturer, requires)
	case "2":
		category, ok := m.readLine("Choose cosmetic category (makeup, skincare): ")
		if !ok {
			return
		}
		product, err = catalogdomain.NewCosmetic(barcode, name, price, manufacturer, catalogdomain.CosmeticCategory(strings.ToLower(category)))
	case "3":
		category, ok := m.readLine("Choose supplement category (vitamin, mineral): ")
		if !ok {
			return
		}
		product, err = catalogdomain.NewSupplement(barcode, name, price, manufacturer, catalogdomain.SupplementCategory(strings.ToLower(category)))
	}
	if err != nil {
		m.reportError(err)
		return
	}

	if err := m.inventory.AddProduct(ctx, product); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "Product added successfully!")
}

func (m *Menu) printInventory(ctx context.Context) {
	fmt.Fprintln(m.out, "1. Products")
	fmt.Fprintln(m.out, "2. Customers")
	choice, ok := m.readLine("\nEnter your choice (1/2): ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		products, err := m.inventory.ListProducts(ctx)
		if err != nil {
			m.reportError(err)
			return
		}
		if len(products) == 0 {
			fmt.Fprintln(m.out, "Inventory is empty!")
			return
		}
		for _, p := range products {
			fmt.Fprintln(m.out, p.Summary())
		}
	case "2":
		customers, err := m.customers.List(ctx)
		if err != nil {
			m.reportError(err)
			return
		}
		if len(customers) == 0 {
			fmt.Fprintln(m.out, "No customers found!")
			return
		}
		for _, c := range customers {
			fmt.Fprintln(m.out, c.Summary())
		}
	default:
		fmt.Fprintln(m.out, "You didn't enter a valid choice!")
	}
}

func (m *Menu) printAllNames(ctx context.Context) {
	products, err := m.inventory.ListProducts(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	customers, err := m.customers.List(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	productNames, customerNames := reporting.AllNames(products, customers)

	fmt.Fprintln(m.out, "\nProduct Names:")
	if len(productNames) == 0 {
		fmt.Fprintln(m.out, "No products in the system.")
	}
	for _, name := range productNames {
		fmt.Fprintln(m.out, name)
	}
	fmt.Fprintln(m.out, "\nCustomer Names:")
	if len(customerNames) == 0 {
		fmt.Fprintln(m.out, "No customers in the system.")
	}
	for _, name := range customerNames {
		fmt.Fprintln(m.out, name)
	}
}

func (m *Menu) printManufacturers(ctx context.Context) {
	products, err := m.inventory.ListProducts(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	manufacturers := reporting.Manufacturers(products)
	if len(manufacturers) == 0 {
		fmt.Fprintln(m.out, "No products in the inventory, so there are no manufacturers in the system.")
		return
	}
	fmt.Fprintln(m.out, "\n==== Manufacturers ====")
	for _, name := range manufacturers {
		fmt.Fprintln(m.out, name)
	}
}

func (m *Menu) renderHistogram(ctx context.Context) {
	products, err := m.inventory.ListProducts(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	data := reporting.DistributionHistogramData(products)
	path, err := m.charts.Histogram("Product Distribution by Type", "product_distribution_histogram.html", data)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Histogram saved to %s\n", path)
}

func (m *Menu) renderPie(ctx context.Context) {
	products, err := m.inventory.ListProducts(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	data := reporting.DistributionPieData(products)
	path, err := m.charts.Pie("Product Distribution by Type", "product_distribution_pie.html", data)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Pie chart saved to %s\n", path)
}

func (m *Menu) countByType(ctx context.Context) {
	fmt.Fprintln(m.out, "\n===== Product Type =====")
	fmt.Fprintln(m.out, "1. Medicine")
	fmt.Fprintln(m.out, "2. Cosmetic")
	fmt.Fprintln(m.out, "3. Supplement")
	choice, ok := m.readLine("\nEnter your choice (1/2/3): ")
	if !ok {
		return
	}
	typeByChoice := map[string]catalogdomain.ProductType{
		"1": catalogdomain.TypeMedicine,
		"2": catalogdomain.TypeCosmetic,
		"3": catalogdomain.TypeSupplement,
	}
	productType, valid := typeByChoice[choice]
	if !valid {
		fmt.Fprintln(m.out, "Invalid choice! Please enter 1, 2, or 3.")
		return
	}
	products, err := m.inventory.ListProducts(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	counts := reporting.CountByType(products)
	fmt.Fprintf(m.out, "Number of %s products: %d\n", productType, counts[productType])
}

func (m *Menu) searchProduct(ctx context.Context) {
	fmt.Fprintln(m.out, "1. Search by barcode")
	fmt.Fprintln(m.out, "2. Search by name")
	choice, ok := m.readLine("\nEnter your choice (1/2): ")
	if !ok {
		return
	}
	switch choice {
	case "1":
		barcode, ok := m.readLine("Enter product barcode to search: ")
		if !ok {
			return
		}
		product, err := m.inventory.SearchByBarcode(ctx, barcode)
		if err != nil {
			m.reportError(err)
			return
		}
		fmt.Fprintln(m.out, product.Summary())
	case "2":
		query, ok := m.readLine("Enter product name to search: ")
		if !ok {
			return
		}
		products, err := m.inventory.SearchByName(ctx, query)
		if err != nil {
			m.reportError(err)
			return
		}
		if len(products) == 0 {
			fmt.Fprintln(m.out, "No products found.")
			return
		}
		for _, p := range products {
			fmt.Fprintln(m.out, p.Summary())
		}
	default:
		fmt.Fprintln(m.out, "You didn't enter a valid choice!")
	}
}

func (m *Menu) removeProduct(ctx context.Context) {
	barcode, ok := m.readLine("Enter product barcode to remove: ")
	if !ok {
		return
	}
	if err := m.inventory.RemoveProduct(ctx, barcode); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "Product removed successfully.")
}

func (m *Menu) updateProduct(ctx context.Context) {
	barcode, ok := m.readLine("Enter product barcode to update: ")
	if !ok {
		return
	}
	field, ok := m.readLine("What do you want to update? (name, price, manufacturer): ")
	if !ok {
		return
	}

	var upd catalogdomain.ProductUpdate
	switch strings.ToLower(field) {
	case "name":
		name, ok := m.readLine("Enter new product name: ")
		if !ok {
			return
		}
		upd.Name = &name
	case "price":
		price, ok := m.readDecimal("Enter new price: ")
		if !ok {
			return
		}
		upd.Price = &price
	case "manufacturer":
		manufacturer, ok := m.readLine("Enter new manufacturer: ")
		if !ok {
			return
		}
		upd.Manufacturer = &manufacturer
	default:
		fmt.Fprintln(m.out, "Invalid update choice.")
		return
	}

	updated, err := m.inventory.UpdateProduct(ctx, barcode, upd)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "Product updated successfully.")
	fmt.Fprintln(m.out, updated.Summary())
}

func (m *Menu) addCustomer(ctx context.Context) {
	name, ok := m.readLine("Enter customer name: ")
	if !ok {
		return
	}
	phone, ok := m.readLine("Enter customer phone number (optional): ")
	if !ok {
		return
	}
	customer, err := m.customers.Register(ctx, name, phone)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "Customer added successfully!")
	fmt.Fprintln(m.out, customer.Summary())
}

func (m *Menu) addPurchase(ctx context.Context) {
	customerID, ok := m.readInt64("Enter customer ID: ")
	if !ok {
		return
	}
	barcode, ok := m.readLine("Enter product barcode: ")
	if !ok {
		return
	}
	quantity, ok := m.readInt("Enter quantity: ")
	if !ok {
		return
	}
	if _, err := m.purchases.Record(ctx, customerID, barcode, quantity); err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintln(m.out, "Purchase added successfully!")
}

func (m *Menu) listPurchases(ctx context.Context) {
	views, err := m.purchases.ListViews(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	if len(views) == 0 {
		fmt.Fprintln(m.out, "No purchases found.")
		return
	}
	for _, v := range views {
		fmt.Fprintln(m.out, v.Summary())
	}
}

func (m *Menu) sortProducts(ctx context.Context) {
	raw, ok := m.readLine("Sort by 'name', 'price' or 'manufacturer': ")
	if !ok {
		return
	}
	key, err := catalogdomain.ParseSortKey(raw)
	if err != nil {
		m.reportError(err)
		return
	}
	order, ok := m.readLine("Ascending (a) or Descending (d): ")
	if !ok {
		return
	}
	if order != "a" && order != "d" {
		fmt.Fprintln(m.out, "Invalid order. Please choose 'a' for ascending or 'd' for descending.")
		return
	}

	m.sortKey = &key
	m.sortReverse = order == "d"

	products, err := m.sortedForDisplay(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	if len(products) == 0 {
		fmt.Fprintln(m.out, "No products to sort.")
		return
	}
	fmt.Fprintln(m.out, "Sorted Products:")
	for _, p := range products {
		fmt.Fprintln(m.out, p.Summary())
	}
}

// sortedForDisplay applies the current sort order, defaulting to
// insertion order when action 14 has not been used yet.
func (m *Menu) sortedForDisplay(ctx context.Context) ([]catalogdomain.Product, error) {
	if m.sortKey == nil {
		return m.inventory.ListProducts(ctx)
	}
	products, err := m.inventory.SortedProducts(ctx, *m.sortKey)
	if err != nil {
		return nil, err
	}
	if m.sortReverse {
		for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
			products[i], products[j] = products[j], products[i]
		}
	}
	return products, nil
}

func (m *Menu) exportProducts(ctx context.Context) {
	filename, ok := m.readLine("Enter filename to save the product list: ")
	if !ok {
		return
	}
	products, err := m.sortedForDisplay(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, p.ExportLine())
	}
	path, err := m.exporter.WriteLines(ensureTxt(filename), lines)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Inventory saved successfully to %s\n", path)
}

func (m *Menu) exportPurchases(ctx context.Context) {
	filename, ok := m.readLine("Enter filename to save the purchase list: ")
	if !ok {
		return
	}
	views, err := m.purchases.ListViews(ctx)
	if err != nil {
		m.reportError(err)
		return
	}
	lines := make([]string, 0, len(views))
	for _, v := range views {
		lines = append(lines, v.ExportLine())
	}
	path, err := m.exporter.WriteLines(ensureTxt(filename), lines)
	if err != nil {
		m.reportError(err)
		return
	}
	fmt.Fprintf(m.out, "Purchases saved successfully to %s\n", path)
}

func ensureTxt(filename string) string {
	if strings.Contains(filename, ".") {
		return filename
	}
	return filename + ".txt"
}
