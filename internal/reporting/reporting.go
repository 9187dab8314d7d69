// Package reporting derives aggregate views from inventory and customer
// snapshots. Everything here is a pure function; no state is mutated.
package reporting

import (
	catalogdomain "github.com/apoteklabs/apotek-cli/internal/catalog/domain"
	customerdomain "github.com/apoteklabs/apotek-cli/internal/customer/domain"
)

// CountByType tallies products per discriminator. All three types are
// always present in the result, zero counts included, so the values sum
// to the total product count.
func CountByType(products []catalogdomain.Product) map[catalogdomain.ProductType]int {
	counts := make(map[catalogdomain.ProductType]int, len(catalogdomain.AllProductTypes))
	for _, t := range catalogdomain.AllProductTypes {
		counts[t] = 0
	}
	for _, p := range products {
		counts[catalogdomain.ProductType(p.TypeName())]++
	}
	return counts
}

// GroupedNames maps each product type to its product names, insertion
// order preserved within each group.
func GroupedNames(products []catalogdomain.Product) map[catalogdomain.ProductType][]string {
	groups := make(map[catalogdomain.ProductType][]string, len(catalogdomain.AllProductTypes))
	for _, p := range products {
		groups[p.Type] = append(groups[p.Type], p.Name)
	}
	return groups
}

// Manufacturers returns the distinct manufacturer strings across all
// products, case-sensitive, in first-seen order.
func Manufacturers(products []catalogdomain.Product) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range products {
		if _, ok := seen[p.Manufacturer]; ok {
			continue
		}
		seen[p.Manufacturer] = struct{}{}
		out = append(out, p.Manufacturer)
	}
	return out
}

// DistributionHistogramData and DistributionPieData both hand the
// CountByType mapping to the chart sink; bar vs pie is purely the sink's
// presentation choice.

func DistributionHistogramData(products []catalogdomain.Product) map[string]float64 {
	return distributionData(products)
}

func DistributionPieData(products []catalogdomain.Product) map[string]float64 {
	return distributionData(products)
}

func distributionData(products []catalogdomain.Product) map[string]float64 {
	counts := CountByType(products)
	data := make(map[string]float64, len(counts))
	for t, n := range counts {
		data[string(t)] = float64(n)
	}
	return data
}

// AllNames returns product names and customer names for the "print all
// names" menu action.
func AllNames(products []catalogdomain.Product, customers []customerdomain.Customer) (productNames, customerNames []string) {
	for _, p := range products {
		productNames = append(productNames, p.Name)
	}
	for _, c := range customers {
		customerNames = append(customerNames, c.Name)
	}
	return productNames, customerNames
}
