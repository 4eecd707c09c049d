package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/kamasex/kamasexecommerce/internal/product"
)

// Categories returns the distinct non-empty categories across the full
// collection, in first-seen order. Uncategorized products are listed in
// the grid but never show up here.
func Categories(products []product.Product) []string {
	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// PriceBounds returns the min and max price across the full unfiltered
// collection. ok is false for an empty collection.
func PriceBounds(products []product.Product) (min, max decimal.Decimal, ok bool) {
	if len(products) == 0 {
		return decimal.Zero, decimal.Zero, false
	}
	min, max = products[0].Price, products[0].Price
	for _, p := range products[1:] {
		if p.Price.LessThan(min) {
			min = p.Price
		}
		if p.Price.GreaterThan(max) {
			max = p.Price
		}
	}
	return min, max, true
}
