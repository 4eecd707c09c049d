package catalog

import (
	"strings"

	"github.com/kamasex/kamasexecommerce/internal/product"
)

// Filter returns the products satisfying every selected criterion, in
// their original relative order. The input slice is never mutated; the
// result is always a fresh slice.
func Filter(products []product.Product, c Criteria) []product.Product {
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if matches(p, c) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p product.Product, c Criteria) bool {
	if c.SearchQuery != "" && !matchesQuery(p, c.SearchQuery) {
		return false
	}
	// Exact, case-sensitive: category values come straight from the data.
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if p.Price.LessThan(c.MinPrice) || p.Price.GreaterThan(c.MaxPrice) {
		return false
	}
	if c.InStock && !p.Available() {
		return false
	}
	if c.FeaturedOnly && !p.Featured {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring match over the name,
// description and category. Absent optional fields are simply skipped.
func matchesQuery(p product.Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if p.Description != "" && strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	if p.Category != "" && strings.Contains(strings.ToLower(p.Category), q) {
		return true
	}
	return false
}
