// Package catalog implements the storefront derivation pipeline: a pure
// filter -> sort -> paginate chain over an in-memory product collection,
// plus the controller that owns the user's criteria and page state.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kamasex/kamasexecommerce/internal/product"
)

// SortBy enumerates the orderings the storefront offers.
type SortBy string

const (
	SortFeatured  SortBy = "featured"
	SortNewest    SortBy = "newest"
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortNameAsc   SortBy = "name-asc"
	SortNameDesc  SortBy = "name-desc"
)

// Placeholder price bounds used when the collection is empty and no real
// bounds can be derived.
var (
	placeholderMin = decimal.Zero
	placeholderMax = decimal.NewFromInt(1000000)
)

// Criteria is the full set of user-selected filters. Zero/empty fields
// mean "filter not applied"; MinPrice/MaxPrice form a closed interval
// that is always applied. An inverted interval (min > max) matches
// nothing — that is the interval test doing its job, not an error.
type Criteria struct {
	SearchQuery  string
	Category     string
	MinPrice     decimal.Decimal
	MaxPrice     decimal.Decimal
	InStock      bool
	FeaturedOnly bool
	SortBy       SortBy
}

// DefaultCriteria returns the all-permissive criteria for a collection:
// featured ordering, no text/category/flag filters, and the price range
// spanning the collection's own min/max so every product passes.
func DefaultCriteria(products []product.Product) Criteria {
	min, max, ok := PriceBounds(products)
	if !ok {
		min, max = placeholderMin, placeholderMax
	}
	return Criteria{
		MinPrice: min,
		MaxPrice: max,
		SortBy:   SortFeatured,
	}
}

// Patch is a partial criteria update; nil fields keep the current value.
// Each user event carries exactly one field, but merging is generic.
type Patch struct {
	SearchQuery  *string
	Category     *string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	InStock      *bool
	FeaturedOnly *bool
	SortBy       *SortBy
}

func (c Criteria) merge(p Patch) Criteria {
	if p.SearchQuery != nil {
		c.SearchQuery = *p.SearchQuery
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.MinPrice != nil {
		c.MinPrice = *p.MinPrice
	}
	if p.MaxPrice != nil {
		c.MaxPrice = *p.MaxPrice
	}
	if p.InStock != nil {
		c.InStock = *p.InStock
	}
	if p.FeaturedOnly != nil {
		c.FeaturedOnly = *p.FeaturedOnly
	}
	if p.SortBy != nil {
		c.SortBy = *p.SortBy
	}
	return c
}

// ParseAmount coerces free-form price-field text to a decimal. While the
// user is mid-edit the field may hold garbage; that coerces to fallback
// instead of surfacing an error.
func ParseAmount(s string, fallback decimal.Decimal) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fallback
	}
	return d
}
