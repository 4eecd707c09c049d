package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/kamasex/kamasexecommerce/internal/product"
)

// Sorter orders product slices. Name orderings are locale-aware, so the
// collation language is fixed at construction.
type Sorter struct {
	coll *collate.Collator
}

func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{coll: collate.New(tag)}
}

// Sort returns a new slice ordered by key. Every ordering is stable:
// products with equal keys keep their relative order from the input.
// An unknown key leaves the input order untouched.
func (s *Sorter) Sort(products []product.Product, key SortBy) []product.Product {
	out := append([]product.Product(nil), products...)

	switch key {
	case SortFeatured:
		// Stable partition: featured first, everything else untouched.
		// Deliberately no secondary key.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Featured && !out[j].Featured
		})
	case SortNewest:
		// Zero timestamps are the epoch, so unknown ages sink to the end.
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.GreaterThan(out[j].Price)
		})
	case SortNameAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return s.coll.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return s.coll.CompareString(out[i].Name, out[j].Name) > 0
		})
	}
	return out
}
