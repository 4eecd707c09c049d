package catalog

import "github.com/kamasex/kamasexecommerce/internal/product"

// Paginate slices one page out of an ordered sequence. Pages are
// 1-indexed; out-of-range page numbers clamp silently. An empty input
// yields an empty page and zero total pages — callers render no
// pagination controls in that case.
func Paginate(products []product.Product, pageSize, page int) ([]product.Product, int) {
	if pageSize < 1 {
		pageSize = 1
	}
	n := len(products)
	if n == 0 {
		return []product.Product{}, 0
	}

	totalPages := (n + pageSize - 1) / pageSize
	page = ClampPage(page, totalPages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > n {
		end = n
	}
	return append([]product.Product(nil), products[start:end]...), totalPages
}

// ClampPage forces page into [1, max(totalPages, 1)]. Page 1 stays the
// valid current page even when there is nothing to show.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
