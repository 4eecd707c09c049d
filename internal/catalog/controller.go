package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/kamasex/kamasexecommerce/internal/cart"
	"github.com/kamasex/kamasexecommerce/internal/product"
)

// DefaultPageSize matches the storefront grid's items-per-page.
const DefaultPageSize = 12

// View is the derived state handed to the rendering collaborator: the
// visible page plus the metadata the chrome around the grid needs
// (result counter, page selector, category facet, price bound inputs).
type View struct {
	Items      []product.Product
	Total      int
	Page       int
	TotalPages int
	Categories []string
	MinPrice   decimal.Decimal
	MaxPrice   decimal.Decimal
}

// Observer consumes each newly derived view. Only the latest view is
// ever observable; intermediate states are not queued.
type Observer func(View)

// Option configures a Controller at construction.
type Option func(*Controller)

func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n >= 1 {
			c.pageSize = n
		}
	}
}

// WithCollation sets the language used for name orderings.
func WithCollation(tag language.Tag) Option {
	return func(c *Controller) { c.sorter = NewSorter(tag) }
}

func WithObserver(fn Observer) Option {
	return func(c *Controller) { c.observer = fn }
}

// WithNotifier wires the quick-add output boundary.
func WithNotifier(n cart.Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

// Controller owns the current criteria and page number and re-derives
// the visible page on every change. It is the sole mutator of that
// state; all derivation runs synchronously on the caller's goroutine.
type Controller struct {
	products []product.Product
	criteria Criteria
	page     int
	pageSize int
	sorter   *Sorter
	observer Observer
	notifier cart.Notifier

	// Filtered IDs of the previous recompute, used to detect when the
	// result set actually changed shape and the page must reset.
	lastIDs []string
	view    View
}

// NewController builds a controller over an already-loaded collection
// and publishes the initial all-permissive view.
func NewController(products []product.Product, opts ...Option) *Controller {
	c := &Controller{
		products: append([]product.Product(nil), products...),
		pageSize: DefaultPageSize,
		page:     1,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sorter == nil {
		c.sorter = NewSorter(language.Spanish)
	}
	c.criteria = DefaultCriteria(c.products)
	c.recompute()
	return c
}

// Criteria returns the currently applied criteria.
func (c *Controller) Criteria() Criteria { return c.criteria }

// Visible returns the last derived view.
func (c *Controller) Visible() View { return c.view }

// Update merges a partial criteria change and re-derives the view.
// The last applied update always wins.
func (c *Controller) Update(p Patch) View {
	c.criteria = c.criteria.merge(p)
	return c.recompute()
}

// Reset restores the default criteria, re-deriving the price bounds
// from the full collection, and goes back to page 1.
func (c *Controller) Reset() View {
	c.criteria = DefaultCriteria(c.products)
	c.page = 1
	return c.recompute()
}

// SetPage navigates to a 1-indexed page. Out-of-range values clamp.
func (c *Controller) SetPage(page int) View {
	c.page = ClampPage(page, c.view.TotalPages)
	return c.recompute()
}

// SetProducts replaces the source collection for a new render cycle and
// re-derives everything, keeping the current criteria.
func (c *Controller) SetProducts(products []product.Product) View {
	c.products = append([]product.Product(nil), products...)
	return c.recompute()
}

// ActiveFilterCount is the number shown on the filter badge: category,
// in-stock, featured-only and search query each count as one. Price
// range deviation is deliberately not counted, matching the storefront
// badge's observed behavior.
func (c *Controller) ActiveFilterCount() int {
	n := 0
	if c.criteria.Category != "" {
		n++
	}
	if c.criteria.InStock {
		n++
	}
	if c.criteria.FeaturedOnly {
		n++
	}
	if c.criteria.SearchQuery != "" {
		n++
	}
	return n
}

// QuickAdd originates an add-to-cart signal for a product on the
// visible page. The event is opaque to the catalog: no validation, no
// acknowledgment. Without a wired notifier this is a no-op.
func (c *Controller) QuickAdd(productID string, quantity int) {
	if c.notifier == nil {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	c.notifier.Notify(cart.Event{
		ID:        uuid.NewString(),
		ProductID: productID,
		Quantity:  quantity,
	})
}

// recompute runs the full filter -> sort -> paginate derivation and
// publishes the result. When the filtered set differs from the previous
// recompute the page resets to 1; a stale page number against a fresh
// result set must never survive.
func (c *Controller) recompute() View {
	filtered := Filter(c.products, c.criteria)

	ids := make([]string, len(filtered))
	for i, p := range filtered {
		ids[i] = p.ID
	}
	if !equalIDs(ids, c.lastIDs) {
		c.page = 1
	}
	c.lastIDs = ids

	sorted := c.sorter.Sort(filtered, c.criteria.SortBy)
	items, totalPages := Paginate(sorted, c.pageSize, c.page)
	c.page = ClampPage(c.page, totalPages)

	min, max, ok := PriceBounds(c.products)
	if !ok {
		min, max = placeholderMin, placeholderMax
	}

	c.view = View{
		Items:      items,
		Total:      len(filtered),
		Page:       c.page,
		TotalPages: totalPages,
		Categories: Categories(c.products),
		MinPrice:   min,
		MaxPrice:   max,
	}
	if c.observer != nil {
		c.observer(c.view)
	}
	return c.view
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
