// Package product defines the catalog item model and the JSON loader
// that supplies the in-memory collection the catalog engine works on.
package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Image is one entry of a product's image gallery, in display order.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type Product struct {
	ID          string `json:"id"`
	Slug        string `json:"slug,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Empty category means "uncategorized": the item is still listed but
	// never appears in the category facet.
	Category string `json:"category,omitempty"`
	// We keep price as a decimal to avoid float rounding (COP amounts).
	Price    decimal.Decimal `json:"price"`
	Stock    int             `json:"stock"`
	IsActive bool            `json:"is_active"`
	Featured bool            `json:"featured"`
	// Zero value means unknown; recency sort treats it as the oldest.
	CreatedAt time.Time `json:"created_at,omitempty"`
	Images    []Image   `json:"images,omitempty"`
}

// Available reports whether the product can be sold: it must be active
// and have stock. Inactive items count as sold out regardless of stock.
func (p Product) Available() bool {
	return p.IsActive && p.Stock > 0
}

// PrimaryImageURL returns the first image with a non-empty URL, or ""
// when the product has no usable image.
func (p Product) PrimaryImageURL() string {
	for _, img := range p.Images {
		if img.URL != "" {
			return img.URL
		}
	}
	return ""
}
