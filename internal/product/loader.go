package product

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
)

// ErrEmptyCatalog is returned by LoadFile when the document decodes
// fine but contains no usable products.
var ErrEmptyCatalog = errors.New("catalog has no products")

// Load decodes a catalog document (a JSON array of products) from r.
// Optional fields may be absent; entries without an id are dropped since
// the engine needs a stable lookup key, and negative prices are clamped
// to zero so a dirty document still renders.
func Load(r io.Reader) ([]Product, error) {
	var raw []Product
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	out := make([]Product, 0, len(raw))
	for _, p := range raw {
		if p.ID == "" {
			continue
		}
		if p.Price.IsNegative() {
			p.Price = decimal.Zero
		}
		out = append(out, p)
	}
	return out, nil
}

// LoadFile reads the catalog document at path.
func LoadFile(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	items, err := Load(f)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	return items, nil
}
