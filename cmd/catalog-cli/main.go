package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/kamasex/kamasexecommerce/internal/cart"
	"github.com/kamasex/kamasexecommerce/internal/catalog"
	"github.com/kamasex/kamasexecommerce/internal/config"
	"github.com/kamasex/kamasexecommerce/internal/currency"
	"github.com/kamasex/kamasexecommerce/internal/product"
	"golang.org/x/text/language"
)

func main() {
	var (
		q         = flag.String("q", "", "search query")
		category  = flag.String("category", "", "category filter (exact)")
		minPrice  = flag.String("min", "", "minimum price")
		maxPrice  = flag.String("max", "", "maximum price")
		inStock   = flag.Bool("in-stock", false, "only available products")
		featured  = flag.Bool("featured", false, "only featured products")
		sortBy    = flag.String("sort", string(catalog.SortFeatured), "featured|newest|price-low|price-high|name-asc|name-desc")
		page      = flag.Int("page", 1, "page number")
		addToCart = flag.String("add", "", "quick-add a product id from the visible page")
	)
	flag.Parse()

	cfg := config.Load()

	products, err := product.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("[catalog] load: %v", err)
	}
	log.Printf("[catalog] loaded %d products from %s", len(products), cfg.CatalogPath)

	fmtr, err := currency.NewFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		log.Fatalf("[catalog] currency: %v", err)
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		log.Fatalf("[catalog] locale: %v", err)
	}

	notifier := cart.NewChannelNotifier(8)
	ctrl := catalog.NewController(products,
		catalog.WithPageSize(cfg.PageSize),
		catalog.WithCollation(tag),
		catalog.WithNotifier(notifier),
	)

	patch := catalog.Patch{}
	if *q != "" {
		patch.SearchQuery = q
	}
	if *category != "" {
		patch.Category = category
	}
	if *minPrice != "" {
		v := catalog.ParseAmount(*minPrice, ctrl.Criteria().MinPrice)
		patch.MinPrice = &v
	}
	if *maxPrice != "" {
		v := catalog.ParseAmount(*maxPrice, ctrl.Criteria().MaxPrice)
		patch.MaxPrice = &v
	}
	if *inStock {
		patch.InStock = inStock
	}
	if *featured {
		patch.FeaturedOnly = featured
	}
	key := catalog.SortBy(*sortBy)
	patch.SortBy = &key

	ctrl.Update(patch)
	view := ctrl.SetPage(*page)

	if n := ctrl.ActiveFilterCount(); n > 0 {
		fmt.Printf("Filtros activos: %d\n", n)
	}
	fmt.Printf("%d productos — página %d/%d\n", view.Total, view.Page, view.TotalPages)
	for _, p := range view.Items {
		line := fmt.Sprintf("- %s — %s", p.Name, fmtr.Format(p.Price))
		if p.Category != "" {
			line += fmt.Sprintf(" (%s)", p.Category)
		}
		if p.Featured {
			line += " [Destacado]"
		}
		if !p.Available() {
			line += " [Agotado]"
		}
		fmt.Println(line)
	}

	if *addToCart != "" {
		ctrl.QuickAdd(*addToCart, 1)
		select {
		case ev := <-notifier.Events():
			log.Printf("[catalog] add-to-cart id=%s product=%s qty=%d", ev.ID, ev.ProductID, ev.Quantity)
		default:
		}
	}
}
