package catalog

import (
	"math"
	"sort"
	"strings"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// Sort options. Popular keeps the upstream ordering.
const (
	SortPopular   = "popular"
	SortRating    = "rating"
	SortDate      = "date"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// ValidSort reports whether s is a known sort option.
func ValidSort(s string) bool {
	switch s {
	case "", SortPopular, SortRating, SortDate, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Query is the full filter/sort input of the engine. Zero value means
// "everything published, upstream order".
type Query struct {
	// ScopeSlug narrows the base set to a category subtree. An unknown slug
	// falls back to the whole catalog.
	ScopeSlug string
	// Search matches as a case-insensitive substring of name or category.
	Search string
	// Price bounds, inclusive. Max <= 0 means unbounded.
	PriceMin float64
	PriceMax float64
	// Categories and Brands are OR-sets, matched case-insensitively.
	Categories []string
	Brands     []string
	// OnSale and InStock constrain only when true.
	OnSale  bool
	InStock bool
	Sort    string
	// IDs, when non-nil, restricts results to these product ids (used by the
	// Elasticsearch search path). Empty non-nil slice means no results.
	IDs []uint
}

// Run derives the filtered, ordered product list for a query over a
// snapshot. Pure: no error paths, no mutation of the snapshot. Every filter
// is a conjunct; filter order never changes the result set.
func Run(snap Snapshot, q Query) []catalogEntity.Product {
	scope := resolveScope(snap, q.ScopeSlug)
	search := strings.ToLower(strings.TrimSpace(q.Search))
	categories := lowerSet(q.Categories)
	brands := lowerSet(q.Brands)

	var idSet map[uint]struct{}
	if q.IDs != nil {
		idSet = make(map[uint]struct{}, len(q.IDs))
		for _, id := range q.IDs {
			idSet[id] = struct{}{}
		}
	}

	var out []catalogEntity.Product
	for _, p := range snap.Products {
		if !p.Published() {
			continue
		}
		category := strings.ToLower(p.Category)
		if scope != nil {
			if _, ok := scope[category]; !ok {
				continue
			}
		}
		if idSet != nil {
			if _, ok := idSet[p.ProductID]; !ok {
				continue
			}
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(category, search) {
			continue
		}
		// A price that does not parse to a finite number excludes the
		// product rather than erroring.
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			continue
		}
		if p.Price < q.PriceMin {
			continue
		}
		if q.PriceMax > 0 && p.Price > q.PriceMax {
			continue
		}
		if categories != nil {
			if _, ok := categories[category]; !ok {
				continue
			}
		}
		if brands != nil {
			if _, ok := brands[strings.ToLower(p.Brand)]; !ok {
				continue
			}
		}
		if q.OnSale && !p.OnSale {
			continue
		}
		if q.InStock && !p.InStock {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q.Sort)
	return out
}

func lowerSet(names []string) map[string]struct{} {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}
	return set
}

func sortProducts(products []catalogEntity.Product, option string) {
	switch option {
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortDate:
		// Higher id is newer; serves as the "newest" ordering.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ProductID > products[j].ProductID
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	}
}
