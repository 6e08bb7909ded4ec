// Package pricing holds the canonical discount resolution. A discount is
// always resolved to an absolute unit price; percentages are display-only
// and derived, never stored. When a product-level sale price and a campaign
// percentage both apply, the lower resulting price wins.
package pricing

import (
	"math"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// Resolved is the outcome of discount resolution for one unit.
type Resolved struct {
	// Price is the effective unit price a buyer pays.
	Price float64
	// Original is the list price when a discount applied, nil otherwise.
	Original *float64
}

// Resolve computes the effective unit price of a product under an optional
// campaign percentage (0 means no campaign). The product sale price applies
// only when strictly lower than the list price.
func Resolve(p *catalogEntity.Product, campaignPercent float64) Resolved {
	effective := p.Price

	if p.SalePrice != nil && *p.SalePrice < p.Price {
		effective = *p.SalePrice
	}
	if campaignPercent > 0 && campaignPercent < 100 {
		campaignPrice := round2(p.Price * (1 - campaignPercent/100))
		if campaignPrice < effective {
			effective = campaignPrice
		}
	}

	if effective >= p.Price {
		return Resolved{Price: p.Price}
	}
	original := p.Price
	return Resolved{Price: effective, Original: &original}
}

// DiscountPercent derives the display percentage from an original and an
// effective price. Zero when no discount applies.
func DiscountPercent(original, effective float64) float64 {
	if original <= 0 || effective >= original {
		return 0
	}
	return round2((original - effective) / original * 100)
}

// BundlePrice prices a set of constituents sold together under a campaign
// percentage: the sum of the per-item effective prices, discounted.
// The second return is the undiscounted sum.
func BundlePrice(items []catalogEntity.Product, campaignPercent float64) (float64, float64) {
	var sum float64
	for i := range items {
		sum += Resolve(&items[i], 0).Price
	}
	if campaignPercent > 0 && campaignPercent < 100 {
		return round2(sum * (1 - campaignPercent/100)), sum
	}
	return sum, sum
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
