package cart

import (
	catalogEntity "storefront.GO/model/entity/catalog"
	catalogStore "storefront.GO/service/catalog"
	"storefront.GO/service/pricing"
)

// LineKind tags the two line-item variants.
type LineKind string

const (
	LineSimple LineKind = "simple"
	LineBundle LineKind = "bundle"
)

// BundleComponent is a constituent snapshot inside a bundle line.
type BundleComponent struct {
	ProductID uint    `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// LineItem is one cart row. Identity is (ProductID, VariantID) for simple
// lines and (ProductID, kind=bundle) for bundle lines. The unit price is
// captured at insertion and never recomputed from the catalog afterwards.
type LineItem struct {
	Kind      LineKind `json:"type"`
	ProductID uint     `json:"id"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	// OriginalPrice is the list price when a discount applied at add time.
	OriginalPrice *float64 `json:"originalPrice,omitempty"`

	// Simple lines only.
	VariantID string `json:"variantId,omitempty"`

	// Bundle lines only.
	BundleID    uint              `json:"bundleId,omitempty"`
	BundleItems []BundleComponent `json:"bundleItems,omitempty"`
}

// Cart is the aggregate: an ordered list of line items. All operations are
// total functions over the current state; none of them can fail.
type Cart struct {
	Items []LineItem `json:"items"`
}

// matches reports line identity against (id, variantID). Bundle lines carry
// no variant, so an empty variantID addresses them by product id.
func (li *LineItem) matches(id uint, variantID string) bool {
	return li.ProductID == id && li.VariantID == variantID
}

// AddProduct inserts a simple line or merges into an existing one. The
// effective unit price (sale price when active and lower) is snapshotted on
// insert; a merge never re-captures pricing.
func (c *Cart) AddProduct(p catalogEntity.Product, variantID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		li := &c.Items[i]
		if li.Kind != LineBundle && li.matches(p.ProductID, variantID) {
			li.Quantity += quantity
			return
		}
	}
	resolved := pricing.Resolve(&p, 0)
	c.Items = append(c.Items, LineItem{
		Kind:          LineSimple,
		ProductID:     p.ProductID,
		Name:          p.Name,
		Quantity:      quantity,
		Price:         resolved.Price,
		OriginalPrice: resolved.Original,
		VariantID:     variantID,
	})
}

// AddBundle inserts a bundle pseudo-line or merges quantities on an existing
// line with the same bundle id. Constituents are snapshotted.
func (c *Cart) AddBundle(bundleID uint, title string, items []catalogEntity.Product, discountPercent float64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		li := &c.Items[i]
		if li.Kind == LineBundle && li.ProductID == bundleID {
			li.Quantity += quantity
			return
		}
	}
	price, sum := pricing.BundlePrice(items, discountPercent)
	var original *float64
	if price < sum {
		original = &sum
	}
	components := make([]BundleComponent, len(items))
	for i, p := range items {
		components[i] = BundleComponent{ProductID: p.ProductID, Name: p.Name, Price: pricing.Resolve(&items[i], 0).Price}
	}
	c.Items = append(c.Items, LineItem{
		Kind:          LineBundle,
		ProductID:     bundleID,
		Name:          title,
		Quantity:      quantity,
		Price:         price,
		OriginalPrice: original,
		BundleID:      bundleID,
		BundleItems:   components,
	})
}

// Remove deletes the line matching (id, variantID). Absent line: no-op.
func (c *Cart) Remove(id uint, variantID string) {
	kept := c.Items[:0]
	for _, li := range c.Items {
		if !li.matches(id, variantID) {
			kept = append(kept, li)
		}
	}
	c.Items = kept
}

// UpdateQuantity replaces the quantity of the matching line exactly.
// Quantities below 1 are ignored; the line is never auto-removed.
func (c *Cart) UpdateQuantity(id uint, quantity int, variantID string) {
	if quantity < 1 {
		return
	}
	for i := range c.Items {
		if c.Items[i].matches(id, variantID) {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of line quantities.
func (c *Cart) TotalItems() int {
	var n int
	for _, li := range c.Items {
		n += li.Quantity
	}
	return n
}

// Total is the sum of price × quantity across lines.
func (c *Cart) Total() float64 {
	var sum float64
	for _, li := range c.Items {
		sum += li.Price * float64(li.Quantity)
	}
	return sum
}

// Prune drops simple lines whose product no longer exists in the catalog
// snapshot. Bundle lines are kept; their validity is enforced elsewhere.
// An empty snapshot prunes nothing (the catalog may simply not be loaded).
func (c *Cart) Prune(snap catalogStore.Snapshot) {
	if len(snap.Products) == 0 {
		return
	}
	kept := c.Items[:0]
	for _, li := range c.Items {
		if li.Kind == LineBundle || snap.HasProduct(li.ProductID) {
			kept = append(kept, li)
		}
	}
	c.Items = kept
}
