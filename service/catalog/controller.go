package catalog

import (
	"sync"
	"time"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// Status of the controller between input and confirmed result. Zero results
// with StatusIdle is a confirmed empty result, distinct from StatusSearching.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusSearching Status = "searching"
)

// Controller drives the query engine from user input events. Every input
// change restarts a single debounce timer; when it fires the engine
// recomputes once with the latest inputs (most-recent-input-wins). The
// pager is re-based on every recompute.
type Controller struct {
	store *Store
	pager *Pager

	mu       sync.Mutex
	query    Query
	results  []catalogEntity.Product
	status   Status
	debounce time.Duration
	timer    *time.Timer
}

func NewController(store *Store, debounce time.Duration, pageIncrement int, settle time.Duration) *Controller {
	c := &Controller{
		store:    store,
		pager:    NewPager(pageIncrement, settle),
		status:   StatusIdle,
		debounce: debounce,
	}
	return c
}

// SetScopeSlug changes the navigational scope. Selected category filters do
// not survive navigation; search text and sort do.
func (c *Controller) SetScopeSlug(slug string) {
	c.mu.Lock()
	c.query.ScopeSlug = slug
	c.query.Categories = nil
	c.scheduleLocked()
	c.mu.Unlock()
}

func (c *Controller) SetSearch(q string) {
	c.mu.Lock()
	c.query.Search = q
	c.scheduleLocked()
	c.mu.Unlock()
}

func (c *Controller) SetPriceRange(minPrice, maxPrice float64) {
	c.mu.Lock()
	c.query.PriceMin = minPrice
	c.query.PriceMax = maxPrice
	c.scheduleLocked()
	c.mu.Unlock()
}

// ToggleCategory adds or removes one category name from the OR-set.
func (c *Controller) ToggleCategory(name string) {
	c.mu.Lock()
	c.query.Categories = toggle(c.query.Categories, name)
	c.scheduleLocked()
	c.mu.Unlock()
}

// ToggleBrand adds or removes one brand name from the OR-set.
func (c *Controller) ToggleBrand(name string) {
	c.mu.Lock()
	c.query.Brands = toggle(c.query.Brands, name)
	c.scheduleLocked()
	c.mu.Unlock()
}

func (c *Controller) SetStockStatus(onSale, inStock bool) {
	c.mu.Lock()
	c.query.OnSale = onSale
	c.query.InStock = inStock
	c.scheduleLocked()
	c.mu.Unlock()
}

func (c *Controller) SetSort(option string) {
	c.mu.Lock()
	c.query.Sort = option
	c.scheduleLocked()
	c.mu.Unlock()
}

// scheduleLocked restarts the debounce timer. The pending recompute, if any,
// is cancelled: at most one computation is ever pending and it runs with the
// inputs present when the window elapses.
func (c *Controller) scheduleLocked() {
	c.status = StatusSearching
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.debounce <= 0 {
		c.timer = nil
		c.recomputeLocked()
		return
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		c.mu.Lock()
		c.recomputeLocked()
		c.mu.Unlock()
	})
}

func (c *Controller) recomputeLocked() {
	c.results = Run(c.store.Snapshot(), c.query)
	c.pager.Reset(len(c.results))
	c.status = StatusIdle
}

// Flush cancels any pending debounce and recomputes immediately. Used when a
// confirmed result is needed synchronously (request handlers, tests).
func (c *Controller) Flush() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.recomputeLocked()
	c.mu.Unlock()
}

// RevealMore handles one scroll-sentinel trigger.
func (c *Controller) RevealMore() bool {
	return c.pager.Reveal()
}

// Results returns the currently revealed window, the total filtered count,
// whether more can be revealed, and the controller status.
func (c *Controller) Results() ([]catalogEntity.Product, int, bool, Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := min(c.pager.Revealed(), len(c.results))
	window := make([]catalogEntity.Product, n)
	copy(window, c.results[:n])
	return window, len(c.results), c.pager.HasMore(), c.status
}

// Query returns a copy of the current input state.
func (c *Controller) Query() Query {
	c.mu.Lock()
	defer c.mu.Unlock()
	q := c.query
	q.Categories = append([]string(nil), c.query.Categories...)
	q.Brands = append([]string(nil), c.query.Brands...)
	return q
}

func toggle(set []string, name string) []string {
	for i, v := range set {
		if v == name {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, name)
}
