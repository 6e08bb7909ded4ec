package catalog

import (
	"log"
	"sync"

	catalogEntity "storefront.GO/model/entity/catalog"
)

// Snapshot is one immutable view of the catalog: the full product list, the
// category tree and the brand list, as loaded from the repository.
type Snapshot struct {
	Products   []catalogEntity.Product
	Categories []*catalogEntity.Category
	Brands     []catalogEntity.Brand
}

// Loader supplies catalog data. Satisfied by the catalog repository; tests
// plug in static data.
type Loader interface {
	FetchProducts() ([]catalogEntity.Product, error)
	FetchCategoryTree() ([]*catalogEntity.Category, error)
	FetchBrands() ([]catalogEntity.Brand, error)
}

// Store owns the in-memory catalog snapshot. It is loaded once at boot and
// re-loaded by the cron job; the query engine derives results from it and
// never writes to it. Listeners (the cart prune hook) are notified after
// every successful load.
type Store struct {
	loader Loader

	mu        sync.RWMutex
	snap      Snapshot
	loaded    bool
	listeners []func(Snapshot)
}

func NewStore(loader Loader) *Store {
	return &Store{loader: loader}
}

// Load fetches the catalog and replaces the snapshot. On error the previous
// snapshot stays in place.
func (s *Store) Load() error {
	products, err := s.loader.FetchProducts()
	if err != nil {
		return err
	}
	tree, err := s.loader.FetchCategoryTree()
	if err != nil {
		return err
	}
	brands, err := s.loader.FetchBrands()
	if err != nil {
		return err
	}

	snap := Snapshot{Products: products, Categories: tree, Brands: brands}

	s.mu.Lock()
	s.snap = snap
	s.loaded = true
	listeners := make([]func(Snapshot), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	log.Printf("catalog store loaded: %d products, %d root categories, %d brands",
		len(products), len(tree), len(brands))

	for _, fn := range listeners {
		fn(snap)
	}
	return nil
}

// Snapshot returns the current catalog view. The product and brand slices
// are copied; callers may not mutate category nodes.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := Snapshot{
		Products:   make([]catalogEntity.Product, len(s.snap.Products)),
		Brands:     make([]catalogEntity.Brand, len(s.snap.Brands)),
		Categories: s.snap.Categories,
	}
	copy(out.Products, s.snap.Products)
	copy(out.Brands, s.snap.Brands)
	return out
}

// Loaded reports whether at least one load has completed.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Subscribe registers a listener called after every successful load with the
// new snapshot. Listeners registered after a load are not replayed.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// HasProduct reports whether a product id exists in the current snapshot.
func (snap Snapshot) HasProduct(id uint) bool {
	for i := range snap.Products {
		if snap.Products[i].ProductID == id {
			return true
		}
	}
	return false
}
