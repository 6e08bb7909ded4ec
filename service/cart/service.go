package cart

import (
	"log"
	"sync"

	catalogEntity "storefront.GO/model/entity/catalog"
	catalogStore "storefront.GO/service/catalog"
)

// Service owns cart persistence and reconciliation against the catalog.
// Every mutation synchronously writes the full snapshot back to storage.
// When the catalog store reloads, carts touched this session are re-pruned.
type Service struct {
	storage Storage
	store   *catalogStore.Store

	mu       sync.Mutex
	sessions map[string]struct{}
}

func NewService(storage Storage, store *catalogStore.Store) *Service {
	s := &Service{
		storage:  storage,
		store:    store,
		sessions: make(map[string]struct{}),
	}
	if store != nil {
		store.Subscribe(s.onCatalogLoad)
	}
	return s
}

// Load materializes a session's cart, pruning against the current catalog.
// Missing or corrupt stored state yields an empty cart, never an error.
func (s *Service) Load(session string) *Cart {
	s.track(session)
	items, err := s.storage.Load(session)
	if err != nil {
		log.Printf("cart load %q: %v (starting empty)", session, err)
		items = nil
	}
	c := &Cart{Items: items}
	if s.store != nil && s.store.Loaded() {
		c.Prune(s.store.Snapshot())
	}
	return c
}

func (s *Service) persist(session string, c *Cart) *Cart {
	if err := s.storage.Save(session, c.Items); err != nil {
		// Persistence failures are not surfaced to the shopper; the
		// in-memory cart stays authoritative for this request.
		log.Printf("cart save %q: %v", session, err)
	}
	return c
}

func (s *Service) AddProduct(session string, p catalogEntity.Product, variantID string, quantity int) *Cart {
	c := s.Load(session)
	c.AddProduct(p, variantID, quantity)
	return s.persist(session, c)
}

func (s *Service) AddBundle(session string, bundleID uint, title string, items []catalogEntity.Product, discountPercent float64, quantity int) *Cart {
	c := s.Load(session)
	c.AddBundle(bundleID, title, items, discountPercent, quantity)
	return s.persist(session, c)
}

func (s *Service) Remove(session string, id uint, variantID string) *Cart {
	c := s.Load(session)
	c.Remove(id, variantID)
	return s.persist(session, c)
}

func (s *Service) UpdateQuantity(session string, id uint, quantity int, variantID string) *Cart {
	c := s.Load(session)
	c.UpdateQuantity(id, quantity, variantID)
	return s.persist(session, c)
}

func (s *Service) Clear(session string) *Cart {
	c := s.Load(session)
	c.Clear()
	return s.persist(session, c)
}

func (s *Service) track(session string) {
	s.mu.Lock()
	s.sessions[session] = struct{}{}
	s.mu.Unlock()
}

// onCatalogLoad re-prunes every session seen since boot against the fresh
// snapshot. Sessions only present in storage are pruned lazily on next Load.
func (s *Service) onCatalogLoad(snap catalogStore.Snapshot) {
	if len(snap.Products) == 0 {
		return
	}
	s.mu.Lock()
	sessions := make([]string, 0, len(s.sessions))
	for session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.mu.Unlock()

	for _, session := range sessions {
		items, err := s.storage.Load(session)
		if err != nil || len(items) == 0 {
			continue
		}
		c := &Cart{Items: items}
		before := len(c.Items)
		c.Prune(snap)
		if len(c.Items) != before {
			s.persist(session, c)
		}
	}
}
