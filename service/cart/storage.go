package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Storage persists cart snapshots per session key. Implementations must
// treat a missing key as an empty cart.
type Storage interface {
	Save(session string, items []LineItem) error
	Load(session string) ([]LineItem, error)
}

// --- In-memory storage (default when Redis is not configured) ---

type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (m *MemoryStorage) Save(session string, items []LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[session] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStorage) Load(session string) ([]LineItem, error) {
	m.mu.RLock()
	raw, ok := m.data[session]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decodeItems(raw), nil
}

// --- Redis storage ---

type RedisStorage struct {
	client *redis.Client
	prefix string
}

func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix}
}

func (r *RedisStorage) Save(session string, items []LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(context.Background(), r.prefix+session, raw, 0).Err()
}

func (r *RedisStorage) Load(session string) ([]LineItem, error) {
	raw, err := r.client.Get(context.Background(), r.prefix+session).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeItems(raw), nil
}

// decodeItems treats any undecodable payload as "no prior state". A corrupt
// stored cart must never fail startup.
func decodeItems(raw []byte) []LineItem {
	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}
