package cache

import (
	"context"
	"sync"
	"time"
)

// memoryItem is a stored value with its expiration deadline.
type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

func (it memoryItem) expired(now time.Time) bool {
	return now.After(it.expiresAt)
}

// MemoryStore is a process-local Store used when no Redis address is
// configured, and in tests. Expiration is lazy: expired items are removed
// when a Get observes them, which keeps reads indistinguishable from
// backend-enforced TTLs.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryItem),
	}
}

// Get returns the stored value if present and unexpired.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	now := time.Now()

	s.mu.RLock()
	it, ok := s.items[key]
	s.mu.RUnlock()

	if !ok {
		CacheMisses.Inc()
		return nil, false
	}

	if it.expired(now) {
		s.mu.Lock()
		// Re-check under the write lock: a concurrent Set may have
		// refreshed the entry.
		if cur, ok := s.items[key]; ok && cur.expired(now) {
			delete(s.items, key)
		}
		s.mu.Unlock()
		CacheMisses.Inc()
		return nil, false
	}

	CacheHits.WithLabelValues("memory").Inc()
	CacheSize.WithLabelValues("memory").Add(float64(len(it.value)))
	return it.value, true
}

// Set stores a value with the given TTL, overwriting any existing entry.
func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}

	s.mu.Lock()
	s.items[key] = memoryItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	s.mu.Unlock()

	CacheSize.WithLabelValues("memory").Add(float64(len(value)))
	return true
}

// Delete removes an entry.
func (s *MemoryStore) Delete(_ context.Context, key string) bool {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return true
}

// Flush removes all entries.
func (s *MemoryStore) Flush(_ context.Context) bool {
	s.mu.Lock()
	s.items = make(map[string]memoryItem)
	s.mu.Unlock()
	return true
}

// Len reports the number of stored entries, including not-yet-collected
// expired ones. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
