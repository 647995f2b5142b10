package cache

import (
	"sync"
	"time"
)

// memoryStore is the process-local fallback used when Redis is unreachable.
// Entries expire lazily on read; a small sweep runs on write once the map
// grows past sweepThreshold to bound memory on write-heavy keys.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

const sweepThreshold = 4096

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (m *memoryStore) get(key string, now time.Time) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if now.After(entry.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock; the entry may have been replaced.
		if current, still := m.entries[key]; still && now.After(current.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}
	return entry.data, true
}

func (m *memoryStore) set(key string, data []byte, ttl time.Duration, now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) >= sweepThreshold {
		for k, e := range m.entries {
			if now.After(e.expiresAt) {
				delete(m.entries, k)
			}
		}
	}
	m.entries[key] = memoryEntry{data: data, expiresAt: now.Add(ttl)}
}

func (m *memoryStore) delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}
