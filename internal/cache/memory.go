package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryClient implements Client with an in-process map.
// Suitable for single-instance deployments and tests.
type MemoryClient struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	maxEntries int
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemoryClient creates an in-memory cache client.
// maxEntries bounds the cache size; zero means unbounded.
func NewMemoryClient(maxEntries int) *MemoryClient {
	return &MemoryClient{
		entries:    make(map[string]memoryEntry),
		maxEntries: maxEntries,
	}
}

func (m *MemoryClient) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrCacheMiss
	}

	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, ErrCacheMiss
	}

	return entry.value, nil
}

func (m *MemoryClient) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.maxEntries > 0 && len(m.entries) >= m.maxEntries {
		m.evictExpiredLocked()
		// Still full after eviction: drop an arbitrary entry to stay bounded.
		if len(m.entries) >= m.maxEntries {
			for k := range m.entries {
				delete(m.entries, k)
				break
			}
		}
	}

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = entry
	return nil
}

func (m *MemoryClient) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryClient) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryClient) Close() error {
	m.mu.Lock()
	m.entries = make(map[string]memoryEntry)
	m.mu.Unlock()
	return nil
}

func (m *MemoryClient) evictExpiredLocked() {
	now := time.Now()
	for k, e := range m.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(m.entries, k)
		}
	}
}
