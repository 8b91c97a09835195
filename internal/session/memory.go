package session

import (
	"errors"
	"sync"
	"time"
)

var errMemoryMiss = errors.New("key not found")

// memoryKV is the in-process fallback used when no redis address is
// configured. Expired entries are dropped lazily on read.
type memoryKV struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	value   []byte
	expires time.Time
}

func newMemoryKV() *memoryKV {
	return &memoryKV{entries: make(map[string]memoryEntry)}
}

func (m *memoryKV) Set(key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}
	m.entries[key] = memoryEntry{value: value, expires: expires}
	return nil
}

func (m *memoryKV) Get(key string) ([]byte, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, errMemoryMiss
	}
	if !entry.expires.IsZero() && time.Now().After(entry.expires) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return nil, errMemoryMiss
	}
	return entry.value, nil
}

func (m *memoryKV) Del(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}
