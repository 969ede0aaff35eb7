// Package cache defines the embedding cache port and an in-process
// implementation. Core scoring and selection stay cache-free; only boundary
// collaborators (the embedding provider) memoize through this port.
package cache

import (
	"container/list"
	"sync"
)

// Cache is the memoization port for embedding vectors. Implementations must
// be safe for concurrent use.
type Cache interface {
	Get(key string) ([]float64, bool)
	Set(key string, value []float64)
	Evict(key string)
}

// lruEntry is one key/value pair in the in-memory cache.
type lruEntry struct {
	key   string
	value []float64
}

// Memory is an in-process LRU cache conforming to the Cache port.
type Memory struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	entries  map[string]*list.Element
}

// NewMemory creates an in-process LRU cache holding up to capacity entries.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Memory{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Get returns the cached vector for key, marking it recently used.
func (m *Memory) Get(key string) ([]float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	element, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	m.order.MoveToFront(element)
	return element.Value.(*lruEntry).value, true
}

// Set stores the vector for key, evicting the least recently used entry
// when the cache is full.
func (m *Memory) Set(key string, value []float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if element, ok := m.entries[key]; ok {
		element.Value.(*lruEntry).value = value
		m.order.MoveToFront(element)
		return
	}

	m.entries[key] = m.order.PushFront(&lruEntry{key: key, value: value})

	if m.order.Len() > m.capacity {
		oldest := m.order.Back()
		if oldest != nil {
			m.order.Remove(oldest)
			delete(m.entries, oldest.Value.(*lruEntry).key)
		}
	}
}

// Evict removes the entry for key if present.
func (m *Memory) Evict(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if element, ok := m.entries[key]; ok {
		m.order.Remove(element)
		delete(m.entries, key)
	}
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}
