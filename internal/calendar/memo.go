package calendar

import "sync"

// memo is a bounded lookup table for pure derivations.
// When the limit is reached the whole table is dropped.
type memo[K comparable, V any] struct {
	mu    sync.Mutex
	limit int
	items map[K]V
}

func newMemo[K comparable, V any](limit int) *memo[K, V] {
	return &memo[K, V]{
		limit: limit,
		items: make(map[K]V),
	}
}

func (m *memo[K, V]) getOrCompute(key K, compute func() V) V {
	m.mu.Lock()
	defer m.mu.Unlock()

	if v, ok := m.items[key]; ok {
		return v
	}

	v := compute()
	if len(m.items) >= m.limit {
		m.items = make(map[K]V)
	}
	m.items[key] = v
	return v
}

func (m *memo[K, V]) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
