// Package testutil provides testing utilities.
package testutil

import "sync"

// MemStore is an in-memory implementation of storage.Store for testing.
type MemStore struct {
	mu     sync.Mutex
	values map[string][]byte

	// Error injection for testing
	GetErr error
	SetErr error

	// SetCalls counts Set invocations, including failed ones.
	SetCalls int
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{values: make(map[string][]byte)}
}

// Seed stores a value without counting as a Set call.
func (m *MemStore) Seed(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
}

// Get implements storage.Store.
func (m *MemStore) Get(key string) ([]byte, bool, error) {
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set implements storage.Store.
func (m *MemStore) Set(key string, value []byte) error {
	m.mu.Lock()
	m.SetCalls++
	m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Value returns the stored value for key, or nil.
func (m *MemStore) Value(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.values[key]...)
}
