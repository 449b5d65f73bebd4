package storage

import "errors"

// ErrKeyNotFound is returned when a key doesn't exist in the store
var ErrKeyNotFound = errors.New("key not found")

// Store defines the interface for key-value storage.
//
// Implementations are NOT required to be safe for concurrent use: the
// command executor is the store's sole owner and serializes every operation
// on a single goroutine. Callers outside the executor may only touch the
// store once the pipeline has fully drained.
type Store interface {
	// Get retrieves the value for a key
	// Returns ErrKeyNotFound if the key doesn't exist
	Get(key string) (string, error)

	// Set stores a value with the given key
	// Overwrites any existing value for the key
	Set(key, value string)

	// Delete removes a key-value pair and returns the value that was removed
	// Returns ErrKeyNotFound if the key doesn't exist
	Delete(key string) (string, error)

	// Keys returns all keys in the store
	// Order is not guaranteed
	Keys() []string

	// Stats returns storage statistics
	Stats() StoreStats
}

// StoreStats contains statistics about the store
type StoreStats struct {
	Keys  int // Number of keys
	Bytes int // Total size of all values in bytes
}

// MemoryStore implements Store with an in-memory map.
// It carries no lock: exclusive ownership by the executor is the
// synchronization model, so map access is always single-goroutine.
type MemoryStore struct {
	data map[string]string
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]string),
	}
}

// Get retrieves the value for a key
func (m *MemoryStore) Get(key string) (string, error) {
	value, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	return value, nil
}

// Set stores a value with the given key, overwriting any existing value
func (m *MemoryStore) Set(key, value string) {
	m.data[key] = value
}

// Delete removes a key-value pair and returns the removed value
func (m *MemoryStore) Delete(key string) (string, error) {
	value, exists := m.data[key]
	if !exists {
		return "", ErrKeyNotFound
	}
	delete(m.data, key)
	return value, nil
}

// Keys returns all keys in the store
func (m *MemoryStore) Keys() []string {
	keys := make([]string, 0, len(m.data))
	for key := range m.data {
		keys = append(keys, key)
	}
	return keys
}

// Stats returns storage statistics
func (m *MemoryStore) Stats() StoreStats {
	totalBytes := 0
	for _, value := range m.data {
		totalBytes += len(value)
	}

	return StoreStats{
		Keys:  len(m.data),
		Bytes: totalBytes,
	}
}
