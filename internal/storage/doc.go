// Package storage defines the abstract storage interface and provides the
// in-memory implementation that backs kvpipe's command executor, keeping the
// store pluggable without introducing any locking into the data path.
//
// # Overview
//
// The storage package is deliberately the simplest layer of the system: a
// mapping from string keys to string values with overwrite-always Set,
// not-found-aware Get, and a Delete that reports the value it removed. Its
// one interesting property is its ownership model.
//
// # Ownership Model
//
// Stores in this package are NOT internally synchronized. The command
// executor is the sole owner of the store for the lifetime of a pipeline
// run: every Set, Get, and Delete is issued from the executor's single
// goroutine, so the fan-in channel feeding the executor is the only
// synchronization point the system needs. This is a design choice, not an
// omission: adding a mutex here would buy nothing and hide ownership bugs
// that the race detector would otherwise surface.
//
// Code outside the executor (summary printing, tests asserting final state)
// may read the store only after the pipeline has fully drained, at which
// point the executor's goroutine has exited and its writes are visible.
//
// # Core Interface
//
// Store: Basic key-value storage operations
//   - Get(key) - Retrieve a value, ErrKeyNotFound when absent
//   - Set(key, value) - Store or overwrite a key-value pair
//   - Delete(key) - Remove a pair, returning the removed value
//   - Keys() - List all keys, unordered
//   - Stats() - Key count and total value bytes
//
// # Error Handling
//
// ErrKeyNotFound is the package's only sentinel error, returned by Get and
// Delete for absent keys. Callers compare with errors.Is; the executor
// translates it into a per-command failure result rather than an abort.
//
// # Usage Example
//
//	store := storage.NewMemoryStore()
//	store.Set("user:1001", "John")
//
//	value, err := store.Get("user:1001")
//	if errors.Is(err, storage.ErrKeyNotFound) {
//	    // absent key
//	}
//
//	removed, err := store.Delete("user:1001")
//	// removed == "John", second Delete returns ErrKeyNotFound
//
// # See Also
//
// Related packages:
//   - internal/pipeline: the executor that owns a Store during a run
//   - internal/command: the grammar producing the operations applied here
package storage
