// internal/storage/storage.go
//
// Persistence collaborator for the engine: a key-value blob store holding
// JSON-serialized records (settings/statistics, daily progress). The engine
// only ever reads whole blobs at startup and rewrites them after mutations;
// it never depends on the storage medium.
package storage

import "context"

// Store is the persistence interface the engine is constructed with.
// Implementations may be backed by memory (tests), SQLite, or anything that
// can hold a string per key.
type Store interface {
	// Get retrieves the blob stored under key.
	// The bool is false when the key has never been written.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set persists or replaces the blob under key.
	Set(ctx context.Context, key, value string) error
}
