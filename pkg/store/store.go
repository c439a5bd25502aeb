// Package store provides key-addressed chunk storage backends. Keys are
// produced by a chunk key encoding; values are a chunk's encoded bytes.
package store

import "context"

// Errors
var (
	ErrChunkNotFound = &StoreError{"chunk not found"}
	ErrStoreClosed   = &StoreError{"store is closed"}
)

// StoreError represents a chunk store error.
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}

// ChunkStore is a key-addressable byte store. Implementations are safe for
// concurrent use.
type ChunkStore interface {
	// Get returns the bytes stored under key, or ErrChunkNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores data under key, replacing any existing value.
	Put(ctx context.Context, key string, data []byte) error

	// Delete removes key, returning ErrChunkNotFound if it is absent.
	Delete(ctx context.Context, key string) error

	// List returns all keys with the given prefix, in unspecified order.
	List(ctx context.Context, prefix string) ([]string, error)

	// Close releases the store's resources.
	Close() error
}
