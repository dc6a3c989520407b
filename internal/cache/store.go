// Package cache persists semantic embedding vectors computed for a
// candidate set, keyed by the shape of the query that produced them.
// Entries are written once and never evicted; unbounded growth is an
// accepted operational trade-off.
package cache

import "context"

// BlobStore is a persistent key to binary-blob store. Absence of a key
// is a miss, not an error.
type BlobStore interface {
	// Get returns the blob for key, or ok=false when the key is absent.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Put stores the blob under key, overwriting any existing value.
	Put(ctx context.Context, key string, data []byte) error
}
