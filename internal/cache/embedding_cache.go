package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/lennart/cinemood/internal/domain"
)

// EmbeddingCache round-trips ordered semantic vector arrays through a
// BlobStore. Concurrent writers of the same key overwrite each other
// with the same logical value, which is harmless; no synchronization is
// applied.
type EmbeddingCache struct {
	store BlobStore
}

// NewEmbeddingCache wraps a BlobStore.
func NewEmbeddingCache(store BlobStore) *EmbeddingCache {
	return &EmbeddingCache{store: store}
}

// Key builds the deterministic cache key for a query shape. It depends
// on the preference fields and the candidate-set size only, NOT on which
// entries make up the set: a catalog refresh under an unchanged shape
// reuses a stale entry. Known limitation, kept deliberately (see
// DESIGN.md).
func Key(prefs domain.Preferences, candidateCount int) string {
	genres := make([]string, len(prefs.Genres))
	copy(genres, prefs.Genres)
	sort.Strings(genres)

	raw := fmt.Sprintf("movies_%s_%s_%s_%s_%d",
		prefs.Mood, prefs.Era, prefs.Language, strings.Join(genres, "-"), candidateCount)
	return sanitizeKey(raw)
}

// sanitizeKey keeps keys safe for filenames and object keys.
func sanitizeKey(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// Get returns the cached vectors for key, or ok=false on a miss.
func (c *EmbeddingCache) Get(ctx context.Context, key string) ([][]float32, bool, error) {
	data, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok {
		return nil, false, err
	}

	var vectors [][]float32
	if err := json.Unmarshal(data, &vectors); err != nil {
		return nil, false, fmt.Errorf("failed to decode cache entry %q: %w", key, err)
	}
	return vectors, true, nil
}

// Put stores the ordered vector array under key.
func (c *EmbeddingCache) Put(ctx context.Context, key string, vectors [][]float32) error {
	data, err := json.Marshal(vectors)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %q: %w", key, err)
	}
	return c.store.Put(ctx, key, data)
}
