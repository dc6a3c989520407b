package cache

import (
	"context"
	"testing"

	"github.com/lennart/cinemood/internal/domain"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		prefs domain.Preferences
		count int
		want  string
	}{
		{
			name: "basic key shape",
			prefs: domain.Preferences{
				Mood: "humorous", Era: "streaming", Language: "en",
				Genres: []string{"Comedy"},
			},
			count: 42,
			want:  "movies_humorous_streaming_en_comedy_42",
		},
		{
			name: "genres are sorted",
			prefs: domain.Preferences{
				Mood: "dark", Era: "digital", Language: "en",
				Genres: []string{"Thriller", "Crime"},
			},
			count: 7,
			want:  "movies_dark_digital_en_crime-thriller_7",
		},
		{
			name: "unsafe characters are sanitized",
			prefs: domain.Preferences{
				Mood: "Thought-Provoking", Era: "any", Language: "en",
				Genres: []string{"Science Fiction"},
			},
			count: 3,
			want:  "movies_thought-provoking_any_en_science-fiction_3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.prefs, tt.count); got != tt.want {
				t.Errorf("Key = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyIgnoresGenreOrder(t *testing.T) {
	a := domain.Preferences{Mood: "dark", Era: "any", Language: "en", Genres: []string{"Crime", "Drama"}}
	b := domain.Preferences{Mood: "dark", Era: "any", Language: "en", Genres: []string{"Drama", "Crime"}}
	if Key(a, 10) != Key(b, 10) {
		t.Errorf("genre order changed the key: %q vs %q", Key(a, 10), Key(b, 10))
	}
}

func TestEmbeddingCacheRoundTrip(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	c := NewEmbeddingCache(store)
	ctx := context.Background()

	vectors := [][]float32{
		{0.1, -0.5, 2.25},
		{1, 0, 0},
	}
	if err := c.Put(ctx, "movies_test_key_2", vectors); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, ok, err := c.Get(ctx, "movies_test_key_2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if len(got) != len(vectors) {
		t.Fatalf("expected %d vectors, got %d", len(vectors), len(got))
	}
	for i := range vectors {
		if len(got[i]) != len(vectors[i]) {
			t.Fatalf("vector %d: expected %d dims, got %d", i, len(vectors[i]), len(got[i]))
		}
		for j := range vectors[i] {
			if got[i][j] != vectors[i][j] {
				t.Errorf("vector %d dim %d: expected %v, got %v", i, j, vectors[i][j], got[i][j])
			}
		}
	}
}

func TestEmbeddingCacheMiss(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	c := NewEmbeddingCache(store)

	_, ok, err := c.Get(context.Background(), "movies_never_written_0")
	if err != nil {
		t.Fatalf("unexpected error on miss: %v", err)
	}
	if ok {
		t.Fatal("expected a miss for an unwritten key")
	}
}

func TestEmbeddingCacheOverwrite(t *testing.T) {
	store, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	c := NewEmbeddingCache(store)
	ctx := context.Background()

	if err := c.Put(ctx, "k", [][]float32{{1}}); err != nil {
		t.Fatalf("first put failed: %v", err)
	}
	if err := c.Put(ctx, "k", [][]float32{{2}, {3}}); err != nil {
		t.Fatalf("second put failed: %v", err)
	}

	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if len(got) != 2 || got[0][0] != 2 || got[1][0] != 3 {
		t.Errorf("overwrite not visible: %v", got)
	}
}
