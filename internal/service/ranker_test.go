package service

import (
	"testing"

	"github.com/lennart/cinemood/internal/domain"
)

func rankTestCandidates() []domain.Movie {
	return []domain.Movie{
		{Title: "First", Genres: "Drama", VoteAverage: 7.1, ReleaseYear: 1999, PosterPath: "/a.jpg", Popularity: 12, OriginalLanguage: "en"},
		{Title: "Second", Genres: "Comedy", VoteAverage: 6.2, ReleaseYear: 2005, PosterPath: "/b.jpg", Popularity: 30, OriginalLanguage: "en"},
		{Title: "Third", Genres: "Horror", VoteAverage: 5.8, ReleaseYear: 2012, PosterPath: "/c.jpg", Popularity: 45, OriginalLanguage: "en"},
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	candidates := rankTestCandidates()
	scores := []float64{0.2, 0.9, 0.5}

	results := Rank(candidates, scores, 3)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	expected := []string{"Second", "Third", "First"}
	for i, title := range expected {
		if results[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, results[i].Title)
		}
	}
	for i := 1; i < len(results); i++ {
		if results[i].Confidence > results[i-1].Confidence {
			t.Errorf("score inversion at position %d: %v > %v", i, results[i].Confidence, results[i-1].Confidence)
		}
	}
}

func TestRankReturnsAtMostK(t *testing.T) {
	candidates := rankTestCandidates()
	scores := []float64{0.2, 0.9, 0.5}

	tests := []struct {
		name string
		k    int
		want int
	}{
		{"k below candidate count", 2, 2},
		{"k equals candidate count", 3, 3},
		{"k above candidate count", 10, 3},
		{"zero k", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := Rank(candidates, scores, tt.k)
			if len(results) != tt.want {
				t.Errorf("expected %d results, got %d", tt.want, len(results))
			}
		})
	}
}

func TestRankStableOnTies(t *testing.T) {
	candidates := rankTestCandidates()
	scores := []float64{0.5, 0.5, 0.5}

	results := Rank(candidates, scores, 3)
	expected := []string{"First", "Second", "Third"}
	for i, title := range expected {
		if results[i].Title != title {
			t.Errorf("tie-break should keep catalog order: position %d expected %q, got %q", i, title, results[i].Title)
		}
	}
}

func TestRankProjection(t *testing.T) {
	candidates := rankTestCandidates()
	results := Rank(candidates, []float64{0.9, 0.1, 0.1}, 1)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	got := results[0]
	want := domain.Recommendation{
		Title:      "First",
		Genre:      "Drama",
		Rating:     7.1,
		Year:       1999,
		Poster:     "/a.jpg",
		Confidence: 0.9,
		Popularity: 12,
		Language:   "en",
	}
	if got != want {
		t.Errorf("unexpected projection:\n got %+v\nwant %+v", got, want)
	}
}
