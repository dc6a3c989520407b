package service

import (
	"sort"

	"github.com/lennart/cinemood/internal/domain"
)

// Rank orders candidates by descending fused score and returns the top
// k as read-only projections. The sort is stable, so ties keep catalog
// iteration order. Fewer than k candidates returns all of them.
func Rank(candidates []domain.Movie, scores []float64, k int) []domain.Recommendation {
	n := len(candidates)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if k > n {
		k = n
	}
	if k < 0 {
		k = 0
	}

	results := make([]domain.Recommendation, 0, k)
	for _, idx := range order[:k] {
		m := &candidates[idx]
		results = append(results, domain.Recommendation{
			Title:      m.Title,
			Genre:      m.Genres,
			Rating:     m.VoteAverage,
			Year:       m.ReleaseYear,
			Poster:     m.PosterPath,
			Confidence: scores[idx],
			Popularity: m.Popularity,
			Language:   m.OriginalLanguage,
		})
	}
	return results
}
