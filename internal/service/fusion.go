package service

import (
	"fmt"

	"github.com/lennart/cinemood/internal/domain"
)

// Signals holds the per-candidate values of each ranking signal. All
// slices must have the same length as the candidate set.
type Signals struct {
	Semantic   []float64
	Lexical    []float64
	Affect     []float64
	Popularity []float64
	Rating     []float64
}

// Fuse min-max normalizes every signal independently and blends them
// into one score per candidate using the configured weights. With
// weights summing to w, fused scores lie in [0, w].
func Fuse(signals Signals, weights domain.SimilarityWeights) ([]float64, error) {
	n := len(signals.Semantic)
	for name, s := range map[string][]float64{
		"lexical":    signals.Lexical,
		"affect":     signals.Affect,
		"popularity": signals.Popularity,
		"rating":     signals.Rating,
	} {
		if len(s) != n {
			return nil, fmt.Errorf("signal length mismatch: %s has %d values, expected %d", name, len(s), n)
		}
	}

	semantic := normalize(signals.Semantic)
	lexical := normalize(signals.Lexical)
	affect := normalize(signals.Affect)
	popularity := normalize(signals.Popularity)
	rating := normalize(signals.Rating)

	fused := make([]float64, n)
	for i := 0; i < n; i++ {
		fused[i] = weights.Semantic*semantic[i] +
			weights.Lexical*lexical[i] +
			weights.Affect*affect[i] +
			weights.Popularity*popularity[i] +
			weights.Rating*rating[i]
	}
	return fused, nil
}

// normalize maps values to [0, 1] via (x-min)/(max-min). When every
// value is equal the signal distinguishes nothing, so all entries map
// to 0 rather than dividing by zero.
func normalize(values []float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		return out
	}

	span := max - min
	for i, v := range values {
		out[i] = (v - min) / span
	}
	return out
}
