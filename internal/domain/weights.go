package domain

import "fmt"

// SimilarityWeights configures the linear blend of the ranking signals.
// Weights are static configuration, validated once at engine construction.
// They do not have to sum to 1: fused scores are relative, not
// probabilities.
type SimilarityWeights struct {
	Semantic   float64 `mapstructure:"semantic" json:"semantic"`
	Lexical    float64 `mapstructure:"lexical" json:"lexical"`
	Affect     float64 `mapstructure:"affect" json:"affect"`
	Popularity float64 `mapstructure:"popularity" json:"popularity"`
	Rating     float64 `mapstructure:"rating" json:"rating"`
}

// DefaultWeights returns the tuned production blend. Semantic and lexical
// similarity dominate; affect alignment nudges; popularity and rating are
// weak tie-breakers.
func DefaultWeights() SimilarityWeights {
	return SimilarityWeights{
		Semantic:   0.4,
		Lexical:    0.4,
		Affect:     0.15,
		Popularity: 0.025,
		Rating:     0.025,
	}
}

// Validate rejects negative weights and all-zero configurations.
func (w SimilarityWeights) Validate() error {
	for _, entry := range []struct {
		name  string
		value float64
	}{
		{"semantic", w.Semantic},
		{"lexical", w.Lexical},
		{"affect", w.Affect},
		{"popularity", w.Popularity},
		{"rating", w.Rating},
	} {
		if entry.value < 0 {
			return fmt.Errorf("similarity weight %s must be non-negative, got %v", entry.name, entry.value)
		}
	}
	if w.Sum() == 0 {
		return fmt.Errorf("similarity weights must not all be zero")
	}
	return nil
}

// Sum returns the total weight mass, the upper bound of a fused score.
func (w SimilarityWeights) Sum() float64 {
	return w.Semantic + w.Lexical + w.Affect + w.Popularity + w.Rating
}
