package service

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/lennart/cinemood/internal/domain"
)

// FilterConfig holds the fixed candidate-filter thresholds. These are
// operator tunables, not user-configurable per request.
type FilterConfig struct {
	PopularityFloor float64
	RatingFloor     float64
	CandidateCap    int
}

// DefaultFilterConfig mirrors the production thresholds.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		PopularityFloor: 10.0,
		RatingFloor:     0.5,
		CandidateCap:    1000,
	}
}

// CandidateFilter reduces the catalog to the entries structurally
// compatible with a query, capped at CandidateCap via uniform sampling.
type CandidateFilter struct {
	cfg FilterConfig

	// rand.Rand is not safe for concurrent use and the filter is shared
	// across requests, so sampling holds the mutex.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCandidateFilter creates a filter. A nil rng gets a time-seeded
// source; tests pass a seeded one for deterministic subsampling.
func NewCandidateFilter(cfg FilterConfig, rng *rand.Rand) *CandidateFilter {
	if cfg.CandidateCap <= 0 {
		cfg = DefaultFilterConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &CandidateFilter{cfg: cfg, rng: rng}
}

// Filter returns the catalog entries matching the preferences: same
// original language, release year inside the era range, at least one
// shared genre label, and popularity/rating above the fixed floors.
// An empty result is not an error at this layer. Unknown era labels
// return ErrInvalidEra.
func (f *CandidateFilter) Filter(catalog []domain.Movie, prefs domain.Preferences) ([]domain.Movie, error) {
	era, err := domain.ResolveEra(prefs.Era)
	if err != nil {
		return nil, err
	}

	var candidates []domain.Movie
	for i := range catalog {
		m := &catalog[i]
		if m.OriginalLanguage != prefs.Language {
			continue
		}
		if !era.Contains(m.ReleaseYear) {
			continue
		}
		if !m.MatchesAnyGenre(prefs.Genres) {
			continue
		}
		if m.Popularity <= f.cfg.PopularityFloor {
			continue
		}
		if m.VoteAverage <= f.cfg.RatingFloor {
			continue
		}
		candidates = append(candidates, *m)
	}

	if len(candidates) > f.cfg.CandidateCap {
		candidates = f.sample(candidates, f.cfg.CandidateCap)
	}
	return candidates, nil
}

// sample draws k entries uniformly without replacement, preserving
// catalog order in the result so downstream tie-breaking stays stable.
func (f *CandidateFilter) sample(candidates []domain.Movie, k int) []domain.Movie {
	f.mu.Lock()
	picked := f.rng.Perm(len(candidates))[:k]
	f.mu.Unlock()
	sort.Ints(picked)

	sampled := make([]domain.Movie, k)
	for i, idx := range picked {
		sampled[i] = candidates[idx]
	}
	return sampled
}
