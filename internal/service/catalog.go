package service

import (
	"context"
	"sort"
	"strings"

	"github.com/lennart/cinemood/internal/repository"
)

// CatalogService exposes catalog metadata for the preference form:
// which languages, genres and eras a query can ask for.
type CatalogService struct {
	movieRepo *repository.MovieRepository
}

// NewCatalogService creates a catalog metadata service.
func NewCatalogService(movieRepo *repository.MovieRepository) *CatalogService {
	return &CatalogService{movieRepo: movieRepo}
}

// Languages returns the distinct original-language codes present in the
// catalog.
func (s *CatalogService) Languages(ctx context.Context) ([]string, error) {
	return s.movieRepo.Languages(ctx)
}

// Genres returns the distinct genre labels in the catalog. The stored
// genre column is a delimited string per movie, so labels are split,
// deduplicated and sorted here.
func (s *CatalogService) Genres(ctx context.Context) ([]string, error) {
	rows, err := s.movieRepo.GenreStrings(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var labels []string
	for _, row := range rows {
		for _, label := range strings.Split(row, ",") {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels, nil
}
