package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/lennart/cinemood/internal/config"
	"github.com/lennart/cinemood/internal/domain"
	"github.com/lennart/cinemood/internal/repository"
)

func testCatalogService(t *testing.T, movies []domain.Movie) *CatalogService {
	t.Helper()
	db, err := repository.InitDB(&config.DatabaseConfig{
		Driver:      "sqlite",
		Path:        filepath.Join(t.TempDir(), "movies.db"),
		AutoMigrate: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	repo := repository.NewMovieRepository(db)
	if err := repo.UpsertBatch(context.Background(), movies); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
	return NewCatalogService(repo)
}

func TestCatalogGenresSplitsAndDeduplicates(t *testing.T) {
	svc := testCatalogService(t, []domain.Movie{
		{ID: "1", Title: "A", Genres: "Drama, Crime", OriginalLanguage: "en"},
		{ID: "2", Title: "B", Genres: "Crime, Thriller", OriginalLanguage: "en"},
		{ID: "3", Title: "C", Genres: "Drama", OriginalLanguage: "en"},
		{ID: "4", Title: "D", Genres: "", OriginalLanguage: "en"},
	})

	genres, err := svc.Genres(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Crime", "Drama", "Thriller"}
	if len(genres) != len(want) {
		t.Fatalf("expected %v, got %v", want, genres)
	}
	for i := range want {
		if genres[i] != want[i] {
			t.Errorf("expected %v, got %v", want, genres)
			break
		}
	}
}

func TestCatalogLanguages(t *testing.T) {
	svc := testCatalogService(t, []domain.Movie{
		{ID: "1", Title: "A", Genres: "Drama", OriginalLanguage: "ja"},
		{ID: "2", Title: "B", Genres: "Drama", OriginalLanguage: "en"},
		{ID: "3", Title: "C", Genres: "Drama", OriginalLanguage: "en"},
	})

	languages, err := svc.Languages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(languages) != 2 || languages[0] != "en" || languages[1] != "ja" {
		t.Errorf("expected [en ja], got %v", languages)
	}
}
