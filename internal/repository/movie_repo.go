package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lennart/cinemood/internal/domain"
)

// MovieRepository handles catalog data operations.
type MovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new MovieRepository bound to db.
func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// UpsertBatch creates or updates movie records keyed by ID.
func (r *MovieRepository) UpsertBatch(ctx context.Context, movies []domain.Movie) error {
	if len(movies) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&movies).Error
}

// All loads the full catalog ordered by ID. The engine holds the result
// in memory as read-only input for the lifetime of the process.
func (r *MovieRepository) All(ctx context.Context) ([]domain.Movie, error) {
	var movies []domain.Movie
	err := r.db.WithContext(ctx).Order("id").Find(&movies).Error
	return movies, err
}

// Count returns the number of catalog entries.
func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Movie{}).Count(&count).Error
	return count, err
}

// Languages returns the distinct original-language codes in the catalog.
func (r *MovieRepository) Languages(ctx context.Context) ([]string, error) {
	var languages []string
	err := r.db.WithContext(ctx).
		Model(&domain.Movie{}).
		Distinct("original_language").
		Order("original_language").
		Pluck("original_language", &languages).Error
	return languages, err
}

// GenreStrings returns the distinct raw genre label strings in the
// catalog. Each row is a delimited string; the caller splits labels.
func (r *MovieRepository) GenreStrings(ctx context.Context) ([]string, error) {
	var genres []string
	err := r.db.WithContext(ctx).
		Model(&domain.Movie{}).
		Distinct("genres").
		Pluck("genres", &genres).Error
	return genres, err
}
