package domain

import "strings"

// Movie represents one catalog entry from the preprocessed movie dataset.
// Records are immutable once loaded; the in-memory catalog is read-only
// input to the recommendation engine.
type Movie struct {
	ID               string  `gorm:"type:text;primaryKey" json:"id"`
	Title            string  `gorm:"type:text;not null" json:"title"`
	Genres           string  `gorm:"type:text" json:"genres"`
	OriginalLanguage string  `gorm:"column:original_language;type:text;index:idx_movies_language" json:"original_language"`
	Overview         string  `gorm:"type:text" json:"overview"`
	Popularity       float64 `json:"popularity"`
	ReleaseYear      int     `gorm:"index:idx_movies_year" json:"release_year"`
	VoteAverage      float64 `gorm:"column:vote_average" json:"vote_average"`
	PosterPath       string  `gorm:"column:poster_path;type:text" json:"poster_path"`
	RichFeatures     string  `gorm:"column:rich_features;type:text" json:"rich_features"`
}

// TableName returns the database table name for Movie.
func (Movie) TableName() string {
	return "movies"
}

// MatchesAnyGenre reports whether the movie's genre string contains at
// least one of the preferred genre labels, case-insensitively. The genre
// column is a delimited label string, so membership is substring based.
func (m *Movie) MatchesAnyGenre(preferred []string) bool {
	if m.Genres == "" || len(preferred) == 0 {
		return false
	}
	movieGenres := strings.ToLower(m.Genres)
	for _, genre := range preferred {
		genre = strings.ToLower(strings.TrimSpace(genre))
		if genre != "" && strings.Contains(movieGenres, genre) {
			return true
		}
	}
	return false
}

// Recommendation is the read-only projection of a ranked movie returned
// to API consumers. Confidence is the fused ranking score, not a
// probability.
type Recommendation struct {
	Title      string  `json:"title"`
	Genre      string  `json:"genre"`
	Rating     float64 `json:"rating"`
	Year       int     `json:"year"`
	Poster     string  `json:"poster"`
	Confidence float64 `json:"confidence"`
	Popularity float64 `json:"popularity"`
	Language   string  `json:"language"`
}
