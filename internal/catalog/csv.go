// Package catalog reads the preprocessed movie dataset produced by the
// offline pipeline. The reader fails fast when required columns are
// absent so a half-built dataset never reaches the engine.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lennart/cinemood/internal/domain"
)

// requiredColumns are the dataset columns the engine depends on.
var requiredColumns = []string{
	"id",
	"title",
	"genres",
	"original_language",
	"overview",
	"popularity",
	"release_year",
	"vote_average",
	"poster_path",
	"rich_features",
}

// ReadFile reads and validates the preprocessed catalog CSV at path.
func ReadFile(path string) ([]domain.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses the catalog from r. The first row must be a header
// containing every required column; extra columns are ignored.
func Read(r io.Reader) ([]domain.Movie, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("catalog is missing required column %q", col)
		}
	}

	var movies []domain.Movie
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog row %d: %w", line, err)
		}
		line++

		movie, err := parseRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog row %d: %w", line, err)
		}
		movies = append(movies, movie)
	}

	return movies, nil
}

func parseRow(record []string, index map[string]int) (domain.Movie, error) {
	field := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	popularity, err := parseFloat(field("popularity"))
	if err != nil {
		return domain.Movie{}, fmt.Errorf("popularity: %w", err)
	}
	rating, err := parseFloat(field("vote_average"))
	if err != nil {
		return domain.Movie{}, fmt.Errorf("vote_average: %w", err)
	}
	year, err := parseYear(field("release_year"))
	if err != nil {
		return domain.Movie{}, fmt.Errorf("release_year: %w", err)
	}

	return domain.Movie{
		ID:               strings.TrimSpace(field("id")),
		Title:            field("title"),
		Genres:           field("genres"),
		OriginalLanguage: strings.TrimSpace(field("original_language")),
		Overview:         field("overview"),
		Popularity:       popularity,
		ReleaseYear:      year,
		VoteAverage:      rating,
		PosterPath:       field("poster_path"),
		RichFeatures:     field("rich_features"),
	}, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseYear accepts both integer years and float renderings like
// "1999.0" that pandas writes for year columns.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
