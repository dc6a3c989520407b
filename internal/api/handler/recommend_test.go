package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/lennart/cinemood/internal/domain"
	"github.com/lennart/cinemood/internal/service"
)

type fakeEmbedder struct {
	vectors  map[string][]float32
	queryVec []float32
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if vec, ok := f.vectors[text]; ok {
			out[i] = vec
		} else {
			out[i] = []float32{0, 0}
		}
	}
	return out, nil
}

func (f *fakeEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	return f.queryVec, nil
}

type fakeClassifier struct{}

func (fakeClassifier) Classify(_ context.Context, _ string, _ int) (string, float64, error) {
	return "joy", 0.9, nil
}

func testEngine(t *testing.T) *service.Engine {
	t.Helper()
	catalog := []domain.Movie{
		{
			ID: "1", Title: "Funny One", OriginalLanguage: "en", ReleaseYear: 2015,
			Genres: "Comedy", Popularity: 50, VoteAverage: 8.0,
			Overview: "a hilarious mixup", RichFeatures: "funny comedy laugh",
		},
		{
			ID: "2", Title: "Quiet Two", OriginalLanguage: "en", ReleaseYear: 2012,
			Genres: "Comedy", Popularity: 20, VoteAverage: 7.0,
			Overview: "a slow evening", RichFeatures: "slow quiet evening",
		},
		{
			ID: "3", Title: "Too Obscure", OriginalLanguage: "en", ReleaseYear: 2014,
			Genres: "Comedy", Popularity: 5, VoteAverage: 7.5,
			Overview: "never found its audience", RichFeatures: "obscure indie comedy",
		},
	}

	embedder := &fakeEmbedder{
		vectors: map[string][]float32{
			"funny comedy laugh": {1, 0},
			"slow quiet evening": {0, 1},
		},
		queryVec: []float32{1, 0},
	}

	engine, err := service.NewEngine(
		catalog,
		embedder,
		fakeClassifier{},
		nil,
		service.NewCandidateFilter(service.DefaultFilterConfig(), nil),
		nil,
		service.EngineConfig{Weights: domain.DefaultWeights()},
	)
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}
	return engine
}

func recommendRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/recommendations", NewRecommendHandler(testEngine(t)).Recommend)
	return r
}

func postRecommendations(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRecommendEndpoint(t *testing.T) {
	r := recommendRouter(t)

	w := postRecommendations(t, r, `{
		"mood": "humorous",
		"era": "streaming",
		"language": "en",
		"genres": ["Comedy"]
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Movies []domain.Recommendation `json:"movies"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(resp.Movies))
	}
	if resp.Movies[0].Title != "Funny One" {
		t.Errorf("expected \"Funny One\" first, got %q", resp.Movies[0].Title)
	}
}

func TestRecommendEndpointValidation(t *testing.T) {
	r := recommendRouter(t)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"missing mood", `{"era":"any","language":"en","genres":["Comedy"]}`, http.StatusBadRequest},
		{"empty genres", `{"mood":"dark","era":"any","language":"en","genres":[]}`, http.StatusBadRequest},
		{"unknown era", `{"mood":"dark","era":"unknown","language":"en","genres":["Comedy"]}`, http.StatusBadRequest},
		{"no matching movies", `{"mood":"dark","era":"streaming","language":"en","genres":["Documentary"]}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRecommendations(t, r, tt.body)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestMapRecommendError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid era", domain.ErrInvalidEra, http.StatusBadRequest},
		{"no candidates", domain.ErrNoCandidates, http.StatusNotFound},
		{"empty corpus", domain.ErrEmptyCorpus, http.StatusNotFound},
		{"external model failure", &domain.ExternalModelError{Model: "embedder", Err: errors.New("down")}, http.StatusBadGateway},
		{"unexpected failure", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := mapRecommendError(tt.err)
			if status != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, status)
			}
			if message == "" {
				t.Error("expected a non-empty error message")
			}
		})
	}
}
