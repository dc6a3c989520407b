package service

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/lennart/cinemood/internal/domain"
)

// SemanticEmbedder maps free text to fixed-length dense vectors. Both
// operations are batched and order-preserving. Implementations are
// deterministic per model version; tests substitute fakes.
type SemanticEmbedder interface {
	// EmbedBatch embeds catalog passages.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery embeds a search query.
	EmbedQuery(ctx context.Context, query string) ([]float32, error)
}

// EmbeddingService calls a Jina-style embeddings HTTP API.
type EmbeddingService struct {
	client     *resty.Client
	model      string
	dimensions int
	batchSize  int
}

// EmbeddingConfig holds configuration for the embedding service.
type EmbeddingConfig struct {
	Model      string
	APIKey     string
	BaseURL    string
	Dimensions int
	BatchSize  int
}

// NewEmbeddingService creates a new embedding client.
func NewEmbeddingService(cfg *EmbeddingConfig) *EmbeddingService {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 32
	}

	return &EmbeddingService{
		client:     client,
		model:      cfg.Model,
		dimensions: cfg.Dimensions,
		batchSize:  batchSize,
	}
}

type embeddingRequest struct {
	Model         string   `json:"model"`
	Task          string   `json:"task,omitempty"`
	Dimensions    int      `json:"dimensions,omitempty"`
	Input         []string `json:"input"`
	EmbeddingType string   `json:"embedding_type,omitempty"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Detail string `json:"detail,omitempty"`
}

// EmbedBatch embeds texts in API-sized chunks, preserving input order.
// Failures are wrapped as ExternalModelError and propagated; no retries.
func (s *EmbeddingService) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	embeddings := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += s.batchSize {
		end := start + s.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		chunk, err := s.embed(ctx, texts[start:end], "retrieval.passage")
		if err != nil {
			return nil, err
		}
		embeddings = append(embeddings, chunk...)
	}
	return embeddings, nil
}

// EmbedQuery embeds a single query text.
func (s *EmbeddingService) EmbedQuery(ctx context.Context, query string) ([]float32, error) {
	vectors, err := s.embed(ctx, []string{query}, "retrieval.query")
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, &domain.ExternalModelError{Model: s.model, Err: fmt.Errorf("no embedding returned")}
	}
	return vectors[0], nil
}

func (s *EmbeddingService) embed(ctx context.Context, texts []string, task string) ([][]float32, error) {
	req := embeddingRequest{
		Model:         s.model,
		Task:          task,
		Dimensions:    s.dimensions,
		Input:         texts,
		EmbeddingType: "float",
	}

	var resp embeddingResponse
	httpResp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&resp).
		Post("/embeddings")
	if err != nil {
		return nil, &domain.ExternalModelError{Model: s.model, Err: err}
	}
	if httpResp.StatusCode() != 200 {
		detail := resp.Detail
		if detail == "" {
			detail = fmt.Sprintf("status %d", httpResp.StatusCode())
		}
		return nil, &domain.ExternalModelError{Model: s.model, Err: fmt.Errorf("embeddings API: %s", detail)}
	}
	if len(resp.Data) != len(texts) {
		return nil, &domain.ExternalModelError{
			Model: s.model,
			Err:   fmt.Errorf("unexpected number of embeddings: got %d, expected %d", len(resp.Data), len(texts)),
		}
	}

	// Order by response index so output aligns with input
	vectors := make([][]float32, len(texts))
	for _, item := range resp.Data {
		if item.Index >= 0 && item.Index < len(vectors) {
			vectors[item.Index] = item.Embedding
		}
	}
	return vectors, nil
}
