package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/lennart/cinemood/internal/domain"
)

// AffectClassifier maps free text to a discrete affect label with a
// confidence in [0, 1]. Input is truncated to maxChars before
// classification. Implementations are stochastic upstream; tests
// substitute deterministic fakes.
type AffectClassifier interface {
	Classify(ctx context.Context, text string, maxChars int) (label string, confidence float64, err error)
}

const (
	// affectPenalty is the raw score for a candidate whose classified
	// label is not among the mood's desired labels. Strictly below the
	// neutral fallback so mismatches rank under unclassifiable text.
	affectPenalty = 0.25

	// affectNeutral is the fallback score for empty or unclassifiable
	// text.
	affectNeutral = 0.5
)

// moodLabels maps a query mood to the affect labels it aligns with.
var moodLabels = map[string][]string{
	"dark":              {"fear", "sadness"},
	"emotional":         {"sadness", "joy"},
	"humorous":          {"joy"},
	"inspiring":         {"joy"},
	"intense":           {"anger", "fear"},
	"melancholic":       {"sadness"},
	"mysterious":        {"fear", "surprise"},
	"relaxing":          {"neutral"},
	"romantic":          {"joy"},
	"suspenseful":       {"fear", "surprise"},
	"thought-provoking": {"neutral"},
	"uplifting":         {"joy"},
}

// DesiredLabels returns the affect labels aligned with mood. Unknown
// moods fall back to neutral.
func DesiredLabels(mood string) []string {
	if labels, ok := moodLabels[strings.ToLower(mood)]; ok {
		return labels
	}
	return []string{"neutral"}
}

// affectScore turns one classifier result into a raw affect score:
// confidence when the label is desired, a fixed penalty otherwise, and
// the neutral fallback when the text yields no label.
func affectScore(ctx context.Context, clf AffectClassifier, text string, desired []string, maxChars int) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return affectNeutral, nil
	}

	label, confidence, err := clf.Classify(ctx, text, maxChars)
	if err != nil {
		return 0, err
	}
	if label == "" {
		return affectNeutral, nil
	}

	for _, want := range desired {
		if strings.EqualFold(label, want) {
			return confidence, nil
		}
	}
	return affectPenalty, nil
}

// AffectService calls a hosted text-classification inference API.
type AffectService struct {
	client *resty.Client
	model  string
}

// AffectServiceConfig holds configuration for the affect classifier
// client.
type AffectServiceConfig struct {
	Model   string
	APIKey  string
	BaseURL string
}

// NewAffectService creates a new affect classifier client.
func NewAffectService(cfg *AffectServiceConfig) *AffectService {
	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetHeader("Authorization", "Bearer "+cfg.APIKey)
	client.SetHeader("Content-Type", "application/json")

	return &AffectService{
		client: client,
		model:  cfg.Model,
	}
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

type classifyResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type classifyError struct {
	Error string `json:"error"`
}

// Classify sends text to the inference API and returns the top label.
// Failures are wrapped as ExternalModelError; no retries.
func (s *AffectService) Classify(ctx context.Context, text string, maxChars int) (string, float64, error) {
	if maxChars > 0 {
		runes := []rune(text)
		if len(runes) > maxChars {
			text = string(runes[:maxChars])
		}
	}

	var results [][]classifyResult
	var apiErr classifyError
	httpResp, err := s.client.R().
		SetContext(ctx).
		SetBody(classifyRequest{Inputs: text}).
		SetResult(&results).
		SetError(&apiErr).
		Post("/models/" + s.model)
	if err != nil {
		return "", 0, &domain.ExternalModelError{Model: s.model, Err: err}
	}
	if httpResp.StatusCode() != 200 {
		detail := apiErr.Error
		if detail == "" {
			detail = fmt.Sprintf("status %d", httpResp.StatusCode())
		}
		return "", 0, &domain.ExternalModelError{Model: s.model, Err: fmt.Errorf("classification API: %s", detail)}
	}

	if len(results) == 0 || len(results[0]) == 0 {
		return "", 0, nil
	}

	// Results come sorted by score; take the top label
	top := results[0][0]
	for _, candidate := range results[0][1:] {
		if candidate.Score > top.Score {
			top = candidate
		}
	}
	return top.Label, top.Score, nil
}
