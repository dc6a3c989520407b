package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lennart/cinemood/internal/cache"
	"github.com/lennart/cinemood/internal/domain"
	"github.com/lennart/cinemood/internal/logger"
)

// EngineConfig holds the static recommendation configuration, validated
// once at engine construction.
type EngineConfig struct {
	Weights          domain.SimilarityWeights
	TopK             int
	Lexical          LexicalConfig
	MaxClassifyChars int
}

// Engine orchestrates candidate filtering, semantic and lexical
// similarity, affect alignment, score fusion and ranking into the
// GetMovies operation. One request runs sequentially; the engine itself
// is safe for concurrent requests because the catalog is read-only and
// every mutable model is request-scoped.
type Engine struct {
	catalog    []domain.Movie
	embedder   SemanticEmbedder
	classifier AffectClassifier
	embedCache *cache.EmbeddingCache
	filter     *CandidateFilter
	cfg        EngineConfig
	logger     *logger.Logger
}

// NewEngine creates a recommendation engine over a read-only catalog.
func NewEngine(
	catalog []domain.Movie,
	embedder SemanticEmbedder,
	classifier AffectClassifier,
	embedCache *cache.EmbeddingCache,
	filter *CandidateFilter,
	log *logger.Logger,
	cfg EngineConfig,
) (*Engine, error) {
	if err := cfg.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 4
	}
	if cfg.MaxClassifyChars <= 0 {
		cfg.MaxClassifyChars = 512
	}
	if cfg.Lexical.MaxFeatures <= 0 {
		cfg.Lexical = DefaultLexicalConfig()
	}
	if log == nil {
		log = logger.Default()
	}

	return &Engine{
		catalog:    catalog,
		embedder:   embedder,
		classifier: classifier,
		embedCache: embedCache,
		filter:     filter,
		cfg:        cfg,
		logger:     log,
	}, nil
}

// CatalogSize returns the number of entries the engine recommends from.
func (e *Engine) CatalogSize() int {
	return len(e.catalog)
}

// GetMovies turns a preference query into a ranked short-list of at
// most TopK recommendations.
func (e *Engine) GetMovies(ctx context.Context, prefs domain.Preferences) ([]domain.Recommendation, error) {
	start := time.Now()

	candidates, err := e.filter.Filter(e.catalog, prefs)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: mood=%q era=%q language=%q genres=%v",
			domain.ErrNoCandidates, prefs.Mood, prefs.Era, prefs.Language, prefs.Genres)
	}

	richTexts := make([]string, len(candidates))
	covered := false
	for i := range candidates {
		richTexts[i] = candidates[i].RichFeatures
		if strings.TrimSpace(richTexts[i]) != "" {
			covered = true
		}
	}
	if !covered {
		return nil, fmt.Errorf("%w: rerun the preprocessing pipeline", domain.ErrMissingFeatures)
	}

	key := cache.Key(prefs, len(candidates))
	ctx = logger.WithFields(ctx, logger.Fields{
		logger.FieldComponent: "recommend",
		logger.FieldCacheKey:  key,
	})
	logger.CtxInfo(ctx, "Generating recommendations: candidates=%d", len(candidates))

	embeddings, err := e.candidateEmbeddings(ctx, key, richTexts)
	if err != nil {
		return nil, err
	}

	lexModel, err := FitLexical(richTexts, e.cfg.Lexical)
	if err != nil {
		return nil, err
	}
	docVectors := lexModel.TransformAll(richTexts)
	logger.CtxDebug(ctx, "Fitted lexical model: vocabulary=%d", lexModel.VocabularySize())

	// The query is represented as mood plus free-text notes, embedded
	// once and compared against every candidate.
	queryText := strings.TrimSpace(prefs.Mood + " " + prefs.Notes)
	queryEmbedding, err := e.embedder.EmbedQuery(ctx, queryText)
	if err != nil {
		return nil, err
	}
	queryLexical := lexModel.Transform(CleanText(queryText))

	signals := Signals{
		Semantic:   make([]float64, len(candidates)),
		Lexical:    make([]float64, len(candidates)),
		Affect:     make([]float64, len(candidates)),
		Popularity: make([]float64, len(candidates)),
		Rating:     make([]float64, len(candidates)),
	}

	desired := DesiredLabels(prefs.Mood)
	for i := range candidates {
		signals.Semantic[i] = cosineSimilarity(queryEmbedding, embeddings[i])
		signals.Lexical[i] = cosineSparse(queryLexical, docVectors[i])
		signals.Popularity[i] = candidates[i].Popularity
		signals.Rating[i] = candidates[i].VoteAverage

		affectText := strings.TrimSpace(candidates[i].Overview + " " + prefs.Notes)
		signals.Affect[i], err = affectScore(ctx, e.classifier, affectText, desired, e.cfg.MaxClassifyChars)
		if err != nil {
			return nil, err
		}
	}

	fused, err := Fuse(signals, e.cfg.Weights)
	if err != nil {
		return nil, err
	}

	results := Rank(candidates, fused, e.cfg.TopK)

	logger.FromContext(ctx).WithFields(logger.Fields{
		logger.FieldCount:      len(results),
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Info("Recommendations generated")

	return results, nil
}

// candidateEmbeddings returns the semantic vectors for the candidate
// rich texts, reusing the cache when the query shape was seen before.
// Cache read/write failures degrade to recomputation and are never
// surfaced to the caller.
func (e *Engine) candidateEmbeddings(ctx context.Context, key string, richTexts []string) ([][]float32, error) {
	if e.embedCache != nil {
		vectors, hit, err := e.embedCache.Get(ctx, key)
		if err != nil {
			logger.CtxWarn(ctx, "Embedding cache read failed: error=%v", err)
		}
		// A stale entry with the wrong cardinality cannot score this
		// candidate set; treat it as a miss.
		if hit && len(vectors) == len(richTexts) {
			logger.CtxDebug(ctx, "Embedding cache hit")
			return vectors, nil
		}
	}

	vectors, err := e.embedder.EmbedBatch(ctx, richTexts)
	if err != nil {
		return nil, err
	}

	if e.embedCache != nil {
		if err := e.embedCache.Put(ctx, key, vectors); err != nil {
			logger.CtxWarn(ctx, "Embedding cache write failed: error=%v", err)
		}
	}
	return vectors, nil
}
