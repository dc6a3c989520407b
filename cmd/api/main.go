package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lennart/cinemood/internal/api"
	"github.com/lennart/cinemood/internal/cache"
	"github.com/lennart/cinemood/internal/config"
	"github.com/lennart/cinemood/internal/logger"
	"github.com/lennart/cinemood/internal/repository"
	"github.com/lennart/cinemood/internal/service"
)

func main() {
	// Support CONFIG_PATH environment variable for production deployments
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Default().Fatalf("Failed to load config: %v", err)
	}

	log := logger.NewDefault()
	logger.SetDefault(log)
	defer logger.Sync()

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	movieRepo := repository.NewMovieRepository(db)

	// The catalog is loaded once and held read-only for the process
	// lifetime; refreshing it means restarting the service.
	ctx := context.Background()
	catalog, err := movieRepo.All(ctx)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	if len(catalog) == 0 {
		log.Fatalf("Catalog is empty; run cmd/ingest against the preprocessed dataset first")
	}
	log.Infof("Catalog loaded: movies=%d", len(catalog))

	store, err := cache.NewStore(&cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to initialize embedding cache store: %v", err)
	}
	if s3Store, ok := store.(*cache.S3Store); ok {
		if err := s3Store.EnsureBucket(ctx); err != nil {
			log.Fatalf("Failed to ensure cache bucket: %v", err)
		}
	}
	embedCache := cache.NewEmbeddingCache(store)

	embedder := service.NewEmbeddingService(&service.EmbeddingConfig{
		Model:      cfg.Embedding.Model,
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Dimensions: cfg.Embedding.Dimensions,
		BatchSize:  cfg.Embedding.BatchSize,
	})

	classifier := service.NewAffectService(&service.AffectServiceConfig{
		Model:   cfg.Affect.Model,
		APIKey:  cfg.Affect.APIKey,
		BaseURL: cfg.Affect.BaseURL,
	})

	filter := service.NewCandidateFilter(service.FilterConfig{
		PopularityFloor: cfg.Recommend.PopularityFloor,
		RatingFloor:     cfg.Recommend.RatingFloor,
		CandidateCap:    cfg.Recommend.CandidateCap,
	}, nil)

	engine, err := service.NewEngine(catalog, embedder, classifier, embedCache, filter, log, service.EngineConfig{
		Weights: cfg.Recommend.Weights,
		TopK:    cfg.Recommend.TopK,
		Lexical: service.LexicalConfig{
			MaxFeatures: cfg.Recommend.Lexical.MaxFeatures,
			MinDF:       cfg.Recommend.Lexical.MinDF,
			MaxDFRatio:  cfg.Recommend.Lexical.MaxDFRatio,
		},
		MaxClassifyChars: cfg.Affect.MaxChars,
	})
	if err != nil {
		log.Fatalf("Failed to initialize recommendation engine: %v", err)
	}

	catalogService := service.NewCatalogService(movieRepo)

	router := api.SetupRouter(engine, catalogService, cfg, log)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Infof("Starting API server: port=%d, mode=%s", cfg.Server.Port, cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infof("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Infof("Server exited")
}
