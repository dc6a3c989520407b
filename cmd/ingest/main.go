// Command ingest loads the preprocessed movie dataset CSV into the
// catalog database. It is a one-shot tool run whenever the offline
// pipeline produces a new dataset.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/lennart/cinemood/internal/catalog"
	"github.com/lennart/cinemood/internal/config"
	"github.com/lennart/cinemood/internal/logger"
	"github.com/lennart/cinemood/internal/repository"
)

func main() {
	var (
		configPath = flag.String("config", os.Getenv("CONFIG_PATH"), "path to config file")
		csvPath    = flag.String("csv", "", "path to the preprocessed catalog CSV (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Default().Fatalf("Failed to load config: %v", err)
	}

	log := logger.NewDefault()
	logger.SetDefault(log)
	defer logger.Sync()

	path := cfg.Ingest.CSVPath
	if *csvPath != "" {
		path = *csvPath
	}

	start := time.Now()
	log.Infof("Reading catalog: path=%s", path)

	movies, err := catalog.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read catalog: %v", err)
	}
	log.Infof("Catalog parsed: movies=%d", len(movies))

	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	movieRepo := repository.NewMovieRepository(db)

	ctx := context.Background()
	batchSize := cfg.Ingest.BatchSize
	if batchSize <= 0 {
		batchSize = 500
	}

	for offset := 0; offset < len(movies); offset += batchSize {
		end := offset + batchSize
		if end > len(movies) {
			end = len(movies)
		}
		if err := movieRepo.UpsertBatch(ctx, movies[offset:end]); err != nil {
			log.Fatalf("Failed to upsert batch %d-%d: %v", offset, end, err)
		}
	}

	total, err := movieRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count catalog: %v", err)
	}

	log.WithFields(logger.Fields{
		logger.FieldCount:      total,
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Info("Catalog ingest complete")
}
