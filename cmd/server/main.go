package main

import (
	"fmt"
	"log"

	"vivaran/internal/config"
	"vivaran/internal/extractor/gemini"
	"vivaran/internal/handler"
	"vivaran/internal/repository/postgres"
	"vivaran/internal/router"
	"vivaran/internal/service"
	s3storage "vivaran/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	runRepo := postgres.NewExtractionRunRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize chunk extractor and services
	chunkExtractor := gemini.NewExtractor(&cfg.Extractor)
	extractionSvc := service.NewExtractionService(runRepo, s3Client, chunkExtractor, &cfg.S3, &cfg.Transform)

	// Initialize handlers
	extractionH := handler.NewExtractionHandler(extractionSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(extractionH, healthH, cfg.CORS.AllowedOrigins)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
