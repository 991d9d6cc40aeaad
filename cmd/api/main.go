package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"planwell/internal/config"
	"planwell/internal/http"
	"planwell/internal/ingest"
	"planwell/internal/normalizer"
	"planwell/internal/progress"
	"planwell/internal/search"
	"planwell/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	contentRepo := storage.NewContentRepo(db)
	norm := normalizer.New()
	engine := search.New(contentRepo, search.WithDefaultLimit(cfg.SearchDefaultLimit))
	importer := ingest.NewImporter(contentRepo, norm, logger)

	deps := &http.Deps{
		Store:         contentRepo,
		SearchEngine:  engine,
		Normalizer:    norm,
		Importer:      importer,
		ContentDir:    cfg.ContentDir,
		ProgressStore: progress.NewMemoryStore(),
		DB:            db,
	}
	router := http.NewRouter(deps)

	// Import content in background after router is ready
	if cfg.ContentDir != "" {
		go func() {
			importCtx := context.Background()
			slog.Info("Starting background content import", "dir", cfg.ContentDir)
			summary, err := importer.Run(importCtx, cfg.ContentDir)
			if err != nil {
				slog.Error("Content import completed with errors", "error", err)
				return
			}
			slog.Info("Content import completed", "imported", summary.Imported, "failed", summary.Failed)
		}()
	}

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
