package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/catalog-feed-api/internal/api"
	"github.com/catalog-feed-api/internal/config"
	"github.com/catalog-feed-api/internal/feed"
	"github.com/catalog-feed-api/internal/importer"
	"github.com/catalog-feed-api/internal/mapping"
	"github.com/catalog-feed-api/internal/mapstore"
	"github.com/catalog-feed-api/internal/mirror"
	"github.com/catalog-feed-api/pkg/logger"
)

func main() {
	// Load .env file if present, real environment wins
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Catalog Feed API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := os.MkdirAll(cfg.Store.DataDir, 0755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Store.DataDir).Msg("Failed to create data directory")
	}

	// Initialize stores
	feedStore := feed.NewFileStore(filepath.Join(cfg.Store.DataDir, cfg.Store.FeedFile), log)
	mapStore := mapstore.NewFileStore(filepath.Join(cfg.Store.DataDir, cfg.Store.MappingFile), log)

	// Initialize services
	mirrorClient := mirror.New(cfg.Mirror, log)
	feedService := feed.NewService(feedStore, mirrorClient, log)
	importService := importer.NewService(mapping.NewResolver(), mapStore, &cfg.Import, log)

	// Initialize router
	router := api.NewRouter(importService, feedService, mapStore, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
