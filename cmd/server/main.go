package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"docextractor/internal/config"
	"docextractor/internal/domain"
	"docextractor/internal/extractor"
	"docextractor/internal/extractor/claude"
	"docextractor/internal/extractor/gemini"
	"docextractor/internal/handler"
	"docextractor/internal/logger"
	"docextractor/internal/port"
	"docextractor/internal/router"
	"docextractor/internal/service"
)

const shutdownTimeout = 5 * time.Second

// @title Document Extractor API
// @version 1.0.0
// @description Extracts structured fields from Brazilian identification documents using Claude or Gemini.
// @BasePath /api
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

	zl, err := logger.New(&cfg.Log, cfg.Server.Environment)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()

	// Initialize provider adapters, each behind its own rate limiter
	registry := extractor.NewRegistry(map[domain.Provider]port.DocumentExtractor{
		domain.ProviderClaude: extractor.NewRateLimited(
			extractor.NewLimiter(cfg.Provider.RateLimit),
			claude.NewExtractor(&cfg.Provider, zl),
		),
		domain.ProviderGemini: extractor.NewRateLimited(
			extractor.NewLimiter(cfg.Provider.RateLimit),
			gemini.NewExtractor(&cfg.Provider, zl),
		),
	})

	// Initialize services
	extractionSvc := service.NewExtractionService(registry, cfg.Upload, zl)

	// Initialize handlers
	extractionH := handler.NewExtractionHandler(extractionSvc, cfg.Upload.MaxFileSizeMB)
	exportH := handler.NewExportHandler()
	healthH := handler.NewHealthHandler(cfg.Server.Environment, cfg.Upload, extractionSvc.Providers)

	// Setup router
	r := router.Setup(cfg, zl, extractionH, exportH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zl.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment),
			zap.Int64("max_file_size_mb", cfg.Upload.MaxFileSizeMB),
			zap.Int("rate_limit_per_minute", cfg.Provider.RateLimit),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zl.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	zl.Info("server stopped")
	return nil
}
