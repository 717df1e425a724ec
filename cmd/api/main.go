package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"leavn/application/ports"
	"leavn/application/services"
	"leavn/infrastructure/config"
	"leavn/infrastructure/container"
	"leavn/interfaces/http/rest"
	"leavn/pkg/observability"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Wire the dependency container
	c, err := container.Configure(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to configure container", zap.Error(err))
	}

	situationSvc := container.MustResolve[*services.SituationService](c, container.CapabilitySituationService)
	settingsSvc := container.MustResolve[*services.SettingsService](c, container.CapabilitySettingsService)
	bibleSvc := container.MustResolve[ports.BibleService](c, container.CapabilityBibleService)
	store := container.MustResolve[ports.KeyValueStore](c, container.CapabilityKeyValueStore)

	collector := observability.NewCollector("leavn")

	// Create router
	router := rest.NewRouter(situationSvc, settingsSvc, bibleSvc, collector, cfg, logger)
	handler := router.Setup()

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	if err := store.Close(); err != nil {
		logger.Error("Store close error", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsDevelopment() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
