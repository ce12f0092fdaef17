package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labs/internal/catalog"
	"labs/internal/config"
	"labs/internal/handler"
	"labs/internal/repository"
	"labs/internal/router"
	"labs/internal/service"
	"labs/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger, "api")
	logger.Info().Msg("starting products API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the initial catalogue, from S3 when enabled
	loader := catalog.NewLoader(ctx, cfg, logger)
	seed, err := catalog.Seed(ctx, loader, cfg.Catalog.SeedFile, logger)
	if err != nil {
		return err
	}

	productRepo, err := repository.NewProductRepository(seed, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize product repository: %w", err)
	}
	productService := service.NewProductService(productRepo, logger)

	homeTemplate, err := web.HomeTemplate()
	if err != nil {
		return err
	}

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	homeHandler := handler.NewHomeHandler(productService, homeTemplate, logger)

	mux := router.NewAPI(productHandler, homeHandler, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Int("products", len(seed)).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
