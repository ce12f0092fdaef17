package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labs/internal/config"
	"labs/internal/router"
	"labs/internal/stream"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, "sse")
	logger.Info().
		Dur("interval", cfg.Stream.Interval()).
		Msg("starting event stream server")

	tracker := stream.NewTracker()
	emitter := stream.NewEmitter(cfg.Stream.Interval(), cfg.Stream.Message, tracker, logger)
	notifier := stream.NewNotifier(stream.DefaultSchedule(), tracker, logger)

	mux := router.NewSSE(emitter, notifier, tracker, logger)

	// Streams stay open indefinitely, so there is no write timeout.
	server := &http.Server{
		Addr:        cfg.SSE.Address(),
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Cancel open streams when shutdown starts; Shutdown alone waits for them.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	server.BaseContext = func(net.Listener) context.Context { return ctx }

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.SSE.Address()).
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
			Interface("connections", tracker.Snapshot()).
			Msg("shutdown signal received, closing streams")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
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
