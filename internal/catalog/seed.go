package catalog

import (
	"context"
	"fmt"

	"labs/internal/config"
	"labs/internal/model"

	"github.com/rs/zerolog"
)

// NewLoader builds the seed loader for cfg: local files, optionally fronted by S3.
func NewLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) Loader {
	fileLoader := NewFileLoader(logger)
	if !cfg.S3.Enabled {
		return fileLoader
	}

	s3Loader, err := NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}

// Seed returns the initial catalogue: the contents of seedFile, or DefaultSeed when it is empty.
func Seed(ctx context.Context, loader Loader, seedFile string, logger zerolog.Logger) ([]model.Product, error) {
	if seedFile == "" {
		logger.Info().Msg("using built-in catalog seed")
		return DefaultSeed(), nil
	}

	products, err := loader.Load(ctx, seedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog seed: %w", err)
	}

	return products, nil
}
