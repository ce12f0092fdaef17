package catalog

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"labs/internal/model"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// fileLoader implements Loader for seed files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a YAML or JSON seed file, gunzipping it first when the name ends in ".gz".
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.Product, error) {
	l.logger.Info().Str("file", path).Msg("loading catalog seed file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer file.Close()

	products, err := readSeed(ctx, file, path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read seed file")
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("products_loaded", len(products)).
		Msg("catalog seed file loaded successfully")

	return products, nil
}

// readSeed decodes a product list from r. YAML is a superset of JSON, so one decoder covers both.
func readSeed(ctx context.Context, r io.Reader, name string) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var products []model.Product
	if err := yaml.NewDecoder(r).Decode(&products); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("seed file %s is empty", name)
		}
		return nil, fmt.Errorf("failed to decode seed file %s: %w", name, err)
	}

	return products, nil
}
