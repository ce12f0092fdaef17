package integration

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"labs/internal/catalog"
	"labs/internal/handler"
	"labs/internal/model"
	"labs/internal/repository"
	"labs/internal/router"
	"labs/internal/service"
	"labs/internal/stream"
	"labs/internal/web"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// WriteSeedFile writes products as a YAML catalogue seed and returns its path.
func WriteSeedFile(t *testing.T, products []model.Product) string {
	t.Helper()

	data, err := yaml.Marshal(products)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	return path
}

// SetupAPIServer starts the products API the way cmd/api wires it.
// An empty seedFile uses the built-in catalogue.
func SetupAPIServer(t *testing.T, seedFile string) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	ctx := context.Background()

	seed, err := catalog.Seed(ctx, catalog.NewFileLoader(logger), seedFile, logger)
	require.NoError(t, err)

	productRepo, err := repository.NewProductRepository(seed, logger)
	require.NoError(t, err)
	productService := service.NewProductService(productRepo, logger)

	tmpl, err := web.HomeTemplate()
	require.NoError(t, err)

	srv := httptest.NewServer(router.NewAPI(
		handler.NewProductHandler(productService, logger),
		handler.NewHomeHandler(productService, tmpl, logger),
		logger,
	))
	t.Cleanup(srv.Close)

	return srv
}

// SSEServer is a running event stream server and its connection tracker.
type SSEServer struct {
	*httptest.Server
	Tracker *stream.Tracker
}

// SetupSSEServer starts the event stream server with the given tick interval and notification schedule.
func SetupSSEServer(t *testing.T, interval time.Duration, schedule []stream.Notification) *SSEServer {
	t.Helper()

	logger := zerolog.Nop()
	tracker := stream.NewTracker()

	srv := httptest.NewServer(router.NewSSE(
		stream.NewEmitter(interval, "Mensaje desde el servidor", tracker, logger),
		stream.NewNotifier(schedule, tracker, logger),
		tracker,
		logger,
	))
	t.Cleanup(srv.Close)

	return &SSEServer{Server: srv, Tracker: tracker}
}
