package router

import (
	"encoding/json"
	"net/http"

	"labs/internal/handler"
	"labs/internal/middleware"
	"labs/internal/stream"
	"labs/internal/web"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status      string         `json:"status"`
	Connections map[string]int `json:"connections,omitempty"`
}

// NewAPI creates the products API router with all routes and middleware configured.
func NewAPI(
	productHandler *handler.ProductHandler,
	homeHandler *handler.HomeHandler,
	logger zerolog.Logger,
) http.Handler {
	r := newRouter(logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeHealth(w, healthResponse{Status: "healthy"})
	})

	r.Route("/api/productos", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Post("/", productHandler.Create)
		r.Get("/{id}", productHandler.GetByID)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
	})

	r.Method(http.MethodGet, "/home", homeHandler)

	return r
}

// NewSSE creates the event stream router serving both streams and the browser client.
func NewSSE(
	emitter *stream.Emitter,
	notifier *stream.Notifier,
	tracker *stream.Tracker,
	logger zerolog.Logger,
) http.Handler {
	r := newRouter(logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		connections := map[string]int{"events": 0, "notification": 0}
		for endpoint, n := range tracker.Snapshot() {
			connections[endpoint] = n
		}
		writeHealth(w, healthResponse{Status: "healthy", Connections: connections})
	})

	r.Method(http.MethodGet, "/events", emitter)
	r.Method(http.MethodGet, "/notification", notifier)
	r.Handle("/*", web.Static())

	return r
}

// newRouter applies middleware in order: Recovery -> RequestID -> Logging -> CORS.
func newRouter(logger zerolog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.NotFound(handler.NotFound(logger))
	r.MethodNotAllowed(handler.MethodNotAllowed(logger))

	return r
}

func writeHealth(w http.ResponseWriter, body healthResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}
