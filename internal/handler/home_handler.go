package handler

import (
	"bytes"
	"html/template"
	"net/http"

	"labs/internal/model"
	"labs/internal/service"

	"github.com/rs/zerolog"
)

// homePage is the data rendered by the home template.
type homePage struct {
	Title    string
	Products []model.Product
}

// HomeHandler renders the product catalogue as an HTML table.
type HomeHandler struct {
	service service.ProductService
	tmpl    *template.Template
	logger  zerolog.Logger
}

// NewHomeHandler creates a new home page handler.
func NewHomeHandler(service service.ProductService, tmpl *template.Template, logger zerolog.Logger) *HomeHandler {
	return &HomeHandler{
		service: service,
		tmpl:    tmpl,
		logger:  logger.With().Str("handler", "home").Logger(),
	}
}

// ServeHTTP handles GET /home requests.
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		writeDomainError(w, r, err, h.logger)
		return
	}

	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, homePage{Title: "Lista de productos", Products: products}); err != nil {
		h.logger.Error().Err(err).Msg("failed to render home template")
		writeDomainError(w, r, model.ErrInternal, h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
