package web

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic(t *testing.T) {
	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{path: "/", contentType: "text/html", contains: `<script src="app.js">`},
		{path: "/styles.css", contentType: "text/css", contains: "#notifications"},
		{path: "/app.js", contentType: "javascript", contains: "new EventSource('/events')"},
	}

	handler := Static()

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), tt.contentType)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestStatic_Missing(t *testing.T) {
	w := httptest.NewRecorder()
	Static().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope.txt", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHomeTemplate(t *testing.T) {
	tmpl, err := HomeTemplate()
	require.NoError(t, err)

	type row struct {
		ID     int
		Nombre string
		Precio float64
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, struct {
		Title    string
		Products []row
	}{
		Title:    "Lista de productos",
		Products: []row{{ID: 1, Nombre: "Café <molido>", Precio: 4.5}},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Lista de productos</title>")
	assert.Contains(t, html, "<td>1</td>")
	assert.Contains(t, html, "Café &lt;molido&gt;")
	assert.Contains(t, html, "<td>4.50</td>")
}
