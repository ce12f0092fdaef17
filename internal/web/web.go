// Package web embeds the browser client and the server-side templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

//go:embed templates
var templateFiles embed.FS

// Static serves the browser client (index.html, styles.css, app.js).
func Static() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// static is embedded at build time, so Sub cannot fail
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// HomeTemplate parses the product table page.
func HomeTemplate() (*template.Template, error) {
	tmpl, err := template.New("home.html").
		Funcs(template.FuncMap{
			"price": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		}).
		ParseFS(templateFiles, "templates/home.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse home template: %w", err)
	}
	return tmpl, nil
}
