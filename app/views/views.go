// Package views renders the catalog page and serves its browser script.
package views

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"

	"github.com/shashiranjanraj/catalog/app/models"
)

//go:embed templates/index.gohtml
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var index = template.Must(template.ParseFS(templateFS, "templates/index.gohtml"))

type pageData struct {
	Products []models.Product
}

// Render writes the full page for products. It has no side effects beyond w.
func Render(w io.Writer, products []models.Product) error {
	return index.Execute(w, pageData{Products: products})
}

// Static serves the embedded static/ directory. Mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
