package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// PlaceholderImage is served in place of any listing image that is missing or
// fails to load.
const PlaceholderImage = "/static/car-placeholder.svg"

// Templates parses the embedded page templates. Pages are addressed by file
// name, e.g. "dashboard.tmpl".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"placeholder": func() string { return PlaceholderImage },
	}).ParseFS(templateFS, "templates/*.tmpl"))
}

// Static exposes the embedded assets rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
