package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the page templates; each is addressed by its file name.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
