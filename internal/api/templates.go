package api

import (
	"embed"
	"html/template"
)

// Templates are compiled into the binary so handlers render the same
// pages regardless of the working directory (tests included).
//
//go:embed templates/*.html
var templateFS embed.FS

func loadTemplates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}
