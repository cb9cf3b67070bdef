package api

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Pixel height of one table row, used to size the padding row
const rowHeight = 48

// Number of columns of the transfers table
const columnCount = 4

type linkData struct {
	URL  string
	Text string
}

func parseTemplates() (*template.Template, error) {
	return template.New("index.html").
		Funcs(template.FuncMap{
			"link": func(url, text string) linkData {
				return linkData{URL: url, Text: text}
			},
		}).
		ParseFS(templateFS, "templates/index.html")
}
