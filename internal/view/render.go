package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

func RenderHTML(w io.Writer, page Page) error {
	return pageTemplate.Execute(w, page)
}

// RenderText writes the page as plain text, one line per element.
func RenderText(w io.Writer, page Page) error {
	var b strings.Builder

	b.WriteString(page.Title + "\n")
	if page.LocationLine != "" {
		b.WriteString(strings.TrimSpace(page.LocationLine+" "+page.Flag) + "\n")
	}

	switch {
	case page.Loading:
		b.WriteString(page.LoadingText + "\n")
	case page.Error != "":
		fmt.Fprintf(&b, "error: %s\n", page.Error)
	default:
		for _, d := range page.Days {
			fmt.Fprintf(&b, "%-5s %s %s\n", d.Label, d.Glyph, d.Range)
		}
	}

	if page.LocalTime != "" {
		b.WriteString(page.LocalTime + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
