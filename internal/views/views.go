package views

import (
	"embed"
	"html/template"
	"io"

	"shiftlog/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Flash is a one-shot notice carried across a redirect.
type Flash struct {
	Category string
	Message  string
}

// IndexData feeds the day-view page.
type IndexData struct {
	Date       string
	PrevDate   string
	NextDate   string
	Dates      []string
	Records    []models.ShiftView
	TotalHours float64
	Flashes    []Flash
}

// EditData feeds the edit form page.
type EditData struct {
	Record     models.ShiftRecord
	ReturnDate string
	Flashes    []Flash
}

type Renderer struct {
	tpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl}, nil
}

func (r *Renderer) Index(w io.Writer, data IndexData) error {
	return r.tpl.ExecuteTemplate(w, "index.html.tmpl", data)
}

func (r *Renderer) Edit(w io.Writer, data EditData) error {
	return r.tpl.ExecuteTemplate(w, "edit.html.tmpl", data)
}
