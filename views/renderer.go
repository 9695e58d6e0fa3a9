package views

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"

	"shoe-store/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders card display trees into HTML fragments and pages.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("views").Funcs(template.FuncMap{
		"css":    cssColor,
		"weight": func(w int) string { return strconv.Itoa(w) },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: tmpl}, nil
}

// cssColor only trusts values that parse as a color.
func cssColor(v string) template.CSS {
	if !models.IsCSSColor(v) {
		return template.CSS("inherit")
	}
	return template.CSS(v)
}

func (r *Renderer) RenderCard(card ShoeCard) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, "shoe_card.html", card); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type catalogPage struct {
	Title string
	Cards []ShoeCard
	Meta  models.MetaData
}

func (r *Renderer) RenderCatalog(title string, cards []ShoeCard, meta models.MetaData) ([]byte, error) {
	var buf bytes.Buffer
	page := catalogPage{Title: title, Cards: cards, Meta: meta}
	if err := r.templates.ExecuteTemplate(&buf, "catalog.html", page); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
