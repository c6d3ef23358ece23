package handlers

import (
	"html/template"
	"time"

	"julmar.cl/web/internal/nav"
	"julmar.cl/web/internal/quote"
	"julmar.cl/web/internal/seo"
)

// Layout holds the fields the shared base template reads.
type Layout struct {
	Lang string
	Path string
	Site Site
	SEO  seo.Meta
	// JSONLD blocks, already marshalled.
	JSONLD      []template.JS
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	Year        int
}

func newLayout(site Site, lang, path string) Layout {
	return Layout{
		Lang: lang,
		Path: path,
		Site: site,
		Nav:  nav.Build(path, site.BasePath),
		Year: time.Now().Year(),
	}
}

// PageData is a generic view model for simple pages such as the 404 page.
type PageData struct {
	Layout
	Title   string
	Message string
}

// BuildNotFoundData is the view model of the "machine not found" page.
func BuildNotFoundData(site Site, lang, path string) PageData {
	d := PageData{
		Layout:  newLayout(site, lang, path),
		Title:   "Máquina no encontrada",
		Message: "El equipo que buscas no existe o ya no está en nuestra flota.",
	}
	d.SEO = seo.Meta{Title: d.Title + " | " + site.Name, NoIndex: true}
	return d
}

// OptionView is a select option with its selected state.
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// FormView is the contact form state.
type FormView struct {
	Values  quote.FormData
	Error   string
	Options []OptionView
	// Origin is the slug of the detail page the form was posted from.
	Origin string
}

// NewFormView builds the form with values prefilled. An equipment value not
// among the generic options (a machine name) is offered as its own option.
func NewFormView(values quote.FormData, errMsg string) FormView {
	opts := make([]OptionView, 0, len(quote.EquipmentOptions)+1)
	known := false
	for _, o := range quote.EquipmentOptions {
		if o.Value == values.Equipment {
			known = true
		}
	}
	if values.Equipment != "" && !known {
		opts = append(opts, OptionView{Value: values.Equipment, Label: values.Equipment, Selected: true})
	}
	for _, o := range quote.EquipmentOptions {
		opts = append(opts, OptionView{Value: o.Value, Label: o.Label, Selected: o.Value == values.Equipment})
	}
	return FormView{Values: values, Error: errMsg, Options: opts}
}

// FormPartial is the view model of the contact form fragment swapped in by htmx.
type FormPartial struct {
	Lang string
	Site Site
	Form FormView
}
