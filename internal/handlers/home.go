package handlers

import (
	"net/url"

	"julmar.cl/web/internal/catalog"
	"julmar.cl/web/internal/cms"
	"julmar.cl/web/internal/seo"
)

// aboutSection is the content section whose text describes the business.
const aboutSection = "nosotros"

// Clients are the companies listed under "Confían en Nuestra Calidad".
var Clients = []string{
	"UNITED",
	"HY TECH DRILLING",
	"VIVELO LTDA.",
	"ISASER SpA",
	"TOLEDO GIANZO",
	"COMERCIAL TRAGAL",
	"CMP",
	"WOLF DRILLING",
}

// CategoryTab is one fleet filter button.
type CategoryTab struct {
	Label  string
	Href   string
	Active bool
}

// MachineCard is a fleet grid entry.
type MachineCard struct {
	Machine   catalog.Machine
	Href      string
	QuoteHref string
}

// HomeData is the view model for the landing page.
type HomeData struct {
	Layout
	Clients    []string
	Categories []CategoryTab
	Filter     string
	Machines   []MachineCard
	Sections   []cms.Section
	Form       FormView
}

// HomeInput collects what the landing page is built from.
type HomeInput struct {
	Site     Site
	Lang     string
	Path     string
	Catalog  *catalog.Catalog
	Filter   string
	Sections []cms.Section
	Form     FormView
}

// BuildHomeData constructs the view model for the landing page.
func BuildHomeData(in HomeInput) HomeData {
	filter := in.Filter
	if filter == "" {
		filter = catalog.AllCategories
	}
	d := HomeData{
		Layout:   newLayout(in.Site, in.Lang, in.Path),
		Clients:  Clients,
		Filter:   filter,
		Sections: in.Sections,
		Form:     in.Form,
	}
	d.Categories = categoryTabs(in.Catalog, filter)
	for _, m := range in.Catalog.ByCategory(filter) {
		href := in.Site.MachinePath(m)
		d.Machines = append(d.Machines, MachineCard{Machine: m, Href: href, QuoteHref: href + "#contacto"})
	}

	site := in.Site
	d.SEO = seo.Meta{
		Title:       site.Name + " | Arriendo de Maquinaria Pesada IV Región",
		Description: "Especialistas en arriendo de maquinaria pesada, transporte de agua y servicios para minería, vialidad y agropecuario en la IV Región (Coquimbo, La Serena).",
		Keywords:    "maquinaria pesada, arriendo retroexcavadora, camiones aljibe, movimiento de tierra, minería, vialidad, agropecuario, la serena, coquimbo, julmar",
		Canonical:   site.Abs("/"),
		OG: seo.OpenGraph{
			Type:        "website",
			URL:         site.Abs("/"),
			Title:       site.Name + " - Soluciones Integrales en IV Región",
			Description: "Flota moderna y servicio experto para faenas mineras, viales y agrícolas. Cotiza con nosotros.",
			Image:       site.Abs("/assets/hero-bg-final.webp"),
		},
	}
	biz := seo.Business{
		Name:       site.Name,
		URL:        site.Abs("/"),
		Logo:       site.Abs("/assets/logo-julmar.webp"),
		Telephone:  "+" + site.WhatsAppPhone,
		Email:      site.Email,
		Locality:   "Coquimbo",
		Region:     "Coquimbo",
		Country:    "CL",
		PriceRange: "$$$",
		Opens:      "08:00",
		Closes:     "18:00",
		Days:       []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
	}
	for _, sec := range in.Sections {
		if sec.Slug == aboutSection {
			biz.Description = sec.Excerpt
		}
	}
	d.JSONLD = append(d.JSONLD, seo.JSON(seo.LocalBusiness(biz)))
	return d
}

func categoryTabs(c *catalog.Catalog, active string) []CategoryTab {
	cats := c.Categories()
	tabs := make([]CategoryTab, 0, len(cats)+1)
	tabs = append(tabs, CategoryTab{Label: catalog.AllCategories, Href: "/#flota", Active: active == catalog.AllCategories})
	for _, cat := range cats {
		tabs = append(tabs, CategoryTab{
			Label:  string(cat),
			Href:   "/?categoria=" + url.QueryEscape(string(cat)) + "#flota",
			Active: string(cat) == active,
		})
	}
	return tabs
}
