package handlers

import (
	"julmar.cl/web/internal/catalog"
	"julmar.cl/web/internal/nav"
	"julmar.cl/web/internal/quote"
	"julmar.cl/web/internal/seo"
)

// MachineData is the view model for a machine detail page.
type MachineData struct {
	Layout
	Machine       catalog.Machine
	Images        []string
	QuickWhatsApp string
	Form          FormView
}

// BuildMachineData constructs the detail page of m. The contact form
// preselects the machine unless the visitor already chose something.
func BuildMachineData(site Site, lang, path string, m catalog.Machine, form FormView) MachineData {
	href := site.MachinePath(m)
	if form.Values.Equipment == "" && form.Error == "" {
		v := form.Values
		v.Equipment = m.Name
		form = NewFormView(v, "")
	}
	form.Origin = catalog.Slug(m)
	d := MachineData{
		Layout:        newLayout(site, lang, path),
		Machine:       m,
		Images:        m.Images(),
		QuickWhatsApp: quote.WhatsAppLink(site.WhatsAppPhone, quote.InterestMessage(m.Name)),
		Form:          form,
	}
	d.Breadcrumbs = nav.Breadcrumbs(href, m.Name)

	canonical := site.Abs(href)
	absImages := make([]string, 0, len(d.Images)+1)
	if m.Image != "" {
		absImages = append(absImages, site.Abs(m.Image))
	}
	for _, img := range m.Gallery {
		absImages = append(absImages, site.Abs(img))
	}
	d.SEO = seo.Meta{
		Title:       m.Name + " | Arriendo en Coquimbo - Julmar SpA",
		Description: seo.Describe("Arriendo de "+m.Name+" en Coquimbo y La Serena", m.Capacity, m.Description),
		Canonical:   canonical,
		OG: seo.OpenGraph{
			Type:        "product",
			URL:         canonical,
			Title:       m.Name + " | Maquinarias Julmar",
			Description: seo.Describe(m.Capacity, "Disponible para arriendo inmediato en IV Región"),
		},
	}
	if m.Image != "" {
		d.SEO.OG.Image = site.Abs(m.Image)
	}
	d.JSONLD = append(d.JSONLD,
		seo.JSON(seo.Product(seo.RentalProduct{
			Name:        m.Name,
			Description: m.Description,
			URL:         canonical,
			Images:      absImages,
			Brand:       string(m.Category),
		})),
		seo.JSON(seo.BreadcrumbList([]seo.BreadcrumbItem{
			{Name: "Inicio", Item: site.Abs("/")},
			{Name: "Flota", Item: site.Abs("/#flota")},
			{Name: m.Name, Item: canonical},
		})),
	)
	return d
}
