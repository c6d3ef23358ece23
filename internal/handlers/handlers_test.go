package handlers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"julmar.cl/web/internal/catalog"
	"julmar.cl/web/internal/cms"
	"julmar.cl/web/internal/quote"
)

var testSite = Site{
	Name:          "Maquinarias Julmar SpA",
	BaseURL:       "https://julmar.cl",
	BasePath:      "/flota",
	WhatsAppPhone: "56931052727",
	Email:         "jgalvez@julmarspa.com",
}

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Machine{
		{ID: 1, Name: "Excavadora CAT 320", Category: catalog.CategoryExcavators, Image: "/machinery/cat320.webp"},
		{ID: 2, Name: "Camión Aljibe 10.000 L", Category: catalog.CategoryWaterTrucks, Image: "/machinery/aljibe.webp",
			Gallery: []string{"/machinery/aljibe-1.webp", "/machinery/aljibe-2.webp"}, Capacity: "10.000 Litros"},
	})
}

func TestSiteHelpers(t *testing.T) {
	assert.Equal(t, "https://julmar.cl/", testSite.Abs("/"))
	assert.Equal(t, "https://julmar.cl/flota/x", testSite.Abs("flota/x"))
	assert.Equal(t, "+56 9 3105 2727", testSite.PhoneDisplay())
	assert.Equal(t, "tel:+56931052727", testSite.TelHref())
	assert.True(t, strings.HasPrefix(testSite.WhatsAppHref(), "https://wa.me/56931052727?text=Hola%2C"))
}

func TestBuildHomeDataFilters(t *testing.T) {
	d := BuildHomeData(HomeInput{Site: testSite, Lang: "es", Path: "/", Catalog: testCatalog()})
	assert.Equal(t, catalog.AllCategories, d.Filter)
	require.Len(t, d.Machines, 2)
	assert.Equal(t, "/flota/excavadora-cat-320", d.Machines[0].Href)
	assert.Equal(t, "/flota/excavadora-cat-320#contacto", d.Machines[0].QuoteHref)
	require.Len(t, d.Categories, 3)
	assert.True(t, d.Categories[0].Active)
	assert.Equal(t, "/?categoria=Camiones+Aljibe#flota", d.Categories[2].Href)
	assert.Equal(t, "https://julmar.cl/", d.SEO.Canonical)
	require.Len(t, d.JSONLD, 1)
	assert.Contains(t, string(d.JSONLD[0]), `"LocalBusiness"`)

	d = BuildHomeData(HomeInput{Site: testSite, Catalog: testCatalog(), Filter: "Camiones Aljibe"})
	require.Len(t, d.Machines, 1)
	assert.Equal(t, "Camión Aljibe 10.000 L", d.Machines[0].Machine.Name)
	assert.False(t, d.Categories[0].Active)
	assert.True(t, d.Categories[2].Active)
}

func TestBuildHomeDataDescribesBusinessFromAboutSection(t *testing.T) {
	d := BuildHomeData(HomeInput{
		Site:    testSite,
		Catalog: testCatalog(),
		Sections: []cms.Section{
			{Slug: "servicios", Excerpt: "Arriendo y transporte."},
			{Slug: "nosotros", Excerpt: "Empresa familiar de la IV Región."},
		},
	})
	require.Len(t, d.JSONLD, 1)

	var biz map[string]any
	require.NoError(t, json.Unmarshal([]byte(d.JSONLD[0]), &biz))
	assert.Equal(t, "Empresa familiar de la IV Región.", biz["description"])
}

func TestBuildMachineData(t *testing.T) {
	m, ok := testCatalog().FindBySlug("camin-aljibe-10000-l")
	require.True(t, ok)

	d := BuildMachineData(testSite, "es", "/flota/camin-aljibe-10000-l", m, NewFormView(quote.FormData{}, ""))
	assert.Equal(t, "https://julmar.cl/flota/camin-aljibe-10000-l", d.SEO.Canonical)
	assert.Equal(t, "Camión Aljibe 10.000 L | Arriendo en Coquimbo - Julmar SpA", d.SEO.Title)
	assert.Equal(t, []string{"/machinery/aljibe-1.webp", "/machinery/aljibe-2.webp"}, d.Images)
	assert.Equal(t, quote.WhatsAppLink("56931052727", "Hola, me interesa arrendar la Camión Aljibe 10.000 L"), d.QuickWhatsApp)
	require.Len(t, d.Breadcrumbs, 3)
	assert.True(t, d.Breadcrumbs[2].Active)

	assert.Equal(t, "Camión Aljibe 10.000 L", d.Form.Values.Equipment)
	assert.Equal(t, "camin-aljibe-10000-l", d.Form.Origin)
	require.NotEmpty(t, d.Form.Options)
	assert.Equal(t, OptionView{Value: m.Name, Label: m.Name, Selected: true}, d.Form.Options[0])

	require.Len(t, d.JSONLD, 2)
	var product map[string]any
	require.NoError(t, json.Unmarshal([]byte(d.JSONLD[0]), &product))
	assert.Equal(t, "Camiones Aljibe", product["brand"].(map[string]any)["name"])
	assert.Len(t, product["image"], 3)
}

func TestNewFormViewSelectsKnownOption(t *testing.T) {
	f := NewFormView(quote.FormData{Equipment: "Excavadora"}, "")
	require.Len(t, f.Options, len(quote.EquipmentOptions))
	assert.True(t, f.Options[0].Selected)

	f = NewFormView(quote.FormData{}, quote.ValidationMessage)
	assert.Equal(t, quote.ValidationMessage, f.Error)
	for _, o := range f.Options {
		assert.False(t, o.Selected)
	}
}

func TestBuildNotFoundData(t *testing.T) {
	d := BuildNotFoundData(testSite, "es", "/flota/nope")
	assert.True(t, d.SEO.NoIndex)
	assert.Equal(t, "Máquina no encontrada", d.Title)
}
