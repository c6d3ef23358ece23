package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainText(t *testing.T) {
	in := `<h2>Servicios</h2>
<p>Arriendo de <strong>maquinaria</strong>&nbsp;pesada &amp; transporte.</p>
<script>alert("x")</script><style>p{}</style><br/>Fin`
	assert.Equal(t, "Servicios Arriendo de maquinaria pesada & transporte. Fin", PlainText(in))
	assert.Empty(t, PlainText(""))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", Truncate("  corto  ", 10))

	long := strings.Repeat("palabra ", 40)
	got := Truncate(long, DescriptionLimit)
	assert.LessOrEqual(t, utf8.RuneCountInString(got), DescriptionLimit)
	assert.True(t, strings.HasSuffix(got, "palabra…"))
}

func TestDescribe(t *testing.T) {
	got := Describe("Arriendo de Excavadora CAT 320 en Coquimbo y La Serena", "", "20 Toneladas.", "Ideal para minería")
	assert.Equal(t, "Arriendo de Excavadora CAT 320 en Coquimbo y La Serena. 20 Toneladas. Ideal para minería.", got)
}

func TestProductJSON(t *testing.T) {
	out := JSON(Product(RentalProduct{
		Name:        `Excavadora "CAT" 320`,
		Description: "</script><script>alert(1)</script>",
		URL:         "https://julmar.cl/flota/excavadora-cat-320",
		Images:      []string{"https://julmar.cl/machinery/a.webp"},
		Brand:       "Excavadoras",
	}))
	assert.NotContains(t, string(out), "</script>", "json must be script-safe")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "Product", doc["@type"])
	assert.Equal(t, `Excavadora "CAT" 320`, doc["name"])
	offer := doc["offers"].(map[string]any)
	assert.Equal(t, "CLP", offer["priceCurrency"])
	assert.Equal(t, "0", offer["price"])
	assert.Equal(t, "https://schema.org/InStock", offer["availability"])
	assert.Equal(t, map[string]any{"@type": "Brand", "name": "Excavadoras"}, doc["brand"])
}

func TestLocalBusiness(t *testing.T) {
	m := LocalBusiness(Business{
		Name:      "Maquinarias Julmar SpA",
		Telephone: "+56931052727",
		Locality:  "Coquimbo",
		Country:   "CL",
		Opens:     "08:00",
		Closes:    "18:00",
		Days:      []string{"Monday"},
	})
	assert.Equal(t, "LocalBusiness", m["@type"])
	assert.Equal(t, "Coquimbo", m["address"].(map[string]any)["addressLocality"])
	assert.Contains(t, m, "openingHoursSpecification")
	assert.NotContains(t, m, "email")
}

func TestBreadcrumbList(t *testing.T) {
	m := BreadcrumbList([]BreadcrumbItem{{Name: "Inicio", Item: "https://julmar.cl/"}, {Name: "Flota", Item: "https://julmar.cl/#flota"}})
	items := m["itemListElement"].([]map[string]any)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[1]["position"])
}
