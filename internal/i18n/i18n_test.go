package i18n

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle(t *testing.T) *Bundle {
	t.Helper()
	fsys := fstest.MapFS{
		"es.yaml": {Data: []byte("nav.home: Inicio\nnav.fleet: Flota\nonly.es: Solo\n")},
		"en.yaml": {Data: []byte("nav.home: Home\nnav.fleet: Fleet\n")},
	}
	b, err := Load(fsys, "es", []string{"es", "en"})
	require.NoError(t, err)
	return b
}

func TestResolveHonorsQValues(t *testing.T) {
	b := testBundle(t)
	assert.Equal(t, "en", b.Resolve("es;q=0.8, en;q=0.9"))
	assert.Equal(t, "es", b.Resolve("es-CL,es;q=0.9,en;q=0.8"))
	assert.Equal(t, "es", b.Resolve("fr, de"))
	assert.Equal(t, "es", b.Resolve(""))
	assert.Equal(t, "es", b.Resolve("en;q=0"), "q=0 means not acceptable")
	assert.Equal(t, "en", b.Resolve("EN-gb"))
	assert.Equal(t, "en", b.Resolve("*, en;q=0.5"), "wildcard does not imply a language")
}

func TestTranslateFallsBack(t *testing.T) {
	b := testBundle(t)
	assert.Equal(t, "Fleet", b.T("en", "nav.fleet"))
	assert.Equal(t, "Solo", b.T("en", "only.es"))
	assert.Equal(t, "missing.key", b.T("en", "missing.key"))
	assert.Equal(t, "Inicio", b.T("", "nav.home"))
}

func TestNormalize(t *testing.T) {
	b := testBundle(t)
	assert.Equal(t, "en", b.Normalize("EN-us"))
	assert.Equal(t, "es", b.Normalize("es_CL"))
	assert.Equal(t, "es", b.Normalize("pt"))
	assert.Equal(t, []string{"en", "es"}, b.Supported())
}

func TestLoadRequiresFallback(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "es", []string{"es"})
	require.Error(t, err)

	b, err := Load(fstest.MapFS{"es.yaml": {Data: []byte("a: b\n")}}, "es", []string{"es", "en"})
	require.NoError(t, err)
	assert.Equal(t, "b", b.T("en", "a"))
}

func TestShippedLocalesShareKeys(t *testing.T) {
	b, err := Load(os.DirFS("../../locales"), "es", []string{"es", "en"})
	require.NoError(t, err)
	require.Contains(t, b.dict, "en")
	for key := range b.dict["es"] {
		assert.Containsf(t, b.dict["en"], key, "en locale missing %q", key)
	}
	for key := range b.dict["en"] {
		assert.Containsf(t, b.dict["es"], key, "es locale missing %q", key)
	}
}
