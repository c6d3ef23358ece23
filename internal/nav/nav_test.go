package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMarksActiveSection(t *testing.T) {
	items := Build("/", "")
	require.Len(t, items, len(Main))
	assert.True(t, items[0].Active)
	for _, it := range items[1:] {
		assert.False(t, it.Active, it.Href)
	}

	items = Build("/flota/excavadora-cat-320", "/flota")
	assert.False(t, items[0].Active)
	assert.True(t, items[1].Active)
	assert.Equal(t, "/#flota", items[1].Href)

	assert.False(t, Build("/flotante", "")[1].Active)
	assert.True(t, Build("", "")[0].Active)
}

func TestBuildCustomFleetPath(t *testing.T) {
	items := Build("/equipos/excavadora-cat-320", "/equipos")
	assert.True(t, items[1].Active)
	assert.False(t, Build("/flota/excavadora-cat-320", "/equipos")[1].Active)
}

func TestBreadcrumbs(t *testing.T) {
	want := []Crumb{
		{Href: "/", LabelKey: "nav.home"},
		{Href: "/#flota", LabelKey: "nav.fleet"},
		{Href: "/flota/excavadora-cat-320", Label: "Excavadora CAT 320", Active: true},
	}
	got := Breadcrumbs("/flota/excavadora-cat-320", "Excavadora CAT 320")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Breadcrumbs() mismatch (-want +got):\n%s", diff)
	}
}
