package nav

import (
	"strings"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/#flota"
	LabelKey string // i18n key, e.g. "nav.fleet"
	// Section is the path prefix whose pages highlight this item.
	Section string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition. Every entry but Inicio is an
// anchor on the landing page.
var Main = []Item{
	{Path: "/", LabelKey: "nav.home"},
	{Path: "/#flota", LabelKey: "nav.fleet", Section: "/flota"},
	{Path: "/#servicios", LabelKey: "nav.services"},
	{Path: "/#nosotros", LabelKey: "nav.about"},
	{Path: "/#contacto", LabelKey: "nav.contact"},
}

// Build renders navigation items with active state given the current path.
// A non-empty fleetPath replaces the default "/flota" section, so detail pages
// under a custom prefix still highlight Flota.
func Build(currentPath, fleetPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		if it.Section != "" && fleetPath != "" {
			it.Section = fleetPath
		}
		items = append(items, RenderedItem{
			Href:     it.Path,
			LabelKey: it.LabelKey,
			Active:   isActive(it, currentPath),
		})
	}
	return items
}

func isActive(it Item, currentPath string) bool {
	if it.Path == "/" {
		return currentPath == "/"
	}
	if it.Section == "" {
		return false
	}
	// match exact or prefix boundary: "/flota" or "/flota/..."
	return currentPath == it.Section || strings.HasPrefix(currentPath, it.Section+"/")
}

// Breadcrumbs builds Inicio → Flota → machine for a detail page.
func Breadcrumbs(machineHref, machineName string) []Crumb {
	return []Crumb{
		{Href: "/", LabelKey: "nav.home"},
		{Href: "/#flota", LabelKey: "nav.fleet"},
		{Href: machineHref, Label: machineName, Active: true},
	}
}
