package seo

import (
	"encoding/json"
	"html/template"
)

const schemaContext = "https://schema.org"

// JSON marshals v for a <script type="application/ld+json"> block. It
// returns an empty string on error.
func JSON(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return template.JS(b)
}

// Business describes the company for LocalBusiness markup.
type Business struct {
	Name        string
	Description string
	URL         string
	Logo        string
	Telephone   string
	Email       string
	Locality    string
	Region      string
	Country     string
	PriceRange  string
	Opens       string
	Closes      string
	Days        []string
}

// LocalBusiness returns the schema.org LocalBusiness payload of the landing page.
func LocalBusiness(b Business) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "LocalBusiness",
		"name":     b.Name,
	}
	if b.Description != "" {
		m["description"] = b.Description
	}
	if b.Logo != "" {
		m["image"] = b.Logo
	}
	if b.Telephone != "" {
		m["telephone"] = b.Telephone
	}
	if b.Email != "" {
		m["email"] = b.Email
	}
	if b.Locality != "" || b.Region != "" || b.Country != "" {
		m["address"] = map[string]any{
			"@type":           "PostalAddress",
			"addressLocality": b.Locality,
			"addressRegion":   b.Region,
			"addressCountry":  b.Country,
		}
	}
	if b.URL != "" {
		m["url"] = b.URL
	}
	if b.PriceRange != "" {
		m["priceRange"] = b.PriceRange
	}
	if b.Opens != "" && b.Closes != "" {
		m["openingHoursSpecification"] = map[string]any{
			"@type":     "OpeningHoursSpecification",
			"dayOfWeek": b.Days,
			"opens":     b.Opens,
			"closes":    b.Closes,
		}
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// RentalProduct describes a machine for Product markup.
type RentalProduct struct {
	Name        string
	Description string
	URL         string
	Images      []string
	Brand       string
	Currency    string
}

// Product returns a Product payload carrying an in-stock Offer. Rental prices
// are quoted on request, so the offer price is always "0".
func Product(p RentalProduct) map[string]any {
	currency := p.Currency
	if currency == "" {
		currency = "CLP"
	}
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "Product",
		"name":        p.Name,
		"description": p.Description,
		"offers": map[string]any{
			"@type":         "Offer",
			"url":           p.URL,
			"priceCurrency": currency,
			"availability":  "https://schema.org/InStock",
			"price":         "0",
		},
	}
	if len(p.Images) > 0 {
		m["image"] = p.Images
	}
	if p.Brand != "" {
		m["brand"] = map[string]any{"@type": "Brand", "name": p.Brand}
	}
	return m
}
