// Package sitemap renders sitemap.xml for the landing page sections and every
// machine detail page.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"julmar.cl/web/internal/catalog"
)

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// DefaultStaticPages are the landing page and its section anchors.
var DefaultStaticPages = []string{"", "/#flota", "/#servicios", "/#nosotros", "/#contacto"}

// Options controls which URLs are emitted.
type Options struct {
	BaseURL     string   // e.g. https://julmar.cl
	BasePath    string   // machine detail prefix, defaults to /flota
	StaticPages []string // defaults to DefaultStaticPages
}

// Entry is one <url> element.
type Entry struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []Entry  `xml:"url"`
}

// Entries lists the static pages first, then one entry per machine in catalog order.
func Entries(opts Options, c *catalog.Catalog) []Entry {
	base := strings.TrimRight(opts.BaseURL, "/")
	static := opts.StaticPages
	if static == nil {
		static = DefaultStaticPages
	}
	out := make([]Entry, 0, len(static)+c.Len())
	for _, page := range static {
		priority := "0.8"
		if page == "" {
			priority = "1.0"
		}
		out = append(out, Entry{Loc: base + page, ChangeFreq: "weekly", Priority: priority})
	}
	for _, m := range c.All() {
		out = append(out, Entry{
			Loc:        base + catalog.Path(opts.BasePath, m),
			ChangeFreq: "monthly",
			Priority:   "0.9",
		})
	}
	return out
}

// Write encodes entries as an indented sitemap document.
func Write(w io.Writer, entries []Entry) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("sitemap: write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(urlset{XMLNS: namespace, URLs: entries}); err != nil {
		return fmt.Errorf("sitemap: encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("sitemap: write trailer: %w", err)
	}
	return nil
}

// Generate is Entries followed by Write.
func Generate(w io.Writer, opts Options, c *catalog.Catalog) error {
	return Write(w, Entries(opts, c))
}
