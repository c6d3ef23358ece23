// Package catalog holds the rental fleet and resolves machines by slug.
//
// A Catalog is built once at startup and never mutated afterwards, so it is
// safe to share between request goroutines without locking.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"julmar.cl/web/data"
	"julmar.cl/web/internal/slug"
)

// AllCategories is the fleet filter value that disables category filtering.
const AllCategories = "Todos"

// DefaultBasePath is the route prefix of machine detail pages.
const DefaultBasePath = "/flota"

// ErrInvalid marks catalog data that breaks an integrity rule.
var ErrInvalid = errors.New("catalog: invalid data")

// Catalog is an immutable, ordered list of machines.
type Catalog struct {
	machines []Machine
	slugs    []string
}

type document struct {
	Machines []Machine `yaml:"machines"`
}

// New builds a catalog from machines, keeping their order. The slice is copied.
func New(machines []Machine) *Catalog {
	c := &Catalog{
		machines: make([]Machine, len(machines)),
		slugs:    make([]string, len(machines)),
	}
	copy(c.machines, machines)
	for i, m := range c.machines {
		c.slugs[i] = slug.Make(m.Name)
	}
	return c
}

// Parse decodes a YAML catalog document of the form `machines: [...]`.
func Parse(raw []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return New(doc.Machines), nil
}

// Load reads a catalog file. An empty path selects the catalog embedded in the binary.
func Load(file string) (*Catalog, error) {
	if strings.TrimSpace(file) == "" {
		return Parse(data.Machines())
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", file, err)
	}
	return Parse(raw)
}

// Len returns the number of machines.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.machines)
}

// All returns a copy of the machines in catalog order.
func (c *Catalog) All() []Machine {
	if c == nil {
		return nil
	}
	out := make([]Machine, len(c.machines))
	copy(out, c.machines)
	return out
}

// FindBySlug scans the catalog in order and returns the first machine whose
// slugified name equals s. The comparison is exact. When the unique-slug rule
// is violated the earliest machine wins.
func (c *Catalog) FindBySlug(s string) (Machine, bool) {
	if c == nil {
		return Machine{}, false
	}
	for i, candidate := range c.slugs {
		if candidate == s {
			return c.machines[i], true
		}
	}
	return Machine{}, false
}

// Categories returns the categories present in the catalog in order of first appearance.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	seen := make(map[Category]struct{}, len(KnownCategories))
	out := make([]Category, 0, len(KnownCategories))
	for _, m := range c.machines {
		if _, ok := seen[m.Category]; ok {
			continue
		}
		seen[m.Category] = struct{}{}
		out = append(out, m.Category)
	}
	return out
}

// ByCategory filters machines by category. An empty filter or AllCategories
// returns the whole fleet.
func (c *Catalog) ByCategory(filter string) []Machine {
	filter = strings.TrimSpace(filter)
	if filter == "" || filter == AllCategories {
		return c.All()
	}
	var out []Machine
	if c == nil {
		return out
	}
	for _, m := range c.machines {
		if string(m.Category) == filter {
			out = append(out, m)
		}
	}
	return out
}

// Slug returns the canonical slug of m.
func Slug(m Machine) string {
	return slug.Make(m.Name)
}

// Path returns the detail page path of m below base, e.g. "/flota/excavadora-cat-320".
func Path(base string, m Machine) string {
	if base == "" {
		base = DefaultBasePath
	}
	return path.Join("/", base, Slug(m))
}
