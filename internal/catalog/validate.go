package catalog

import (
	"errors"
	"fmt"
	"strings"
)

const imagePrefix = "/machinery/"

// Validate checks the integrity rules the site relies on: unique IDs, a name and
// a known category on every machine, image paths under /machinery/, and names
// that stay unique once slugified. All violations are returned together; each
// wraps ErrInvalid.
func (c *Catalog) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil catalog", ErrInvalid)
	}
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	ids := make(map[int]string, len(c.machines))
	slugs := make(map[string]string, len(c.machines))
	for i, m := range c.machines {
		label := fmt.Sprintf("machine #%d (id %d)", i+1, m.ID)
		if prev, ok := ids[m.ID]; ok {
			fail("%s: duplicate id, already used by %q", label, prev)
		} else {
			ids[m.ID] = m.Name
		}
		if strings.TrimSpace(m.Name) == "" {
			fail("%s: name is required", label)
		}
		if strings.TrimSpace(string(m.Category)) == "" {
			fail("%s: category is required", label)
		} else if !m.Category.Valid() {
			fail("%s: unknown category %q", label, m.Category)
		}
		if !strings.HasPrefix(m.Image, imagePrefix) {
			fail("%s: image %q must start with %s", label, m.Image, imagePrefix)
		}
		for _, img := range m.Gallery {
			if !strings.HasPrefix(img, imagePrefix) {
				fail("%s: gallery image %q must start with %s", label, img, imagePrefix)
			}
		}
		s := c.slugs[i]
		if s == "" {
			if strings.TrimSpace(m.Name) != "" {
				fail("%s: name %q produces an empty slug", label, m.Name)
			}
			continue
		}
		if prev, ok := slugs[s]; ok {
			fail("%s: slug %q collides with %q", label, s, prev)
		} else {
			slugs[s] = m.Name
		}
	}
	return errors.Join(errs...)
}
