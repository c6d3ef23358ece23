// Package cms renders the landing page's long-form sections from markdown
// files with YAML front matter.
package cms

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"julmar.cl/web/internal/seo"
)

// ErrNotFound is returned when no markdown file exists for a section in any
// candidate language.
var ErrNotFound = errors.New("cms: section not found")

const (
	defaultLang     = "es"
	defaultCacheTTL = 5 * time.Minute
)

// Section is a rendered content block such as "servicios" or "nosotros".
type Section struct {
	Slug    string
	Lang    string
	Title   string
	Kicker  string
	Summary string
	Order   int
	Items   []Item
	Body    template.HTML
	// Excerpt is the plain-text opening of Body, sized for a meta description.
	Excerpt string
}

// Item is a card listed by a section, e.g. one service line.
type Item struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

type frontMatter struct {
	Title   string `yaml:"title"`
	Kicker  string `yaml:"kicker"`
	Summary string `yaml:"summary"`
	Lang    string `yaml:"lang"`
	Order   int    `yaml:"order"`
	Items   []Item `yaml:"items"`
}

type cacheEntry struct {
	section Section
	expires time.Time
}

// Store reads sections from <lang>/<slug>.md inside fsys.
type Store struct {
	fsys     fs.FS
	fallback string
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	now      func() time.Time

	mu    sync.RWMutex
	ttl   time.Duration
	cache map[string]cacheEntry
}

// Option customises a Store.
type Option func(*Store)

// WithCacheTTL overrides how long rendered sections are kept. Zero disables caching.
func WithCacheTTL(d time.Duration) Option {
	return func(s *Store) {
		s.ttl = d
	}
}

// WithFallbackLang sets the language tried when the requested one has no file.
func WithFallbackLang(lang string) Option {
	return func(s *Store) {
		if lang = normalizeLang(lang); lang != "" {
			s.fallback = lang
		}
	}
}

// NewStore builds a Store over fsys.
func NewStore(fsys fs.FS, opts ...Option) *Store {
	s := &Store{
		fsys:     fsys,
		fallback: defaultLang,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM, extension.Typographer),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: newSectionPolicy(),
		now:    time.Now,
		ttl:    defaultCacheTTL,
		cache:  map[string]cacheEntry{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newSectionPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Section returns the rendered section, trying lang and then the fallback language.
func (s *Store) Section(ctx context.Context, slug, lang string) (Section, error) {
	if err := ctx.Err(); err != nil {
		return Section{}, err
	}
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Section{}, ErrNotFound
	}
	lang = normalizeLang(lang)

	key := lang + "|" + slug
	if sec, ok := s.cached(key); ok {
		return sec, nil
	}

	candidates := []string{lang}
	if lang != s.fallback {
		candidates = append(candidates, s.fallback)
	}
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		sec, err := s.read(slug, candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Section{}, err
		}
		s.store(key, sec)
		return cloneSection(sec), nil
	}
	return Section{}, ErrNotFound
}

// Sections returns every named section that exists, sorted by front matter order.
// Missing sections are skipped.
func (s *Store) Sections(ctx context.Context, lang string, slugs ...string) ([]Section, error) {
	out := make([]Section, 0, len(slugs))
	for _, slug := range slugs {
		sec, err := s.Section(ctx, slug, lang)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, sec)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (s *Store) read(slug, lang string) (Section, error) {
	file := path.Join(lang, slug+".md")
	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		return Section{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Section{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(body), &buf); err != nil {
		return Section{}, fmt.Errorf("cms: render %s: %w", file, err)
	}
	sec := Section{
		Slug:    slug,
		Lang:    firstNonEmpty(strings.TrimSpace(front.Lang), lang),
		Title:   strings.TrimSpace(front.Title),
		Kicker:  strings.TrimSpace(front.Kicker),
		Summary: strings.TrimSpace(front.Summary),
		Order:   front.Order,
		Items:   front.Items,
		// Sanitized by policy before being trusted as HTML.
		Body: template.HTML(strings.TrimSpace(s.policy.Sanitize(buf.String()))),
	}
	if sec.Title == "" {
		sec.Title = prettifySlug(slug)
	}
	sec.Excerpt = seo.Truncate(seo.PlainText(string(sec.Body)), seo.DescriptionLimit)
	return sec, nil
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func (s *Store) cached(key string) (Section, bool) {
	if s.ttl <= 0 {
		return Section{}, false
	}
	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()
	if !ok || s.now().After(entry.expires) {
		return Section{}, false
	}
	return cloneSection(entry.section), true
}

func (s *Store) store(key string, sec Section) {
	if s.ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{section: cloneSection(sec), expires: s.now().Add(s.ttl)}
}

func cloneSection(src Section) Section {
	cp := src
	if src.Items != nil {
		cp.Items = make([]Item, len(src.Items))
		copy(cp.Items, src.Items)
	}
	return cp
}

func prettifySlug(slug string) string {
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(strings.ToLower(slug)), "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "-_"); i != -1 {
		lang = lang[:i]
	}
	return lang
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
