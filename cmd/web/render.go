package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"julmar.cl/web/internal/format"
	"julmar.cl/web/internal/i18n"
	"julmar.cl/web/internal/observability"
)

// renderer owns the parsed page templates. Every file under pages/ becomes
// its own template set cloned from the shared layouts and partials.
type renderer struct {
	dir    string
	dev    bool
	bundle *i18n.Bundle

	mu    sync.RWMutex
	pages map[string]*template.Template
}

func newRenderer(dir string, dev bool, bundle *i18n.Bundle) (*renderer, error) {
	rd := &renderer{dir: dir, dev: dev, bundle: bundle}
	pages, err := rd.parse()
	if err != nil {
		return nil, err
	}
	rd.pages = pages
	return rd, nil
}

func (rd *renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"t": func(lang, key string) string {
			if rd.bundle == nil {
				return key
			}
			return rd.bundle.T(lang, key)
		},
		"langs": func() []string {
			if rd.bundle == nil {
				return nil
			}
			return rd.bundle.Supported()
		},
		// tel: is not among html/template's safe schemes
		"telURL": func(raw string) template.URL { return template.URL(format.TelHref(raw)) },
		"inc":    func(i int) int { return i + 1 },
	}
}

func (rd *renderer) parse() (map[string]*template.Template, error) {
	var shared, pages []string
	if err := filepath.WalkDir(rd.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) == "pages" {
			pages = append(pages, path)
		} else {
			shared = append(shared, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(shared) == 0 || len(pages) == 0 {
		return nil, fmt.Errorf("no templates found under %s", rd.dir)
	}
	base, err := template.New("_root").Funcs(rd.funcs()).ParseFiles(shared...)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(p); err != nil {
			return nil, err
		}
		out[strings.TrimSuffix(filepath.Base(p), ".tmpl")] = clone
	}
	return out, nil
}

func (rd *renderer) lookup(page string) (*template.Template, error) {
	if rd.dev {
		pages, err := rd.parse()
		if err != nil {
			return nil, fmt.Errorf("template parse error: %w", err)
		}
		rd.mu.Lock()
		rd.pages = pages
		rd.mu.Unlock()
	}
	rd.mu.RLock()
	defer rd.mu.RUnlock()
	t, ok := rd.pages[page]
	if !ok {
		return nil, fmt.Errorf("template %q not found", page)
	}
	return t, nil
}

// render executes the named block of a page into a buffer so a failing
// template never leaves a half-written response. In dev mode templates are
// reparsed on each request.
func (rd *renderer) render(w http.ResponseWriter, r *http.Request, page, block string, status int, data any) {
	logger := observability.FromContext(r.Context())
	t, err := rd.lookup(page)
	if err != nil {
		logger.Error("template lookup", zap.String("page", page), zap.Error(err))
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, block, data); err != nil {
		logger.Error("template exec", zap.String("page", page), zap.String("block", block), zap.Error(err))
		http.Error(w, "template exec error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
