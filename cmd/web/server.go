package main

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"julmar.cl/web/internal/catalog"
	"julmar.cl/web/internal/cms"
	"julmar.cl/web/internal/handlers"
	"julmar.cl/web/internal/i18n"
	"julmar.cl/web/internal/metrics"
	mw "julmar.cl/web/internal/middleware"
	"julmar.cl/web/internal/observability"
	"julmar.cl/web/internal/quote"
	"julmar.cl/web/internal/sitemap"
)

// landingSections are the markdown sections rendered on the landing page.
var landingSections = []string{"servicios", "nosotros"}

const maxFormBytes = 64 << 10

type server struct {
	site      handlers.Site
	publicDir string
	catalog   *catalog.Catalog
	bundle    *i18n.Bundle
	content   *cms.Store
	views     *renderer
	metrics   *metrics.Recorder
	logger    *zap.Logger
	now       func() time.Time
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Locale(s.bundle))
	r.Use(mw.Logger(s.logger, s.metrics))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", s.metrics.Handler())

	r.Handle("/assets/*", http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(s.publicDir, "assets"), "/assets")))
	r.Handle("/machinery/*", http.StripPrefix("/machinery", mw.AssetsWithCache(filepath.Join(s.publicDir, "machinery"), "/machinery")))

	r.Get("/", s.home)
	r.Get("/sitemap.xml", s.sitemap)
	r.Get("/robots.txt", s.robots)
	r.Route(s.site.BasePath, func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/#flota", http.StatusMovedPermanently)
		})
		r.Get("/{slug}", s.machine)
	})
	r.With(mw.LimitBody(maxFormBytes)).Post("/cotizar", s.submitQuote)

	r.NotFound(s.notFound)
	return r
}

func (s *server) home(w http.ResponseWriter, r *http.Request) {
	s.renderHome(w, r, http.StatusOK, handlers.NewFormView(quote.FormData{}, ""))
}

func (s *server) renderHome(w http.ResponseWriter, r *http.Request, status int, form handlers.FormView) {
	lang := mw.Lang(r)
	sections, err := s.content.Sections(r.Context(), lang, landingSections...)
	if err != nil {
		// the landing page still works without the long-form sections
		observability.FromContext(r.Context()).Warn("load content sections", zap.Error(err))
	}
	vm := handlers.BuildHomeData(handlers.HomeInput{
		Site:     s.site,
		Lang:     lang,
		Path:     "/",
		Catalog:  s.catalog,
		Filter:   r.URL.Query().Get("categoria"),
		Sections: sections,
		Form:     form,
	})
	s.views.render(w, r, "home", "base", status, vm)
}

func (s *server) machine(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	m, ok := s.catalog.FindBySlug(slug)
	if !ok {
		s.metrics.MachineNotFound()
		s.notFound(w, r)
		return
	}
	s.metrics.MachineView(slug)
	s.renderMachine(w, r, http.StatusOK, m, handlers.NewFormView(quote.FormData{}, ""))
}

func (s *server) renderMachine(w http.ResponseWriter, r *http.Request, status int, m catalog.Machine, form handlers.FormView) {
	vm := handlers.BuildMachineData(s.site, mw.Lang(r), s.site.MachinePath(m), m, form)
	s.views.render(w, r, "machine", "base", status, vm)
}

func (s *server) notFound(w http.ResponseWriter, r *http.Request) {
	vm := handlers.BuildNotFoundData(s.site, mw.Lang(r), r.URL.Path)
	s.views.render(w, r, "notfound", "base", http.StatusNotFound, vm)
}

// submitQuote turns the contact form into a WhatsApp or mailto redirect.
// Nothing is stored; the reference only ties the log line to the redirect.
func (s *server) submitQuote(w http.ResponseWriter, r *http.Request) {
	logger := observability.FromContext(r.Context())
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := quote.FromValues(r.PostForm)
	origin := r.PostForm.Get("origen")

	ch, err := quote.ParseChannel(r.PostForm.Get("canal"))
	if err != nil {
		http.Error(w, "canal inválido", http.StatusBadRequest)
		return
	}

	sub, err := quote.Submit(form, ch, s.site.Destinations(), s.now(), nil)
	if err != nil {
		if errors.Is(err, quote.ErrMissingName) || errors.Is(err, quote.ErrMissingPhone) {
			s.metrics.QuoteRejected()
			s.rejectQuote(w, r, form, origin)
			return
		}
		logger.Error("build quote", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.metrics.Quote(string(sub.Channel))
	logger.Info("quote request",
		zap.String("reference", sub.Reference),
		zap.String("channel", string(sub.Channel)),
		zap.String("equipment", form.Equipment),
		zap.String("origin", origin),
	)
	w.Header().Set("X-Quote-Reference", sub.Reference)
	mw.Redirect(w, r, sub.Link)
}

func (s *server) rejectQuote(w http.ResponseWriter, r *http.Request, form quote.FormData, origin string) {
	view := handlers.NewFormView(form, quote.ValidationMessage)
	m, fromMachine := s.catalog.FindBySlug(origin)
	if fromMachine {
		view.Origin = origin
	}
	if mw.IsHTMX(r.Context()) {
		partial := handlers.FormPartial{Lang: mw.Lang(r), Site: s.site, Form: view}
		s.views.render(w, r, "home", "contact_form", http.StatusUnprocessableEntity, partial)
		return
	}
	if fromMachine {
		s.renderMachine(w, r, http.StatusUnprocessableEntity, m, view)
		return
	}
	s.renderHome(w, r, http.StatusUnprocessableEntity, view)
}

func (s *server) sitemap(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	opts := sitemap.Options{BaseURL: s.site.BaseURL, BasePath: s.site.BasePath}
	if err := sitemap.Generate(&buf, opts, s.catalog); err != nil {
		observability.FromContext(r.Context()).Error("sitemap", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *server) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintf(w, "User-agent: *\nAllow: /\nDisallow: /cotizar\n\nSitemap: %s\n", s.site.Abs("/sitemap.xml"))
}
