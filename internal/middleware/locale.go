package middleware

import (
	"net/http"
	"strings"
	"time"

	"julmar.cl/web/internal/i18n"
)

const langCookieName = "hl"

// Locale resolves the UI language from ?hl=, the hl cookie, then
// Accept-Language, and stores it in the request context.
func Locale(bundle *i18n.Bundle) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var lang string
			if q := strings.TrimSpace(r.URL.Query().Get("hl")); q != "" {
				lang = bundle.Normalize(q)
				http.SetCookie(w, &http.Cookie{
					Name:     langCookieName,
					Value:    lang,
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(365 * 24 * time.Hour),
				})
			} else if c, err := r.Cookie(langCookieName); err == nil && c.Value != "" {
				lang = bundle.Normalize(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			w.Header().Set("Content-Language", lang)
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// Lang returns the language chosen by Locale, or "es" outside it.
func Lang(r *http.Request) string {
	if v, ok := r.Context().Value(ctxKeyLang).(string); ok && v != "" {
		return v
	}
	return "es"
}
