package middleware

import (
	"net/http"
	"time"

	"knowledgehub.dev/hub-web/internal/i18n"
)

// LangCookie persists an explicit ?hl= choice.
const LangCookie = "hl"

// Locale resolves the preferred language from the `hl` query parameter, the
// `hl` cookie, then Accept-Language, and stores it in the request context.
// secure marks the cookie Secure (production).
func Locale(bundle *i18n.Bundle, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var lang string
			if q := r.URL.Query().Get("hl"); q != "" {
				lang = bundle.Normalize(q)
				http.SetCookie(w, &http.Cookie{
					Name:     LangCookie,
					Value:    lang,
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			} else if c, err := r.Cookie(LangCookie); err == nil && c.Value != "" {
				lang = bundle.Normalize(c.Value)
			} else {
				lang = bundle.Resolve(r.Header.Get("Accept-Language"))
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}

// VaryLocale sets Vary header for Accept-Language on dynamic responses
func VaryLocale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Language")
		w.Header().Add("Vary", "Cookie")
		next.ServeHTTP(w, r)
	})
}

// Lang returns the request language, or fallback when Locale did not run.
func Lang(r *http.Request, fallback string) string {
	if v := LangFromContext(r.Context()); v != "" {
		return v
	}
	return fallback
}
