package middleware

import (
	"context"
	"net/http"
	"strings"
)

// HTMXInfo captures request metadata from HX-* headers.
type HTMXInfo struct {
	IsHTMX         bool
	IsBoosted      bool
	CurrentURL     string
	Target         string
	HistoryRestore bool
}

// WantsFragment reports whether the request only needs the element with the
// given id re-rendered. History restores always get the full document.
func (i HTMXInfo) WantsFragment(target string) bool {
	return i.IsHTMX && !i.HistoryRestore && i.Target == target
}

// HTMX inspects HX-* headers and annotates the context so handlers can adapt responses.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := HTMXInfo{
			IsHTMX:         strings.EqualFold(r.Header.Get("HX-Request"), "true"),
			IsBoosted:      strings.EqualFold(r.Header.Get("HX-Boosted"), "true"),
			CurrentURL:     r.Header.Get("HX-Current-URL"),
			Target:         r.Header.Get("HX-Target"),
			HistoryRestore: strings.EqualFold(r.Header.Get("HX-History-Restore-Request"), "true"),
		}
		// responses differ by htmx headers, so caches must key on them
		w.Header().Add("Vary", "HX-Request")
		w.Header().Add("Vary", "HX-Target")
		ctx := context.WithValue(r.Context(), ctxKeyHTMX, info)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// HTMXInfoFromContext retrieves htmx metadata; returns zero value if absent.
func HTMXInfoFromContext(ctx context.Context) HTMXInfo {
	v, _ := ctx.Value(ctxKeyHTMX).(HTMXInfo)
	return v
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	return HTMXInfoFromContext(ctx).IsHTMX
}
