package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"knowledgehub.dev/hub-web/internal/metrics"
)

// Metrics records request counts and latency keyed by the matched chi route
// pattern, so unmatched paths collapse into one series.
func Metrics(reg *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := NewResponseRecorder(w)
			next.ServeHTTP(rw, r)

			var route string
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				route = rctx.RoutePattern()
			}
			reg.ObserveRequest(route, r.Method, rw.Status(), time.Since(start))
		})
	}
}
