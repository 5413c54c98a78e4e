package middleware

import (
	"net"
	"net/http"
	"strings"
	"time"

	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Logger emits a structured log event per request.
func Logger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := NewResponseRecorder(w)
			rid := chiMid.GetReqID(r.Context())
			if rid != "" {
				r = r.WithContext(WithRequestID(r.Context(), rid))
			}
			next.ServeHTTP(rw, r)

			ev := log.Info()
			switch {
			case rw.Status() >= 500:
				ev = log.Error()
			case rw.Status() >= 400:
				ev = log.Warn()
			}
			ev.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.Status()).
				Int("bytes", rw.BytesWritten()).
				Int64("duration_ms", time.Since(start).Milliseconds()).
				Str("remote_ip", clientIP(r)).
				Str("request_id", rid).
				Bool("htmx", IsHTMX(r.Context())).
				Str("lang", LangFromContext(r.Context())).
				Msg("request")
		})
	}
}

func clientIP(r *http.Request) string {
	// Trust X-Forwarded-For set by the load balancer (last IP is client)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		p := strings.Split(xff, ",")
		return strings.TrimSpace(p[len(p)-1])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
