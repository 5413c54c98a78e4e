package middleware

import (
	"context"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyRequestID ctxKey = "req_id"
	ctxKeyHTMX      ctxKey = "htmx"
	ctxKeyLang      ctxKey = "lang"
	ctxKeyPeerIP    ctxKey = "peer_ip"
)

// WithRequestID stores request id in context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets request id from context
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// WithLang stores the resolved language in context.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLang, lang)
}

// LangFromContext returns the resolved language, or "" when Locale did not run.
func LangFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyLang).(string)
	return v
}

// WithPeerIP stores the connection's remote host in context.
func WithPeerIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKeyPeerIP, ip)
}

// PeerIPFromContext returns the host recorded by PeerIP, or "".
func PeerIPFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyPeerIP).(string)
	return v
}
