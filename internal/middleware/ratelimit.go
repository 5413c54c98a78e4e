package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"knowledgehub.dev/hub-web/internal/metrics"
)

// idle limiters are dropped after this long
const limiterTTL = 10 * time.Minute

// RateLimiter hands out a token bucket per client IP.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	now   func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
	swept   time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter returns a limiter allowing rps requests per second per client
// with the given burst.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
		clients: map[string]*clientLimiter{},
	}
}

// Allow reports whether a request from key may proceed now.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.swept) > limiterTTL {
		for k, c := range l.clients {
			if now.Sub(c.lastSeen) > limiterTTL {
				delete(l.clients, k)
			}
		}
		l.swept = now
	}
	c, ok := l.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Len returns the number of tracked clients.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// PeerIP records the host of the TCP peer. It must run before RealIP, which
// rewrites RemoteAddr from client-supplied headers.
func PeerIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithPeerIP(r.Context(), remoteHost(r.RemoteAddr))))
	})
}

// RateLimit rejects requests over the per-client budget with 429. Clients are
// keyed by the address PeerIP recorded, never by forwarding headers.
func RateLimit(l *RateLimiter, reg *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := PeerIPFromContext(r.Context())
			if key == "" {
				key = remoteHost(r.RemoteAddr)
			}
			if !l.Allow(key) {
				reg.IncRateLimited()
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter(l.rps)))
				writeError(w, r, http.StatusTooManyRequests, "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// retryAfter is the whole number of seconds until one token refills.
func retryAfter(rps rate.Limit) int {
	if rps <= 0 || rps == rate.Inf {
		return 1
	}
	secs := int(math.Ceil(1 / float64(rps)))
	if secs < 1 {
		return 1
	}
	return secs
}

func remoteHost(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
