package httpx

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/hirewire/hirewire/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters for one profile.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window.
	RequestsPerWindow int
	// Window is the time window for rate limiting.
	Window time.Duration
	// Burst allows for temporary bursts above the steady rate.
	Burst int
}

// Common rate limit profiles for different endpoint types.
var (
	// StrictLimit for credential endpoints (brute force prevention).
	StrictLimit = RateLimitConfig{
		RequestsPerWindow: 5,
		Window:            time.Minute,
		Burst:             5,
	}

	// ModerateLimit for authenticated mutations.
	ModerateLimit = RateLimitConfig{
		RequestsPerWindow: 20,
		Window:            time.Minute,
		Burst:             20,
	}

	// LenientLimit for authenticated reads.
	LenientLimit = RateLimitConfig{
		RequestsPerWindow: 100,
		Window:            time.Minute,
		Burst:             100,
	}
)

func (c RateLimitConfig) limit() rate.Limit {
	if c.Window <= 0 || c.RequestsPerWindow <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(c.RequestsPerWindow) / c.Window.Seconds())
}

// limiterRegistry keeps one token bucket per key and forgets keys that have
// been idle long enough to refill completely.
type limiterRegistry struct {
	mu       sync.Mutex
	cfg      RateLimitConfig
	limiters map[string]*limiterEntry
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newLimiterRegistry(cfg RateLimitConfig) *limiterRegistry {
	return &limiterRegistry{
		cfg:      cfg,
		limiters: make(map[string]*limiterEntry),
	}
}

func (reg *limiterRegistry) allow(key string) bool {
	now := time.Now()

	reg.mu.Lock()
	defer reg.mu.Unlock()

	e, ok := reg.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(reg.cfg.limit(), reg.cfg.Burst)}
		reg.limiters[key] = e
	}
	e.lastSeen = now

	// Opportunistic pruning; a full bucket holds no state worth keeping.
	if len(reg.limiters) > 1024 {
		idle := 2 * reg.cfg.Window
		for k, v := range reg.limiters {
			if now.Sub(v.lastSeen) > idle {
				delete(reg.limiters, k)
			}
		}
	}

	return e.limiter.Allow()
}

// RateLimitByIP limits requests per client IP. Used on unauthenticated
// credential endpoints where the IP is the only stable key we have.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	reg := newLimiterRegistry(cfg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !reg.allow(clientIP(r)) {
				writeRateLimited(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByUser limits requests per authenticated subject. Must sit
// inside AuthnMiddleware in the chain; falls back to IP when no subject is
// present.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	reg := newLimiterRegistry(cfg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := SubjectFromContext(r.Context())
			if key == "" {
				key = clientIP(r)
			}
			if !reg.allow(key) {
				writeRateLimited(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeRateLimited(w http.ResponseWriter, r *http.Request) {
	slogx.FromContext(r.Context()).Warn("rate limit exceeded", "remote_addr", r.RemoteAddr)
	w.Header().Set("Retry-After", "60")
	WriteJSON(w, http.StatusTooManyRequests, map[string]string{
		"error":   "rate_limited",
		"message": "too many requests, slow down",
	})
}
