package router

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/jbeshir/movie-userdata/internal/domain"
	"golang.org/x/time/rate"
)

// RateLimitConfig allows Burst requests at once, refilling one every Every.
type RateLimitConfig struct {
	Every time.Duration
	Burst int
}

const limiterSweepInterval = time.Minute

// KeyedRateLimiter hands out one token bucket per caller key. Buckets that
// have refilled completely are dropped on the next sweep, since a fresh bucket
// behaves identically.
type KeyedRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	limit     rate.Limit
	burst     int
	now       func() time.Time
	lastSweep time.Time
}

func NewKeyedRateLimiter(cfg RateLimitConfig) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(cfg.Every),
		burst:    cfg.Burst,
		now:      time.Now,
	}
}

func (l *KeyedRateLimiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	if now.Sub(l.lastSweep) >= limiterSweepInterval {
		l.sweepLocked(now)
	}
	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	l.mu.Unlock()

	return limiter.AllowN(now, 1)
}

func (l *KeyedRateLimiter) sweepLocked(now time.Time) {
	for key, limiter := range l.limiters {
		if limiter.TokensAt(now) >= float64(l.burst) {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}


// rateLimitKey prefers the authenticated user and falls back to the client address.
func rateLimitKey(r *http.Request) string {
	if userID := domain.UserIDFromContext(r.Context()); userID != "" {
		return "user:" + userID
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

func rateLimitMiddleware(limiter *KeyedRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := rateLimitKey(r)
			if !limiter.Allow(key) {
				logger := domain.LoggerFromContext(r.Context())
				logger.InfoContext(r.Context(), "rate limit exceeded", "key", key)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"message":"too many requests, please wait"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
