package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/movie-userdata/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestKeyedRateLimiter_Allow(t *testing.T) {
	limiter := NewKeyedRateLimiter(RateLimitConfig{Every: time.Hour, Burst: 2})

	assert.True(t, limiter.Allow("user:alice"))
	assert.True(t, limiter.Allow("user:alice"))
	assert.False(t, limiter.Allow("user:alice"))

	assert.True(t, limiter.Allow("user:bob"))
}

func (l *KeyedRateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func TestKeyedRateLimiter_EvictsRefilledBuckets(t *testing.T) {
	limiter := NewKeyedRateLimiter(RateLimitConfig{Every: time.Second, Burst: 2})
	now := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		assert.True(t, limiter.Allow(fmt.Sprintf("ip:198.51.100.%d", i)))
	}
	assert.Equal(t, 100, limiter.size())

	now = now.Add(61 * time.Second)
	assert.True(t, limiter.Allow("user:alice"))
	assert.Equal(t, 1, limiter.size())
}

func TestKeyedRateLimiter_KeepsDrainedBuckets(t *testing.T) {
	limiter := NewKeyedRateLimiter(RateLimitConfig{Every: time.Hour, Burst: 2})
	now := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("user:alice"))
	assert.True(t, limiter.Allow("user:alice"))

	now = now.Add(2 * time.Minute)
	assert.True(t, limiter.Allow("user:bob"))
	assert.Equal(t, 2, limiter.size())

	// Sweeping must not hand a drained caller a fresh bucket.
	assert.False(t, limiter.Allow("user:alice"))
}

func TestRateLimitKey(t *testing.T) {
	req := testRequest(http.MethodPost, "/v1/movies/1/reviews")
	req.RemoteAddr = "203.0.113.7:51234"
	assert.Equal(t, "ip:203.0.113.7", rateLimitKey(req))

	req = req.WithContext(domain.ContextWithUserID(req.Context(), "user-1"))
	assert.Equal(t, "user:user-1", rateLimitKey(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	handler := rateLimitMiddleware(NewKeyedRateLimiter(RateLimitConfig{Every: time.Hour, Burst: 1}))(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}),
	)

	send := func(userID string) int {
		req := testRequest(http.MethodPost, "/v1/reviews/r1/vote/true")
		req = req.WithContext(domain.ContextWithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, send("user-1"))
	assert.Equal(t, http.StatusTooManyRequests, send("user-1"))
	assert.Equal(t, http.StatusCreated, send("user-2"))
}
