package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func limited(rl *RateLimiter, maxPerMinute int) http.Handler {
	return rl.Limit(maxPerMinute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hit(t *testing.T, handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/voters/lookup", nil)
	req.RemoteAddr = remoteAddr
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := limited(rl, 10)

	for i := 0; i < 10; i++ {
		rec := hit(t, handler, "1.2.3.4:1234")
		assert.Equal(t, http.StatusOK, rec.Code, "request %d should be allowed", i)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := limited(rl, 5)

	for i := 0; i < 5; i++ {
		rec := hit(t, handler, "1.2.3.4:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := hit(t, handler, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimiter_SameIPDifferentPortsShareBucket(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := limited(rl, 2)

	hit(t, handler, "1.2.3.4:1111")
	hit(t, handler, "1.2.3.4:2222")

	rec := hit(t, handler, "1.2.3.4:3333")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimiter_DifferentIPsIndependent(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()
	handler := limited(rl, 2)

	for i := 0; i < 2; i++ {
		hit(t, handler, "1.1.1.1:1234")
	}

	rec := hit(t, handler, "2.2.2.2:5678")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_TokenRefill(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	// 60 per minute refills one token per second.
	handler := limited(rl, 60)

	for i := 0; i < 60; i++ {
		hit(t, handler, "3.3.3.3:1234")
	}

	time.Sleep(1100 * time.Millisecond)

	rec := hit(t, handler, "3.3.3.3:1234")
	assert.Equal(t, http.StatusOK, rec.Code)
}
