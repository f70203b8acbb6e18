package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goldledger/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*RateLimiter, *time.Time) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(ctx, limit, window)
	rl.mu.Lock()
	rl.now = func() time.Time { return now }
	rl.mu.Unlock()
	return rl, &now
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows up to the limit", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 3, time.Minute)

		assert.True(t, rl.Allow("a"))
		assert.True(t, rl.Allow("a"))
		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 1, time.Minute)

		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))
		assert.True(t, rl.Allow("b"))
	})

	t.Run("window reset restores tokens", func(t *testing.T) {
		rl, now := newTestLimiter(t, 1, time.Minute)

		assert.True(t, rl.Allow("a"))
		assert.False(t, rl.Allow("a"))

		*now = now.Add(time.Minute)
		assert.True(t, rl.Allow("a"))
	})

	t.Run("remaining counts down", func(t *testing.T) {
		rl, _ := newTestLimiter(t, 5, time.Minute)

		assert.Equal(t, 5, rl.Remaining("a"))
		rl.Allow("a")
		rl.Allow("a")
		assert.Equal(t, 3, rl.Remaining("a"))
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	rl, _ := newTestLimiter(t, 2, time.Minute)

	router := gin.New()
	router.Use(RequestID(), RateLimit(rl))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		router.ServeHTTP(w, req)
		return w
	}

	w := do()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, do().Code)

	w = do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), dto.ErrCodeRateLimited)
}

func TestRateLimitByKey(t *testing.T) {
	rl, _ := newTestLimiter(t, 1, time.Minute)

	router := gin.New()
	router.Use(RateLimitByKey(rl, func(c *gin.Context) string {
		return c.GetHeader("X-Client")
	}))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	for _, tc := range []struct {
		client string
		code   int
	}{
		{"a", http.StatusOK},
		{"a", http.StatusTooManyRequests},
		{"b", http.StatusOK},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Client", tc.client)
		router.ServeHTTP(w, req)
		assert.Equal(t, tc.code, w.Code, "client %s", tc.client)
	}
}
