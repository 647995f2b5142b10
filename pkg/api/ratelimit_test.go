package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindowTake(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	l := newSlidingWindow(3, time.Minute)
	l.now = func() time.Time { return now }

	allowed, remaining, _ := l.take("a@isprava.com")
	assert.True(t, allowed)
	assert.Equal(t, 2, remaining)

	l.take("a@isprava.com")
	allowed, remaining, _ = l.take("a@isprava.com")
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, _, reset := l.take("a@isprava.com")
	assert.False(t, allowed)
	assert.Equal(t, time.Minute, reset)

	// Another key has its own window.
	allowed, _, _ = l.take("b@isprava.com")
	assert.True(t, allowed)

	// Hits age out as time advances.
	now = now.Add(61 * time.Second)
	allowed, remaining, _ = l.take("a@isprava.com")
	assert.True(t, allowed)
	assert.Equal(t, 2, remaining)
}

func TestSlidingWindowPrune(t *testing.T) {
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	l := newSlidingWindow(3, time.Minute)
	l.now = func() time.Time { return now }

	l.take("a@isprava.com")
	l.take("b@isprava.com")

	now = now.Add(2 * time.Minute)
	l.prune()

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Empty(t, l.hits)
}

func TestRateLimitMiddleware(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.Use(rateLimit(newSlidingWindow(2, time.Minute)))
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	get := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	first := get()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("RateLimit-Remaining"))

	get()
	third := get()
	require.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("RateLimit-Remaining"))
	assert.NotEmpty(t, third.Header().Get("RateLimit-Reset"))
	assert.Contains(t, third.Body.String(), "rate limit exceeded")
}

func TestGlobalRateLimitKeyedByUser(t *testing.T) {
	fx := newServerFixture(t, nil)
	fx.seedUser("staff@isprava.com", true, false)
	token := fx.login("staff@isprava.com")

	fx.server.globalLimiter.limit = 2

	// Requests arrive from rotating addresses; an IP-keyed window would
	// never fill up, a user-keyed one blocks the third request.
	get := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		fx.server.echo.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, get("10.0.0.1:1000").Code)
	require.Equal(t, http.StatusOK, get("10.0.0.2:1000").Code)

	third := get("10.0.0.3:1000")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, "0", third.Header().Get("RateLimit-Remaining"))
}
