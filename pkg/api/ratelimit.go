package api

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	echo "github.com/labstack/echo/v5"
)

const (
	rateLimitWindow = time.Minute

	// globalRateLimit applies to every request; chatRateLimit additionally
	// caps the two agent-loop endpoints, which are orders of magnitude
	// more expensive than plain CRUD.
	globalRateLimit = 60
	chatRateLimit   = 20
)

// slidingWindow is a per-key sliding-window rate limiter. Keys are staff
// emails for authenticated requests and client IPs otherwise.
type slidingWindow struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu   sync.Mutex
	hits map[string][]time.Time
}

func newSlidingWindow(limit int, window time.Duration) *slidingWindow {
	return &slidingWindow{
		limit:  limit,
		window: window,
		now:    time.Now,
		hits:   make(map[string][]time.Time),
	}
}

// take records one hit against key and reports whether it is within the
// limit, how many hits remain, and when the window frees up again.
func (l *slidingWindow) take(key string) (allowed bool, remaining int, reset time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= l.limit {
		l.hits[key] = kept
		return false, 0, l.window - now.Sub(kept[0])
	}

	kept = append(kept, now)
	l.hits[key] = kept
	return true, l.limit - len(kept), l.window - now.Sub(kept[0])
}

// prune drops keys with no hits inside the window. Called periodically so
// one-off clients do not accumulate forever.
func (l *slidingWindow) prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	for key, times := range l.hits {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(l.hits, key)
		}
	}
}

// rateLimit returns middleware enforcing l per caller, with standard
// RateLimit-* response headers.
func rateLimit(l *slidingWindow) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			allowed, remaining, reset := l.take(rateKey(c))

			h := c.Response().Header()
			h.Set("RateLimit-Limit", strconv.Itoa(l.limit))
			h.Set("RateLimit-Remaining", strconv.Itoa(remaining))
			h.Set("RateLimit-Reset", strconv.Itoa(int(math.Ceil(reset.Seconds()))))

			if !allowed {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}

// rateKey buckets by authenticated user email when available, client IP
// otherwise (the global limiter runs before authentication).
func rateKey(c *echo.Context) string {
	if user := currentUser(c); user != nil {
		return user.Email
	}
	return c.RealIP()
}
