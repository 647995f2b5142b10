package llm

import (
	"errors"
	"fmt"
	"net/http"
)

// API error types returned in the error response body.
const (
	errTypeOverloaded = "overloaded_error"
	errTypeRateLimit  = "rate_limit_error"
)

// APIError is a non-2xx response from the messages API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("anthropic API error %d (%s): %s", e.StatusCode, e.Type, e.Message)
}

// IsOverloaded reports whether err is an upstream-overloaded failure.
func IsOverloaded(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Type == errTypeOverloaded || apiErr.StatusCode == 529
}

// IsRateLimited reports whether err is an upstream rate-limit failure.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Type == errTypeRateLimit || apiErr.StatusCode == http.StatusTooManyRequests
}

// IsTransient reports whether err should bypass circuit-breaker failure
// counting: the upstream is alive but shedding load, so tripping the breaker
// would only extend the outage.
func IsTransient(err error) bool {
	return IsOverloaded(err) || IsRateLimited(err)
}

// FriendlyMessage maps known API failures to user-facing text for chat
// responses and SSE error events.
func FriendlyMessage(err error) string {
	switch {
	case IsOverloaded(err):
		return "The assistant service is busy right now. Please try again in a moment."
	case IsRateLimited(err):
		return "Too many requests to the assistant service. Please slow down and retry."
	default:
		return "Something went wrong while generating a response. Please try again."
	}
}
