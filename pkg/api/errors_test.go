package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"

	"github.com/isprava/concierge/pkg/breaker"
	"github.com/isprava/concierge/pkg/llm"
	"github.com/isprava/concierge/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("message", "required"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "required",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "forbidden maps to 403",
			err:        services.ErrForbidden,
			expectCode: http.StatusForbidden,
			expectMsg:  "access denied",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "resource already exists",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.IsType(t, &echo.HTTPError{}, he)
			assert.Equal(t, tt.expectCode, he.Code)
			assert.Contains(t, he.Error(), tt.expectMsg)
		})
	}
}

func TestMapAgentError(t *testing.T) {
	t.Run("llm api error maps to 503", func(t *testing.T) {
		err := &llm.APIError{StatusCode: 529, Type: "overloaded_error", Message: "overloaded"}
		he := mapAgentError(err)
		assert.Equal(t, http.StatusServiceUnavailable, he.Code)
	})

	t.Run("open circuit maps to 503", func(t *testing.T) {
		he := mapAgentError(fmt.Errorf("llm call failed: %w", breaker.ErrCircuitOpen))
		assert.Equal(t, http.StatusServiceUnavailable, he.Code)
	})

	t.Run("validation error still maps to 400", func(t *testing.T) {
		he := mapAgentError(services.NewValidationError("message", "required"))
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestErrorHandlerSkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.GET("/partial", func(c *echo.Context) error {
		if err := c.String(http.StatusOK, "partial"); err != nil {
			return err
		}
		return errors.New("late failure")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/partial", nil))

	// The body already went out; the error handler must not write again.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
