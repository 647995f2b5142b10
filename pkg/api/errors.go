package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/isprava/concierge/pkg/breaker"
	"github.com/isprava/concierge/pkg/llm"
	"github.com/isprava/concierge/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validErr.Error())
	}
	if errors.Is(err, services.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	}
	if errors.Is(err, services.ErrForbidden) {
		return echo.NewHTTPError(http.StatusForbidden, "access denied")
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return echo.NewHTTPError(http.StatusConflict, "resource already exists")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

// mapAgentError maps agent-loop errors to HTTP error responses. Upstream
// LLM failures and open circuits get a 503 with a user-presentable message;
// everything else falls through to mapServiceError.
func mapAgentError(err error) *echo.HTTPError {
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) || errors.Is(err, breaker.ErrCircuitOpen) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, llm.FriendlyMessage(err))
	}
	return mapServiceError(err)
}

// errorHandler renders every error as {"error": "<message>"}.
func errorHandler(c *echo.Context, err error) {
	if resp, _ := echo.UnwrapResponse(c.Response()); resp != nil && resp.Committed {
		return
	}

	he := &echo.HTTPError{Code: http.StatusInternalServerError, Message: "internal server error"}
	if !errors.As(err, &he) {
		slog.Error("Unhandled request error", "error", err)
	}

	msg := he.Message
	if msg == "" {
		msg = http.StatusText(he.Code)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(he.Code)
		return
	}
	_ = c.JSON(he.Code, map[string]string{"error": msg})
}
