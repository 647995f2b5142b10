package api

import (
	"errors"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/pkg/services"
)

const (
	userContextKey  = "concierge.user"
	tokenContextKey = "concierge.token"
)

// requireAuth resolves the bearer token to a staff user and stashes it in
// the request context. Validation slides the token's expiry window.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		token := bearerToken(c.Request())
		if token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		user, err := s.auth.Validate(c.Request().Context(), token)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			if errors.Is(err, services.ErrForbidden) {
				return echo.NewHTTPError(http.StatusForbidden, "account is deactivated")
			}
			return mapServiceError(err)
		}

		c.Set(userContextKey, user)
		c.Set(tokenContextKey, token)
		return next(c)
	}
}

// requireAdmin gates admin routes. Must run after requireAuth.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		user := currentUser(c)
		if user == nil || !user.Admin {
			return echo.NewHTTPError(http.StatusForbidden, "admin access required")
		}
		return next(c)
	}
}

// currentUser returns the authenticated staff user, or nil outside an
// authenticated route.
func currentUser(c *echo.Context) *ent.StaffUser {
	user, _ := c.Get(userContextKey).(*ent.StaffUser)
	return user
}

// currentToken returns the bearer token that authenticated this request.
func currentToken(c *echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
