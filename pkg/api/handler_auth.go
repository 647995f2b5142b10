package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/isprava/concierge/pkg/models"
)

// googleLoginHandler handles POST /api/auth/google.
// The frontend completes the OAuth dance and posts the verified profile;
// only emails already present in the staff table get a token.
func (s *Server) googleLoginHandler(c *echo.Context) error {
	var req models.GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Email) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}

	session, user, err := s.auth.Login(c.Request().Context(), req.Email)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &models.LoginResponse{
		Token: session.ID,
		User:  models.NewUserView(user),
	})
}

// meHandler handles GET /api/auth/me.
func (s *Server) meHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, models.NewUserView(currentUser(c)))
}

// logoutHandler handles POST /api/auth/logout.
func (s *Server) logoutHandler(c *echo.Context) error {
	if err := s.auth.Logout(c.Request().Context(), currentToken(c)); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
