package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/pkg/models"
)

// SessionDetailResponse is returned by GET /api/sessions/:id.
type SessionDetailResponse struct {
	Session  *ent.ChatSession   `json:"session"`
	Messages []*ent.ChatMessage `json:"messages"`
}

// createSessionHandler handles POST /api/sessions.
func (s *Server) createSessionHandler(c *echo.Context) error {
	var req models.CreateChatSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := s.sessions.Create(c.Request().Context(), currentUser(c).ID, req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, session)
}

// listSessionsHandler handles GET /api/sessions.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	limit, offset := 0, 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	list, err := s.sessions.List(c.Request().Context(), currentUser(c).ID, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, list)
}

// getSessionHandler handles GET /api/sessions/:id.
// Returns the session together with its full transcript, tool activity
// included.
func (s *Server) getSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	session, err := s.sessions.Get(c.Request().Context(), currentUser(c).ID, sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	messages, err := s.messages.ListBySession(c.Request().Context(), sessionID)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &SessionDetailResponse{
		Session:  session,
		Messages: messages,
	})
}

// updateSessionTitleHandler handles PUT /api/sessions/:id.
func (s *Server) updateSessionTitleHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	var req models.UpdateSessionTitleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, err := s.sessions.UpdateTitle(c.Request().Context(), currentUser(c).ID, sessionID, req.Title)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, session)
}

// deleteSessionHandler handles DELETE /api/sessions/:id.
func (s *Server) deleteSessionHandler(c *echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}

	if err := s.sessions.Delete(c.Request().Context(), currentUser(c).ID, sessionID); err != nil {
		return mapServiceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
