package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/isprava/concierge/pkg/agent"
	"github.com/isprava/concierge/pkg/models"
)

// ChatTurnResponse is returned by POST /api/sessions/:id/messages.
type ChatTurnResponse struct {
	AssistantText string                  `json:"assistantText"`
	ToolCalls     []models.ToolInvocation `json:"toolCalls"`
	Cached        bool                    `json:"cached,omitempty"`
}

// chatHandler handles POST /api/sessions/:id/messages.
// Runs the full agent loop and returns the final answer in one response.
func (s *Server) chatHandler(c *echo.Context) error {
	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in, err := s.chatInput(c, req.Message)
	if err != nil {
		return err
	}

	result, runErr := s.agent.Chat(c.Request().Context(), in)
	if runErr != nil {
		return mapAgentError(runErr)
	}

	toolCalls := result.ToolsUsed
	if toolCalls == nil {
		toolCalls = []models.ToolInvocation{}
	}
	return c.JSON(http.StatusOK, &ChatTurnResponse{
		AssistantText: result.Text,
		ToolCalls:     toolCalls,
		Cached:        result.Cached,
	})
}

// chatStreamHandler handles GET /api/sessions/:id/messages/stream.
// Emits the agent's event stream as SSE frames, one `data: <json>` frame
// per event. Failures after the stream opens arrive as error events; the
// agent emits those itself.
func (s *Server) chatStreamHandler(c *echo.Context) error {
	in, err := s.chatInput(c, c.QueryParam("message"))
	if err != nil {
		return err
	}

	h := c.Response().Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Response().WriteHeader(http.StatusOK)

	rc := http.NewResponseController(c.Response())
	for ev := range s.agent.ChatStream(c.Request().Context(), in) {
		payload, marshalErr := json.Marshal(ev)
		if marshalErr != nil {
			continue
		}
		if _, writeErr := fmt.Fprintf(c.Response(), "data: %s\n\n", payload); writeErr != nil {
			// Client gone. The agent keeps running the turn to completion
			// and drops the remaining events once the request context ends.
			return nil
		}
		_ = rc.Flush()
	}

	return nil
}

// chatInput validates the turn and assembles the agent input. Ownership is
// checked here so a foreign session 404s before anything is persisted.
func (s *Server) chatInput(c *echo.Context, message string) (agent.Input, error) {
	sessionID := c.Param("id")
	if sessionID == "" {
		return agent.Input{}, echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if strings.TrimSpace(message) == "" {
		return agent.Input{}, echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	user := currentUser(c)
	session, err := s.sessions.Get(c.Request().Context(), user.ID, sessionID)
	if err != nil {
		return agent.Input{}, mapServiceError(err)
	}

	return agent.Input{
		SessionID: session.ID,
		UserID:    user.ID,
		UserEmail: user.Email,
		Vertical:  session.Vertical,
		Message:   message,
	}, nil
}
