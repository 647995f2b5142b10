package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/pkg/llm"
	"github.com/isprava/concierge/pkg/models"
)

func (fx *serverFixture) createSession(token string, req models.CreateChatSessionRequest) *ent.ChatSession {
	fx.t.Helper()
	rec := fx.do(http.MethodPost, "/api/sessions", token, req)
	require.Equal(fx.t, http.StatusCreated, rec.Code)
	session := decodeJSON[ent.ChatSession](fx.t, rec)
	return &session
}

func TestChatHandler(t *testing.T) {
	t.Run("answers a turn", func(t *testing.T) {
		fx := newServerFixture(t, &fakeLLM{responses: []*llm.Response{
			textResponse("The funnel has 12 qualified leads."),
		}})
		fx.seedUser("staff@isprava.com", true, false)
		token := fx.login("staff@isprava.com")
		session := fx.createSession(token, models.CreateChatSessionRequest{})

		rec := fx.do(http.MethodPost, "/api/sessions/"+session.ID+"/messages", token,
			models.ChatRequest{Message: "how is the funnel?"})
		require.Equal(t, http.StatusOK, rec.Code)

		result := decodeJSON[ChatTurnResponse](t, rec)
		assert.Equal(t, "The funnel has 12 qualified leads.", result.AssistantText)
		assert.NotNil(t, result.ToolCalls)
		assert.Empty(t, result.ToolCalls)
		assert.False(t, result.Cached)
	})

	t.Run("missing message is a 400", func(t *testing.T) {
		fx := newServerFixture(t, nil)
		fx.seedUser("staff@isprava.com", true, false)
		token := fx.login("staff@isprava.com")
		session := fx.createSession(token, models.CreateChatSessionRequest{})

		rec := fx.do(http.MethodPost, "/api/sessions/"+session.ID+"/messages", token,
			models.ChatRequest{Message: "   "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("foreign session is a 404", func(t *testing.T) {
		fx := newServerFixture(t, nil)
		fx.seedUser("owner@isprava.com", true, false)
		fx.seedUser("other@isprava.com", true, false)
		ownerToken := fx.login("owner@isprava.com")
		otherToken := fx.login("other@isprava.com")
		session := fx.createSession(ownerToken, models.CreateChatSessionRequest{})

		rec := fx.do(http.MethodPost, "/api/sessions/"+session.ID+"/messages", otherToken,
			models.ChatRequest{Message: "hello"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("upstream overload surfaces as 503", func(t *testing.T) {
		fx := newServerFixture(t, &fakeLLM{
			err: &llm.APIError{StatusCode: 529, Type: "overloaded_error", Message: "overloaded"},
		})
		fx.seedUser("staff@isprava.com", true, false)
		token := fx.login("staff@isprava.com")
		session := fx.createSession(token, models.CreateChatSessionRequest{})

		rec := fx.do(http.MethodPost, "/api/sessions/"+session.ID+"/messages", token,
			models.ChatRequest{Message: "hello"})
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeJSON[map[string]string](t, rec)
		assert.NotEmpty(t, body["error"])
	})
}

// sseFrames parses `data: <json>` frames into stream events.
func sseFrames(t *testing.T, body string) []models.StreamEvent {
	t.Helper()
	var events []models.StreamEvent
	for _, frame := range strings.Split(body, "\n\n") {
		frame = strings.TrimSpace(frame)
		if frame == "" {
			continue
		}
		require.True(t, strings.HasPrefix(frame, "data: "), "unexpected frame %q", frame)
		var ev models.StreamEvent
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frame, "data: ")), &ev))
		events = append(events, ev)
	}
	return events
}

func TestChatStreamHandler(t *testing.T) {
	t.Run("streams deltas and a done event", func(t *testing.T) {
		fx := newServerFixture(t, &fakeLLM{responses: []*llm.Response{
			textResponse("3 leads in Goa."),
		}})
		fx.seedUser("staff@isprava.com", true, false)
		token := fx.login("staff@isprava.com")
		session := fx.createSession(token, models.CreateChatSessionRequest{})

		path := "/api/sessions/" + session.ID + "/messages/stream?message=" +
			url.QueryEscape("leads in goa?")
		rec := fx.do(http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "keep-alive", rec.Header().Get("Connection"))
		assert.Equal(t, "no", rec.Header().Get("X-Accel-Buffering"))

		events := sseFrames(t, rec.Body.String())
		require.NotEmpty(t, events)

		assert.Equal(t, models.EventTextDelta, events[0].Event)

		last := events[len(events)-1]
		require.Equal(t, models.EventDone, last.Event)
		done, err := json.Marshal(last.Data)
		require.NoError(t, err)
		var data models.DoneData
		require.NoError(t, json.Unmarshal(done, &data))
		assert.Equal(t, "3 leads in Goa.", data.Text)
	})

	t.Run("missing message fails before the stream opens", func(t *testing.T) {
		fx := newServerFixture(t, nil)
		fx.seedUser("staff@isprava.com", true, false)
		token := fx.login("staff@isprava.com")
		session := fx.createSession(token, models.CreateChatSessionRequest{})

		rec := fx.do(http.MethodGet, "/api/sessions/"+session.ID+"/messages/stream", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEqual(t, "text/event-stream", rec.Header().Get("Content-Type"))
	})

	t.Run("upstream failure arrives as an error event", func(t *testing.T) {
		fx := newServerFixture(t, &fakeLLM{
			err: &llm.APIError{StatusCode: 429, Type: "rate_limit_error", Message: "slow down"},
		})
		fx.seedUser("staff@isprava.com", true, false)
		token := fx.login("staff@isprava.com")
		session := fx.createSession(token, models.CreateChatSessionRequest{})

		rec := fx.do(http.MethodGet,
			"/api/sessions/"+session.ID+"/messages/stream?message=hello", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		events := sseFrames(t, rec.Body.String())
		require.NotEmpty(t, events)
		assert.Equal(t, models.EventError, events[len(events)-1].Event)
	})
}
