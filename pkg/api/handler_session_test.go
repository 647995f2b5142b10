package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/pkg/models"
)

func TestSessionHandlers(t *testing.T) {
	fx := newServerFixture(t, nil)
	fx.seedUser("owner@isprava.com", true, false)
	fx.seedUser("other@isprava.com", true, false)
	ownerToken := fx.login("owner@isprava.com")
	otherToken := fx.login("other@isprava.com")

	t.Run("requires authentication", func(t *testing.T) {
		rec := fx.do(http.MethodGet, "/api/sessions", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create applies defaults", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/sessions", ownerToken,
			models.CreateChatSessionRequest{Vertical: "Lohono"})
		require.Equal(t, http.StatusCreated, rec.Code)

		session := decodeJSON[ent.ChatSession](t, rec)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, "New chat", session.Title)
		assert.Equal(t, "lohono", session.Vertical)
	})

	t.Run("create rejects unknown vertical", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/sessions", ownerToken,
			models.CreateChatSessionRequest{Vertical: "timeshare"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("lifecycle is owner-scoped", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/sessions", ownerToken,
			models.CreateChatSessionRequest{Title: "Goa pipeline"})
		require.Equal(t, http.StatusCreated, rec.Code)
		session := decodeJSON[ent.ChatSession](t, rec)

		// Owner sees it with an (empty) transcript.
		get := fx.do(http.MethodGet, "/api/sessions/"+session.ID, ownerToken, nil)
		require.Equal(t, http.StatusOK, get.Code)
		detail := decodeJSON[SessionDetailResponse](t, get)
		assert.Equal(t, "Goa pipeline", detail.Session.Title)
		assert.Empty(t, detail.Messages)

		// Someone else's token behaves as if the session does not exist.
		foreign := fx.do(http.MethodGet, "/api/sessions/"+session.ID, otherToken, nil)
		assert.Equal(t, http.StatusNotFound, foreign.Code)
		foreignDelete := fx.do(http.MethodDelete, "/api/sessions/"+session.ID, otherToken, nil)
		assert.Equal(t, http.StatusNotFound, foreignDelete.Code)

		// Rename, then delete.
		rename := fx.do(http.MethodPut, "/api/sessions/"+session.ID, ownerToken,
			models.UpdateSessionTitleRequest{Title: "Alibaug pipeline"})
		require.Equal(t, http.StatusOK, rename.Code)
		renamed := decodeJSON[ent.ChatSession](t, rename)
		assert.Equal(t, "Alibaug pipeline", renamed.Title)

		del := fx.do(http.MethodDelete, "/api/sessions/"+session.ID, ownerToken, nil)
		assert.Equal(t, http.StatusNoContent, del.Code)
		gone := fx.do(http.MethodGet, "/api/sessions/"+session.ID, ownerToken, nil)
		assert.Equal(t, http.StatusNotFound, gone.Code)
	})

	t.Run("list is scoped to the caller", func(t *testing.T) {
		rec := fx.do(http.MethodPost, "/api/sessions", otherToken,
			models.CreateChatSessionRequest{Title: "Mine"})
		require.Equal(t, http.StatusCreated, rec.Code)

		list := fx.do(http.MethodGet, "/api/sessions", otherToken, nil)
		require.Equal(t, http.StatusOK, list.Code)
		page := decodeJSON[models.SessionListResponse](t, list)
		require.Equal(t, 1, page.TotalCount)
		assert.Equal(t, "Mine", page.Sessions[0].Title)
	})
}
