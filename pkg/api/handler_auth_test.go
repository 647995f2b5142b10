package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/pkg/models"
)

func TestGoogleLoginHandler(t *testing.T) {
	t.Run("unknown email is rejected", func(t *testing.T) {
		fx := newServerFixture(t, nil)

		rec := fx.do(http.MethodPost, "/api/auth/google", "",
			models.GoogleLoginRequest{Email: "stranger@example.com", Name: "Stranger"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		body := decodeJSON[map[string]string](t, rec)
		assert.Equal(t, "access denied", body["error"])
	})

	t.Run("inactive user is rejected", func(t *testing.T) {
		fx := newServerFixture(t, nil)
		fx.seedUser("former@isprava.com", false, false)

		rec := fx.do(http.MethodPost, "/api/auth/google", "",
			models.GoogleLoginRequest{Email: "former@isprava.com"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing email is a 400", func(t *testing.T) {
		fx := newServerFixture(t, nil)

		rec := fx.do(http.MethodPost, "/api/auth/google", "",
			models.GoogleLoginRequest{Name: "No Email"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("staff login returns a working token", func(t *testing.T) {
		fx := newServerFixture(t, nil)
		fx.seedUser("staff@isprava.com", true, false)

		rec := fx.do(http.MethodPost, "/api/auth/google", "",
			models.GoogleLoginRequest{Email: "staff@isprava.com", Name: "Staff"})
		require.Equal(t, http.StatusOK, rec.Code)

		login := decodeJSON[models.LoginResponse](t, rec)
		require.NotEmpty(t, login.Token)
		assert.Equal(t, "staff@isprava.com", login.User.Email)
		assert.False(t, login.User.Admin)

		me := fx.do(http.MethodGet, "/api/auth/me", login.Token, nil)
		require.Equal(t, http.StatusOK, me.Code)
		view := decodeJSON[models.UserView](t, me)
		assert.Equal(t, "staff@isprava.com", view.Email)
	})
}

func TestLogoutHandler(t *testing.T) {
	fx := newServerFixture(t, nil)
	fx.seedUser("staff@isprava.com", true, false)
	token := fx.login("staff@isprava.com")

	rec := fx.do(http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// The token is gone.
	me := fx.do(http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, me.Code)
}

func TestRequireAuth(t *testing.T) {
	fx := newServerFixture(t, nil)

	t.Run("missing token", func(t *testing.T) {
		rec := fx.do(http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeJSON[map[string]string](t, rec)
		assert.Equal(t, "missing bearer token", body["error"])
	})

	t.Run("unknown token", func(t *testing.T) {
		rec := fx.do(http.MethodGet, "/api/auth/me", "not-a-real-token", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deactivated mid-session", func(t *testing.T) {
		user := fx.seedUser("leaving@isprava.com", true, false)
		token := fx.login("leaving@isprava.com")

		err := fx.client.StaffUser.UpdateOneID(user.ID).SetActive(false).Exec(context.Background())
		require.NoError(t, err)

		rec := fx.do(http.MethodGet, "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
