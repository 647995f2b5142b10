package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	client := newTestClient(t)
	users := NewUserService(client)
	auth := NewAuthService(client, users)
	ctx := context.Background()

	createTestUser(t, client, "staff@isprava.com", true, false)
	createTestUser(t, client, "former@isprava.com", false, false)

	t.Run("issues token for active staff", func(t *testing.T) {
		session, user, err := auth.Login(ctx, "staff@isprava.com")
		require.NoError(t, err)
		assert.Len(t, session.ID, 64)
		assert.Equal(t, "staff@isprava.com", user.Email)
		assert.WithinDuration(t, time.Now().Add(SessionTTL), session.ExpiresAt, 5*time.Second)
	})

	t.Run("email lookup is case-insensitive", func(t *testing.T) {
		_, user, err := auth.Login(ctx, "  STAFF@Isprava.com ")
		require.NoError(t, err)
		assert.Equal(t, "staff@isprava.com", user.Email)
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "outsider@gmail.com")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("rejects inactive staff", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "former@isprava.com")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestAuthService_Validate(t *testing.T) {
	client := newTestClient(t)
	users := NewUserService(client)
	auth := NewAuthService(client, users)
	ctx := context.Background()

	createTestUser(t, client, "staff@isprava.com", true, false)

	t.Run("resolves a live token", func(t *testing.T) {
		session, _, err := auth.Login(ctx, "staff@isprava.com")
		require.NoError(t, err)

		user, err := auth.Validate(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, "staff@isprava.com", user.Email)
	})

	t.Run("rejects unknown token", func(t *testing.T) {
		_, err := auth.Validate(ctx, "not-a-token")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("rejects empty token", func(t *testing.T) {
		_, err := auth.Validate(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expired token is deleted", func(t *testing.T) {
		session, _, err := auth.Login(ctx, "staff@isprava.com")
		require.NoError(t, err)

		auth.now = func() time.Time { return time.Now().Add(SessionTTL + time.Minute) }
		defer func() { auth.now = time.Now }()

		_, err = auth.Validate(ctx, session.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		exists, err := client.AuthSession.Query().Exist(ctx)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("sliding refresh extends expiry", func(t *testing.T) {
		session, _, err := auth.Login(ctx, "staff@isprava.com")
		require.NoError(t, err)

		later := time.Now().Add(2 * time.Hour)
		auth.now = func() time.Time { return later }
		defer func() { auth.now = time.Now }()

		_, err = auth.Validate(ctx, session.ID)
		require.NoError(t, err)

		refreshed, err := client.AuthSession.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.WithinDuration(t, later.Add(SessionTTL), refreshed.ExpiresAt, time.Second)
	})
}

func TestAuthService_Logout(t *testing.T) {
	client := newTestClient(t)
	users := NewUserService(client)
	auth := NewAuthService(client, users)
	ctx := context.Background()

	createTestUser(t, client, "staff@isprava.com", true, false)

	session, _, err := auth.Login(ctx, "staff@isprava.com")
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx, session.ID))

	_, err = auth.Validate(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Logging out twice is fine.
	assert.NoError(t, auth.Logout(ctx, session.ID))
}

func TestAuthService_PurgeExpired(t *testing.T) {
	client := newTestClient(t)
	users := NewUserService(client)
	auth := NewAuthService(client, users)
	ctx := context.Background()

	createTestUser(t, client, "staff@isprava.com", true, false)

	_, _, err := auth.Login(ctx, "staff@isprava.com")
	require.NoError(t, err)
	stale, _, err := auth.Login(ctx, "staff@isprava.com")
	require.NoError(t, err)

	err = client.AuthSession.UpdateOneID(stale.ID).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	count, err := auth.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
