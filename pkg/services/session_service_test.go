package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/pkg/models"
)

func TestSessionService_Create(t *testing.T) {
	client := newTestClient(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	t.Run("creates session with defaults", func(t *testing.T) {
		session, err := svc.Create(ctx, "user-1", models.CreateChatSessionRequest{})
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, "New chat", session.Title)
		assert.Empty(t, session.Vertical)
	})

	t.Run("creates session with vertical", func(t *testing.T) {
		session, err := svc.Create(ctx, "user-1", models.CreateChatSessionRequest{Vertical: "Lohono"})
		require.NoError(t, err)
		assert.Equal(t, "lohono", session.Vertical)
	})

	t.Run("creates session with explicit title", func(t *testing.T) {
		session, err := svc.Create(ctx, "user-1", models.CreateChatSessionRequest{Title: "  Goa pipeline  "})
		require.NoError(t, err)
		assert.Equal(t, "Goa pipeline", session.Title)
	})

	t.Run("rejects unknown vertical", func(t *testing.T) {
		_, err := svc.Create(ctx, "user-1", models.CreateChatSessionRequest{Vertical: "acme"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing user", func(t *testing.T) {
		_, err := svc.Create(ctx, "", models.CreateChatSessionRequest{})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_OwnerScoping(t *testing.T) {
	client := newTestClient(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	session, err := svc.Create(ctx, "owner", models.CreateChatSessionRequest{})
	require.NoError(t, err)

	t.Run("owner can read", func(t *testing.T) {
		got, err := svc.Get(ctx, "owner", session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)
	})

	t.Run("other user gets not found", func(t *testing.T) {
		_, err := svc.Get(ctx, "intruder", session.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other user cannot rename", func(t *testing.T) {
		_, err := svc.UpdateTitle(ctx, "intruder", session.ID, "stolen")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("other user cannot delete", func(t *testing.T) {
		err := svc.Delete(ctx, "intruder", session.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Get(ctx, "owner", session.ID)
		require.NoError(t, err)
	})
}

func TestSessionService_List(t *testing.T) {
	client := newTestClient(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	first, err := svc.Create(ctx, "user-1", models.CreateChatSessionRequest{})
	require.NoError(t, err)
	second, err := svc.Create(ctx, "user-1", models.CreateChatSessionRequest{})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-2", models.CreateChatSessionRequest{})
	require.NoError(t, err)

	t.Run("lists only the user's sessions", func(t *testing.T) {
		resp, err := svc.List(ctx, "user-1", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Len(t, resp.Sessions, 2)
	})

	t.Run("touched session sorts first", func(t *testing.T) {
		// Force a visible updated_at gap.
		err := client.ChatSession.UpdateOneID(first.ID).
			SetUpdatedAt(time.Now().Add(time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		resp, err := svc.List(ctx, "user-1", 0, 0)
		require.NoError(t, err)
		require.Len(t, resp.Sessions, 2)
		assert.Equal(t, first.ID, resp.Sessions[0].ID)
		assert.Equal(t, second.ID, resp.Sessions[1].ID)
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := svc.List(ctx, "user-1", 1, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
		assert.Len(t, resp.Sessions, 1)
	})
}

func TestSessionService_UpdateTitle(t *testing.T) {
	client := newTestClient(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	session, err := svc.Create(ctx, "user-1", models.CreateChatSessionRequest{})
	require.NoError(t, err)

	t.Run("renames", func(t *testing.T) {
		updated, err := svc.UpdateTitle(ctx, "user-1", session.ID, "Goa villas for July")
		require.NoError(t, err)
		assert.Equal(t, "Goa villas for July", updated.Title)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := svc.UpdateTitle(ctx, "user-1", session.ID, "   ")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestSessionService_DeleteCascadesMessages(t *testing.T) {
	client := newTestClient(t)
	sessions := NewSessionService(client)
	messages := NewMessageService(client)
	ctx := context.Background()

	session, err := sessions.Create(ctx, "user-1", models.CreateChatSessionRequest{})
	require.NoError(t, err)

	_, err = messages.Append(ctx, session.ID, models.AppendMessage{Role: "user", Content: "hello"})
	require.NoError(t, err)

	require.NoError(t, sessions.Delete(ctx, "user-1", session.ID))

	remaining, err := client.ChatMessage.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining)
}
