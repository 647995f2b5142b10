package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/pkg/models"
)

func TestMessageService_Append(t *testing.T) {
	client := newTestClient(t)
	sessions := NewSessionService(client)
	messages := NewMessageService(client)
	ctx := context.Background()

	session, err := sessions.Create(ctx, "user-1", models.CreateChatSessionRequest{})
	require.NoError(t, err)

	t.Run("assigns sequences from zero", func(t *testing.T) {
		first, err := messages.Append(ctx, session.ID, models.AppendMessage{Role: "user", Content: "hi"})
		require.NoError(t, err)
		assert.Equal(t, 0, first.Sequence)

		second, err := messages.Append(ctx, session.ID, models.AppendMessage{Role: "assistant", Content: "hello"})
		require.NoError(t, err)
		assert.Equal(t, 1, second.Sequence)
	})

	t.Run("persists tool fields", func(t *testing.T) {
		msg, err := messages.Append(ctx, session.ID, models.AppendMessage{
			Role:      "tool_use",
			Content:   "",
			ToolName:  "lead_search",
			ToolUseID: "toolu_01",
			ToolInput: map[string]any{"location": "goa"},
		})
		require.NoError(t, err)
		require.NotNil(t, msg.ToolName)
		assert.Equal(t, "lead_search", *msg.ToolName)
		require.NotNil(t, msg.ToolUseID)
		assert.Equal(t, "toolu_01", *msg.ToolUseID)
		assert.Equal(t, "goa", msg.ToolInput["location"])
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := messages.Append(ctx, session.ID, models.AppendMessage{Role: "system", Content: "x"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing session id", func(t *testing.T) {
		_, err := messages.Append(ctx, "", models.AppendMessage{Role: "user", Content: "x"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestMessageService_GetRecent(t *testing.T) {
	client := newTestClient(t)
	sessions := NewSessionService(client)
	messages := NewMessageService(client)
	ctx := context.Background()

	session, err := sessions.Create(ctx, "user-1", models.CreateChatSessionRequest{})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err := messages.Append(ctx, session.ID, models.AppendMessage{
			Role:    "user",
			Content: fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	t.Run("returns last N in chronological order", func(t *testing.T) {
		recent, err := messages.GetRecent(ctx, session.ID, 3)
		require.NoError(t, err)
		require.Len(t, recent, 3)
		assert.Equal(t, "message 2", recent[0].Content)
		assert.Equal(t, "message 4", recent[2].Content)
		assert.Less(t, recent[0].Sequence, recent[2].Sequence)
	})

	t.Run("defaults the window when limit is zero", func(t *testing.T) {
		recent, err := messages.GetRecent(ctx, session.ID, 0)
		require.NoError(t, err)
		assert.Len(t, recent, 5)
	})

	t.Run("list returns the full log", func(t *testing.T) {
		all, err := messages.ListBySession(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, all, 5)
		assert.Equal(t, "message 0", all[0].Content)
	})
}
