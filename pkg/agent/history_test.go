package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/chatmessage"
	"github.com/isprava/concierge/pkg/llm"
)

func logEntry(role chatmessage.Role, content, toolName, toolUseID string) *ent.ChatMessage {
	msg := &ent.ChatMessage{Role: role, Content: content}
	if toolName != "" {
		msg.ToolName = &toolName
	}
	if toolUseID != "" {
		msg.ToolUseID = &toolUseID
	}
	return msg
}

func TestFoldMessages(t *testing.T) {
	t.Run("plain alternation", func(t *testing.T) {
		turns := foldMessages([]*ent.ChatMessage{
			logEntry(chatmessage.RoleUser, "hi", "", ""),
			logEntry(chatmessage.RoleAssistant, "hello", "", ""),
			logEntry(chatmessage.RoleUser, "leads in goa?", "", ""),
		})

		require.Len(t, turns, 3)
		assert.Equal(t, llm.RoleUser, turns[0].Role)
		assert.Equal(t, llm.RoleAssistant, turns[1].Role)
		assert.Equal(t, llm.RoleUser, turns[2].Role)
	})

	t.Run("tool activity folds into alternating turns", func(t *testing.T) {
		turns := foldMessages([]*ent.ChatMessage{
			logEntry(chatmessage.RoleUser, "leads in goa?", "", ""),
			logEntry(chatmessage.RoleAssistant, "Let me check.", "", ""),
			logEntry(chatmessage.RoleToolUse, "", "lead_search", "toolu_01"),
			logEntry(chatmessage.RoleToolResult, "3 leads", "lead_search", "toolu_01"),
			logEntry(chatmessage.RoleAssistant, "There are 3 leads.", "", ""),
		})

		require.Len(t, turns, 4)

		// Assistant text and its tool_use share one turn.
		assert.Equal(t, llm.RoleAssistant, turns[1].Role)
		require.Len(t, turns[1].Content, 2)
		assert.Equal(t, llm.BlockText, turns[1].Content[0].Type)
		assert.Equal(t, llm.BlockToolUse, turns[1].Content[1].Type)
		assert.Equal(t, "lead_search", turns[1].Content[1].Name)
		assert.Equal(t, "toolu_01", turns[1].Content[1].ID)

		// The tool_result becomes a user turn.
		assert.Equal(t, llm.RoleUser, turns[2].Role)
		require.Len(t, turns[2].Content, 1)
		assert.Equal(t, llm.BlockToolResult, turns[2].Content[0].Type)
		assert.Equal(t, "toolu_01", turns[2].Content[0].ToolUseID)
		assert.Equal(t, "3 leads", turns[2].Content[0].Content)

		assert.Equal(t, llm.RoleAssistant, turns[3].Role)
	})

	t.Run("contiguous tool uses share a turn", func(t *testing.T) {
		turns := foldMessages([]*ent.ChatMessage{
			logEntry(chatmessage.RoleUser, "compare goa and alibaug", "", ""),
			logEntry(chatmessage.RoleToolUse, "", "lead_search", "toolu_01"),
			logEntry(chatmessage.RoleToolUse, "", "lead_search", "toolu_02"),
			logEntry(chatmessage.RoleToolResult, "goa: 3", "lead_search", "toolu_01"),
			logEntry(chatmessage.RoleToolResult, "alibaug: 5", "lead_search", "toolu_02"),
		})

		require.Len(t, turns, 3)
		assert.Len(t, turns[1].Content, 2)
		assert.Len(t, turns[2].Content, 2)
	})

	t.Run("window cut mid-turn drops leading assistant turns", func(t *testing.T) {
		turns := foldMessages([]*ent.ChatMessage{
			logEntry(chatmessage.RoleAssistant, "orphaned tail", "", ""),
			logEntry(chatmessage.RoleUser, "next question", "", ""),
			logEntry(chatmessage.RoleAssistant, "answer", "", ""),
		})

		require.Len(t, turns, 2)
		assert.Equal(t, llm.RoleUser, turns[0].Role)
	})

	t.Run("empty assistant text skipped", func(t *testing.T) {
		turns := foldMessages([]*ent.ChatMessage{
			logEntry(chatmessage.RoleUser, "hi", "", ""),
			logEntry(chatmessage.RoleAssistant, "", "", ""),
		})
		require.Len(t, turns, 1)
	})
}
