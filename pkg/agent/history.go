package agent

import (
	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/chatmessage"
	"github.com/isprava/concierge/pkg/llm"
)

// foldMessages reconstructs the LLM-facing turn list from the persisted log.
// The log stores tool activity as flat rows; the messages API wants strictly
// alternating user/assistant turns, so contiguous tool_use rows attach to
// the current assistant turn and contiguous tool_result rows to the current
// user turn. A role boundary flushes and flips.
func foldMessages(log []*ent.ChatMessage) []llm.Message {
	var turns []llm.Message

	appendBlock := func(role string, block llm.ContentBlock) {
		if len(turns) == 0 || turns[len(turns)-1].Role != role {
			turns = append(turns, llm.Message{Role: role})
		}
		last := &turns[len(turns)-1]
		last.Content = append(last.Content, block)
	}

	for _, msg := range log {
		switch msg.Role {
		case chatmessage.RoleUser:
			appendBlock(llm.RoleUser, llm.ContentBlock{
				Type: llm.BlockText,
				Text: msg.Content,
			})
		case chatmessage.RoleAssistant:
			if msg.Content == "" {
				continue
			}
			appendBlock(llm.RoleAssistant, llm.ContentBlock{
				Type: llm.BlockText,
				Text: msg.Content,
			})
		case chatmessage.RoleToolUse:
			block := llm.ContentBlock{
				Type:  llm.BlockToolUse,
				Input: msg.ToolInput,
			}
			if msg.ToolUseID != nil {
				block.ID = *msg.ToolUseID
			}
			if msg.ToolName != nil {
				block.Name = *msg.ToolName
			}
			appendBlock(llm.RoleAssistant, block)
		case chatmessage.RoleToolResult:
			block := llm.ContentBlock{
				Type:    llm.BlockToolResult,
				Content: msg.Content,
			}
			if msg.ToolUseID != nil {
				block.ToolUseID = *msg.ToolUseID
			}
			appendBlock(llm.RoleUser, block)
		}
	}

	// Windowing can cut mid-turn; the API requires the list to open with a
	// user turn.
	for len(turns) > 0 && turns[0].Role != llm.RoleUser {
		turns = turns[1:]
	}
	return turns
}
