package models

// ChatRequest is a user turn submitted to a chat session.
type ChatRequest struct {
	Message  string `json:"message"`
	Vertical string `json:"vertical,omitempty"`
}

// AppendMessage is the persistence-layer input for a conversation entry.
type AppendMessage struct {
	Role      string
	Content   string
	ToolName  string
	ToolUseID string
	ToolInput map[string]any
}

// ToolInvocation records one tool call made while answering a turn.
type ToolInvocation struct {
	Name    string         `json:"name"`
	Input   map[string]any `json:"input,omitempty"`
	Output  string         `json:"output,omitempty"`
	IsError bool           `json:"is_error,omitempty"`
}

// ChatResult is the outcome of a completed (non-streaming) chat turn.
type ChatResult struct {
	Text      string           `json:"text"`
	ToolsUsed []ToolInvocation `json:"tools_used,omitempty"`
	Cached    bool             `json:"cached"`
}

// Stream event types emitted over SSE while a turn is being answered.
const (
	EventTextDelta = "text_delta"
	EventToolStart = "tool_start"
	EventToolEnd   = "tool_end"
	EventDone      = "done"
	EventError     = "error"
)

// StreamEvent is one SSE frame payload.
type StreamEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// TextDeltaData carries an incremental chunk of assistant text.
type TextDeltaData struct {
	Text string `json:"text"`
}

// ToolStartData announces a tool call before it runs.
type ToolStartData struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// ToolEndData reports a completed tool call.
type ToolEndData struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// DoneData terminates a stream with the final accumulated result.
type DoneData struct {
	Text string `json:"assistantText"`
}

// ErrorData terminates a stream with a user-presentable error.
type ErrorData struct {
	Message string `json:"message"`
}
