package models

import "github.com/isprava/concierge/ent"

// CreateChatSessionRequest creates a new chat session.
type CreateChatSessionRequest struct {
	Title    string `json:"title,omitempty"`
	Vertical string `json:"vertical,omitempty"`
}

// UpdateSessionTitleRequest renames a chat session.
type UpdateSessionTitleRequest struct {
	Title string `json:"title"`
}

// SessionListResponse is a paginated list of chat sessions.
type SessionListResponse struct {
	Sessions   []*ent.ChatSession `json:"sessions"`
	TotalCount int                `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}
