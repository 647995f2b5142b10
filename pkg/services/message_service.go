package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/chatmessage"
	"github.com/isprava/concierge/pkg/models"
)

// appendRetries bounds retry attempts when two writers race for the same
// per-session sequence number.
const appendRetries = 3

// MessageService manages the append-only conversation log.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// Append writes one message at the next sequence number for the session.
// The unique (session_id, sequence) index makes concurrent appends lose
// cleanly; the loser retries with a fresh sequence.
func (s *MessageService) Append(ctx context.Context, sessionID string, msg models.AppendMessage) (*ent.ChatMessage, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	role := chatmessage.Role(msg.Role)
	if err := chatmessage.RoleValidator(role); err != nil {
		return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", msg.Role))
	}

	var lastErr error
	for attempt := 0; attempt < appendRetries; attempt++ {
		created, err := s.appendOnce(ctx, sessionID, role, msg)
		if err == nil {
			return created, nil
		}
		if !ent.IsConstraintError(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed to append message after %d attempts: %w", appendRetries, lastErr)
}

func (s *MessageService) appendOnce(ctx context.Context, sessionID string, role chatmessage.Role, msg models.AppendMessage) (*ent.ChatMessage, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var next int
	last, err := tx.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Desc(chatmessage.FieldSequence)).
		First(ctx)
	switch {
	case err == nil:
		next = last.Sequence + 1
	case ent.IsNotFound(err):
		next = 0
	default:
		return nil, fmt.Errorf("failed to read last sequence: %w", err)
	}

	builder := tx.ChatMessage.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRole(role).
		SetContent(msg.Content).
		SetSequence(next)

	if msg.ToolName != "" {
		builder.SetToolName(msg.ToolName)
	}
	if msg.ToolUseID != "" {
		builder.SetToolUseID(msg.ToolUseID)
	}
	if msg.ToolInput != nil {
		builder.SetToolInput(msg.ToolInput)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit message append: %w", err)
	}

	return created, nil
}

// GetRecent returns the last limit messages for a session in sequence order.
func (s *MessageService) GetRecent(ctx context.Context, sessionID string, limit int) ([]*ent.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Desc(chatmessage.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent messages: %w", err)
	}

	// Query runs newest-first for the limit; callers want chronological.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// ListBySession returns the full conversation log in sequence order.
func (s *MessageService) ListBySession(ctx context.Context, sessionID string) ([]*ent.ChatMessage, error) {
	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.SessionIDEQ(sessionID)).
		Order(ent.Asc(chatmessage.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
