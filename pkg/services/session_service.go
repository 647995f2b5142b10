package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/chatsession"
	"github.com/isprava/concierge/pkg/config"
	"github.com/isprava/concierge/pkg/models"
)

// SessionService manages chat session lifecycle. Every read and write is
// scoped to the owning user; a session belonging to someone else behaves
// exactly like a missing one.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// Create creates a new chat session for a user.
func (s *SessionService) Create(ctx context.Context, userID string, req models.CreateChatSessionRequest) (*ent.ChatSession, error) {
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	vertical := strings.ToLower(strings.TrimSpace(req.Vertical))
	if !config.ValidVertical(vertical) {
		return nil, NewValidationError("vertical", fmt.Sprintf("unknown vertical %q", req.Vertical))
	}

	builder := s.client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetUserID(userID)
	if vertical != "" {
		builder.SetVertical(vertical)
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		builder.SetTitle(title)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	return session, nil
}

// Get retrieves a session owned by the given user.
func (s *SessionService) Get(ctx context.Context, userID, sessionID string) (*ent.ChatSession, error) {
	session, err := s.client.ChatSession.Query().
		Where(
			chatsession.IDEQ(sessionID),
			chatsession.UserIDEQ(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}

	return session, nil
}

// List lists a user's sessions, most recently active first.
func (s *SessionService) List(ctx context.Context, userID string, limit, offset int) (*models.SessionListResponse, error) {
	query := s.client.ChatSession.Query().
		Where(chatsession.UserIDEQ(userID))

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count chat sessions: %w", err)
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(chatsession.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateTitle renames a session owned by the given user.
func (s *SessionService) UpdateTitle(ctx context.Context, userID, sessionID, title string) (*ent.ChatSession, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, NewValidationError("title", "required")
	}

	count, err := s.client.ChatSession.Update().
		Where(
			chatsession.IDEQ(sessionID),
			chatsession.UserIDEQ(userID),
		).
		SetTitle(title).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update session title: %w", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	return s.Get(ctx, userID, sessionID)
}

// Delete removes a session owned by the given user. Messages cascade.
func (s *SessionService) Delete(ctx context.Context, userID, sessionID string) error {
	count, err := s.client.ChatSession.Delete().
		Where(
			chatsession.IDEQ(sessionID),
			chatsession.UserIDEQ(userID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete chat session: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}

	return nil
}

// Touch bumps a session's updated_at so it sorts to the top of listings.
func (s *SessionService) Touch(ctx context.Context, sessionID string) error {
	err := s.client.ChatSession.UpdateOneID(sessionID).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch chat session: %w", err)
	}
	return nil
}
