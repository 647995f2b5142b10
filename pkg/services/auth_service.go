package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/authsession"
)

// SessionTTL is the sliding inactivity window for bearer tokens. Each
// successful Validate pushes the expiry forward by this much.
const SessionTTL = 24 * time.Hour

// AuthService issues and validates bearer tokens for staff users.
type AuthService struct {
	client *ent.Client
	users  *UserService
	now    func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(client *ent.Client, users *UserService) *AuthService {
	return &AuthService{
		client: client,
		users:  users,
		now:    time.Now,
	}
}

// Login exchanges a verified staff email for a bearer token. Unknown or
// inactive users are rejected with ErrForbidden.
func (s *AuthService) Login(ctx context.Context, email string) (*ent.AuthSession, *ent.StaffUser, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == ErrNotFound {
			return nil, nil, ErrForbidden
		}
		return nil, nil, err
	}
	if !user.Active {
		return nil, nil, ErrForbidden
	}

	token, err := newToken()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token: %w", err)
	}

	nowTime := s.now()
	session, err := s.client.AuthSession.Create().
		SetID(token).
		SetUserID(user.ID).
		SetCreatedAt(nowTime).
		SetExpiresAt(nowTime.Add(SessionTTL)).
		SetLastAccessedAt(nowTime).
		Save(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create auth session: %w", err)
	}

	return session, user, nil
}

// Validate resolves a bearer token to its staff user and slides the expiry
// window forward. Expired tokens are deleted eagerly.
func (s *AuthService) Validate(ctx context.Context, token string) (*ent.StaffUser, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	session, err := s.client.AuthSession.Get(ctx, token)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get auth session: %w", err)
	}

	nowTime := s.now()
	if !session.ExpiresAt.After(nowTime) {
		_ = s.client.AuthSession.DeleteOneID(token).Exec(ctx)
		return nil, ErrNotFound
	}

	user, err := s.users.Get(ctx, session.UserID)
	if err != nil {
		if err == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !user.Active {
		return nil, ErrForbidden
	}

	// Sliding refresh. Throttled to once a minute so hot sessions do not
	// turn every request into a write.
	if nowTime.Sub(session.LastAccessedAt) > time.Minute {
		err = s.client.AuthSession.UpdateOneID(token).
			SetExpiresAt(nowTime.Add(SessionTTL)).
			SetLastAccessedAt(nowTime).
			Exec(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to refresh auth session: %w", err)
		}
	}

	return user, nil
}

// Logout revokes a bearer token. Revoking an unknown token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	err := s.client.AuthSession.DeleteOneID(token).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete auth session: %w", err)
	}
	return nil
}

// PurgeExpired deletes all expired auth sessions and returns the count.
func (s *AuthService) PurgeExpired(ctx context.Context) (int, error) {
	count, err := s.client.AuthSession.Delete().
		Where(authsession.ExpiresAtLT(s.now())).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	return count, nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
