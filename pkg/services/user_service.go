package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/staffuser"
)

// UserService reads and mutates the staff user directory.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// GetByEmail looks up a staff user by canonical (lowercase) email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*ent.StaffUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, NewValidationError("email", "required")
	}

	user, err := s.client.StaffUser.Query().
		Where(staffuser.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// Get retrieves a staff user by ID.
func (s *UserService) Get(ctx context.Context, userID string) (*ent.StaffUser, error) {
	user, err := s.client.StaffUser.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// List returns all staff users ordered by email.
func (s *UserService) List(ctx context.Context) ([]*ent.StaffUser, error) {
	users, err := s.client.StaffUser.Query().
		Order(ent.Asc(staffuser.FieldEmail)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetACLs replaces a user's ACL tag set.
func (s *UserService) SetACLs(ctx context.Context, userID string, acls []string) (*ent.StaffUser, error) {
	if acls == nil {
		acls = []string{}
	}

	user, err := s.client.StaffUser.UpdateOneID(userID).
		SetAcls(acls).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user acls: %w", err)
	}

	return user, nil
}
