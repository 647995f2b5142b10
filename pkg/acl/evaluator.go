package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/pkg/cache"
	"github.com/isprava/concierge/pkg/services"
)

// ErrToolNotConfigured is returned when deleting ACLs for a tool that has none.
var ErrToolNotConfigured = errors.New("tool has no acl entry")

const (
	userCachePrefix = "acl:user:"
	userCacheTTL    = 5 * time.Minute
)

// Decision is the outcome of an access check. Reason is user-presentable
// and doubles as the tool result text on deny.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// UserDirectory resolves staff users by email.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*ent.StaffUser, error)
}

// userRecord is the cached projection of a staff user that access checks
// need. Found=false caches the negative lookup.
type userRecord struct {
	Found  bool     `json:"found"`
	Active bool     `json:"active"`
	ACLs   []string `json:"acls"`
}

// Evaluator answers "may this user invoke this tool" against the effective
// config snapshot and a cached per-user record.
type Evaluator struct {
	store *Store
	users UserDirectory
	cache *cache.Cache
}

// NewEvaluator creates a new Evaluator
func NewEvaluator(store *Store, users UserDirectory, c *cache.Cache) *Evaluator {
	return &Evaluator{store: store, users: users, cache: c}
}

// Check evaluates tool access for a user. The empty email means the caller
// is unauthenticated. Rules apply in order:
//
//  1. disabled tools deny everyone
//  2. public tools without an explicit acl entry allow everyone
//  3. everything else requires authentication
//  4. unknown or deactivated users are denied
//  5. superuser tags bypass per-tool checks
//  6. tools without required tags follow the default policy
//  7. otherwise any one matching tag suffices
func (e *Evaluator) Check(ctx context.Context, toolName, userEmail string) (Decision, error) {
	cfg, err := e.store.Effective(ctx)
	if err != nil {
		return deny("access check unavailable"), err
	}

	if cfg.isDisabled(toolName) {
		return deny(fmt.Sprintf("Tool %q is disabled", toolName)), nil
	}

	required, hasEntry := cfg.ToolACLs[toolName]
	if cfg.isPublic(toolName) && !hasEntry {
		return allow(), nil
	}

	email := normalizeEmail(userEmail)
	if email == "" {
		return deny("Authentication required"), nil
	}

	user, err := e.lookupUser(ctx, email)
	if err != nil {
		return deny("access check unavailable"), err
	}
	if !user.Found {
		return deny(fmt.Sprintf("Unknown user %q", email)), nil
	}
	if !user.Active {
		return deny("Account is deactivated"), nil
	}

	if intersects(user.ACLs, cfg.SuperuserACLs) {
		return allow(), nil
	}

	if len(required) == 0 {
		if cfg.DefaultPolicy == PolicyOpen {
			return allow(), nil
		}
		return deny(fmt.Sprintf("Tool %q is not permitted for your account", toolName)), nil
	}

	if intersects(user.ACLs, required) {
		return allow(), nil
	}
	return deny(fmt.Sprintf("Tool %q requires one of: %s", toolName, strings.Join(required, ", "))), nil
}

// FilterForListing trims a tool list for discovery. Disabled tools are
// always removed. Without a user the remainder passes through; enforcement
// happens again at call time.
func (e *Evaluator) FilterForListing(ctx context.Context, tools []string, userEmail string) ([]string, error) {
	cfg, err := e.store.Effective(ctx)
	if err != nil {
		return nil, err
	}

	visible := make([]string, 0, len(tools))
	if normalizeEmail(userEmail) == "" {
		for _, tool := range tools {
			if !cfg.isDisabled(tool) {
				visible = append(visible, tool)
			}
		}
		return visible, nil
	}

	for _, tool := range tools {
		decision, err := e.Check(ctx, tool, userEmail)
		if err != nil {
			return nil, err
		}
		if decision.Allowed {
			visible = append(visible, tool)
		}
	}
	return visible, nil
}

// InvalidateUser drops a user's cached record after an admin edit.
func (e *Evaluator) InvalidateUser(ctx context.Context, email string) {
	e.cache.Delete(ctx, userCachePrefix+normalizeEmail(email))
}

func (e *Evaluator) lookupUser(ctx context.Context, email string) (*userRecord, error) {
	key := userCachePrefix + email

	var cached userRecord
	if ok, err := e.cache.Get(ctx, key, &cached); err == nil && ok {
		return &cached, nil
	}

	record := &userRecord{}
	user, err := e.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		record.Found = true
		record.Active = user.Active
		record.ACLs = user.Acls
	case errors.Is(err, services.ErrNotFound):
		// Negative lookups are cached too.
	default:
		return nil, err
	}

	if err := e.cache.Set(ctx, key, record, userCacheTTL); err != nil {
		slog.Warn("Failed to cache user record", "email", email, "error", err)
	}
	return record, nil
}
