package acl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/aclconfig"
	"github.com/isprava/concierge/pkg/cache"
	"github.com/isprava/concierge/pkg/models"
)

const (
	// GlobalConfigID is the singleton row holding the canonical policy.
	GlobalConfigID = "global"

	configCacheKey = "acl:config"
	configCacheTTL = 5 * time.Minute
)

// Store persists the canonical ACL config and mirrors it into the shared
// cache on every mutation, so evaluators on other replicas converge within
// the cache grace window.
type Store struct {
	client *ent.Client
	cache  *cache.Cache
}

// NewStore creates a new Store
func NewStore(client *ent.Client, c *cache.Cache) *Store {
	return &Store{client: client, cache: c}
}

// Seed creates the global config row if it does not exist. When path is
// non-empty the initial policy is read from the yaml file, otherwise the
// deny-by-default policy is used. An existing row is never overwritten.
func (s *Store) Seed(ctx context.Context, path string) error {
	exists, err := s.client.ACLConfig.Query().
		Where(aclconfig.IDEQ(GlobalConfigID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check acl config: %w", err)
	}
	if exists {
		return nil
	}

	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read acl seed file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse acl seed file: %w", err)
		}
		cfg.normalize()
	}

	_, err = s.client.ACLConfig.Create().
		SetID(GlobalConfigID).
		SetDefaultPolicy(aclconfig.DefaultPolicy(cfg.DefaultPolicy)).
		SetPublicTools(cfg.PublicTools).
		SetDisabledTools(cfg.DisabledTools).
		SetSuperuserAcls(cfg.SuperuserACLs).
		SetToolAcls(cfg.ToolACLs).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Another replica seeded first.
			return nil
		}
		return fmt.Errorf("failed to seed acl config: %w", err)
	}

	slog.Info("Seeded ACL config", "seed_file", path)
	s.mirror(ctx, cfg)
	return nil
}

// Effective returns the policy evaluators should enforce. The shared cache
// snapshot is preferred; on miss the database row is loaded and mirrored.
func (s *Store) Effective(ctx context.Context) (*Config, error) {
	var cached Config
	if ok, err := s.cache.Get(ctx, configCacheKey, &cached); err == nil && ok {
		cached.normalize()
		return &cached, nil
	}

	cfg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.mirror(ctx, cfg)
	return cfg, nil
}

// UpdateGlobal applies a partial update to the global policy.
func (s *Store) UpdateGlobal(ctx context.Context, req models.UpdateACLConfigRequest) (*Config, error) {
	update := s.client.ACLConfig.UpdateOneID(GlobalConfigID).
		SetUpdatedAt(time.Now())

	if req.DefaultPolicy != nil {
		policy := aclconfig.DefaultPolicy(*req.DefaultPolicy)
		if err := aclconfig.DefaultPolicyValidator(policy); err != nil {
			return nil, fmt.Errorf("invalid default_policy %q", *req.DefaultPolicy)
		}
		update.SetDefaultPolicy(policy)
	}
	if req.PublicTools != nil {
		update.SetPublicTools(*req.PublicTools)
	}
	if req.DisabledTools != nil {
		update.SetDisabledTools(*req.DisabledTools)
	}
	if req.SuperuserACLs != nil {
		update.SetSuperuserAcls(*req.SuperuserACLs)
	}
	if req.ToolACLs != nil {
		update.SetToolAcls(*req.ToolACLs)
	}

	if err := update.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update acl config: %w", err)
	}

	return s.reloadAndMirror(ctx)
}

// UpsertToolACLs sets the required tag list for one tool.
func (s *Store) UpsertToolACLs(ctx context.Context, tool string, tags []string) (*Config, error) {
	if tool == "" {
		return nil, fmt.Errorf("tool name is required")
	}
	if tags == nil {
		tags = []string{}
	}

	cfg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	cfg.ToolACLs[tool] = tags

	return s.saveToolACLs(ctx, cfg.ToolACLs)
}

// DeleteToolACLs removes a tool's required tag list.
func (s *Store) DeleteToolACLs(ctx context.Context, tool string) (*Config, error) {
	cfg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := cfg.ToolACLs[tool]; !ok {
		return nil, ErrToolNotConfigured
	}
	delete(cfg.ToolACLs, tool)

	return s.saveToolACLs(ctx, cfg.ToolACLs)
}

func (s *Store) saveToolACLs(ctx context.Context, toolACLs map[string][]string) (*Config, error) {
	err := s.client.ACLConfig.UpdateOneID(GlobalConfigID).
		SetToolAcls(toolACLs).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update tool acls: %w", err)
	}
	return s.reloadAndMirror(ctx)
}

func (s *Store) load(ctx context.Context) (*Config, error) {
	row, err := s.client.ACLConfig.Query().
		Where(aclconfig.IDEQ(GlobalConfigID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// Pre-seed window; enforce the restrictive default.
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to load acl config: %w", err)
	}

	cfg := &Config{
		DefaultPolicy: string(row.DefaultPolicy),
		PublicTools:   row.PublicTools,
		DisabledTools: row.DisabledTools,
		SuperuserACLs: row.SuperuserAcls,
		ToolACLs:      row.ToolAcls,
	}
	cfg.normalize()
	return cfg, nil
}

func (s *Store) reloadAndMirror(ctx context.Context) (*Config, error) {
	cfg, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	s.mirror(ctx, cfg)
	return cfg, nil
}

func (s *Store) mirror(ctx context.Context, cfg *Config) {
	if err := s.cache.Set(ctx, configCacheKey, cfg, configCacheTTL); err != nil {
		slog.Warn("Failed to mirror ACL config to cache", "error", err)
	}
}
