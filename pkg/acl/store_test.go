package acl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/pkg/models"
)

func TestStore_Seed(t *testing.T) {
	t.Run("seeds restrictive defaults without a file", func(t *testing.T) {
		_, store, _ := newTestEvaluator(t)
		ctx := context.Background()

		require.NoError(t, store.Seed(ctx, ""))

		cfg, err := store.Effective(ctx)
		require.NoError(t, err)
		assert.Equal(t, PolicyDeny, cfg.DefaultPolicy)
		assert.Empty(t, cfg.PublicTools)
		assert.Empty(t, cfg.ToolACLs)
	})

	t.Run("seeds from yaml file", func(t *testing.T) {
		_, store, _ := newTestEvaluator(t)
		ctx := context.Background()

		seed := filepath.Join(t.TempDir(), "acl.yaml")
		require.NoError(t, os.WriteFile(seed, []byte(`
default_policy: open
public_tools:
  - list_locations
superuser_acls:
  - superuser
tool_acls:
  get_sales_funnel:
    - sales_admin
`), 0o600))

		require.NoError(t, store.Seed(ctx, seed))

		cfg, err := store.Effective(ctx)
		require.NoError(t, err)
		assert.Equal(t, PolicyOpen, cfg.DefaultPolicy)
		assert.Equal(t, []string{"list_locations"}, cfg.PublicTools)
		assert.Equal(t, []string{"sales_admin"}, cfg.ToolACLs["get_sales_funnel"])
	})

	t.Run("never overwrites an existing row", func(t *testing.T) {
		_, store, _ := newTestEvaluator(t)
		ctx := context.Background()

		require.NoError(t, store.Seed(ctx, ""))
		_, err := store.UpdateGlobal(ctx, models.UpdateACLConfigRequest{
			DefaultPolicy: ptr("open"),
		})
		require.NoError(t, err)

		require.NoError(t, store.Seed(ctx, ""))

		cfg, err := store.Effective(ctx)
		require.NoError(t, err)
		assert.Equal(t, PolicyOpen, cfg.DefaultPolicy)
	})

	t.Run("missing seed file is an error", func(t *testing.T) {
		_, store, _ := newTestEvaluator(t)
		assert.Error(t, store.Seed(context.Background(), "/nonexistent/acl.yaml"))
	})
}

func TestStore_ToolACLMutations(t *testing.T) {
	_, store, _ := newTestEvaluator(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, ""))

	t.Run("upsert adds an entry", func(t *testing.T) {
		cfg, err := store.UpsertToolACLs(ctx, "lead_search", []string{"sales_funnel"})
		require.NoError(t, err)
		assert.Equal(t, []string{"sales_funnel"}, cfg.ToolACLs["lead_search"])
	})

	t.Run("upsert replaces an entry", func(t *testing.T) {
		cfg, err := store.UpsertToolACLs(ctx, "lead_search", []string{"sales_admin"})
		require.NoError(t, err)
		assert.Equal(t, []string{"sales_admin"}, cfg.ToolACLs["lead_search"])
	})

	t.Run("delete removes an entry", func(t *testing.T) {
		cfg, err := store.DeleteToolACLs(ctx, "lead_search")
		require.NoError(t, err)
		assert.NotContains(t, cfg.ToolACLs, "lead_search")
	})

	t.Run("delete of unconfigured tool errors", func(t *testing.T) {
		_, err := store.DeleteToolACLs(ctx, "lead_search")
		assert.ErrorIs(t, err, ErrToolNotConfigured)
	})

	t.Run("upsert requires a tool name", func(t *testing.T) {
		_, err := store.UpsertToolACLs(ctx, "", []string{"x"})
		assert.Error(t, err)
	})
}

func TestStore_EffectivePrefersCacheMirror(t *testing.T) {
	_, store, _ := newTestEvaluator(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, ""))
	_, err := store.UpdateGlobal(ctx, models.UpdateACLConfigRequest{
		PublicTools: ptr([]string{"list_locations"}),
	})
	require.NoError(t, err)

	// The mirror written by the mutation serves the next read.
	cfg, err := store.Effective(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"list_locations"}, cfg.PublicTools)
}
