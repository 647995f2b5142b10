package acl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/enttest"
	"github.com/isprava/concierge/pkg/cache"
	"github.com/isprava/concierge/pkg/models"
	"github.com/isprava/concierge/pkg/services"
)

func newTestEvaluator(t *testing.T) (*Evaluator, *Store, *ent.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.New().String())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })

	c := cache.New(nil, "test", time.Minute)
	store := NewStore(client, c)
	users := services.NewUserService(client)
	return NewEvaluator(store, users, c), store, client
}

func TestEvaluator_Check(t *testing.T) {
	eval, store, client := newTestEvaluator(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, ""))
	_, err := store.UpdateGlobal(ctx, models.UpdateACLConfigRequest{
		PublicTools:   ptr([]string{"list_locations", "get_sales_funnel"}),
		DisabledTools: ptr([]string{"drop_tables"}),
		SuperuserACLs: ptr([]string{"superuser"}),
		ToolACLs: ptr(map[string][]string{
			"get_sales_funnel": {"sales_admin"},
			"lead_search":      {"sales_funnel", "sales_admin"},
		}),
	})
	require.NoError(t, err)

	mustSeedUser(t, client, "sales@isprava.com", []string{"sales_admin"}, true)
	mustSeedUser(t, client, "ops@isprava.com", []string{"operations"}, true)
	mustSeedUser(t, client, "root@isprava.com", []string{"superuser"}, true)
	mustSeedUser(t, client, "gone@isprava.com", []string{"sales_admin"}, false)

	tests := []struct {
		name       string
		tool       string
		email      string
		allowed    bool
		wantReason string
	}{
		{"disabled tool denies everyone", "drop_tables", "root@isprava.com", false, "disabled"},
		{"public tool without entry allows anonymous", "list_locations", "", true, ""},
		{"public tool with entry still enforces", "get_sales_funnel", "", false, "Authentication required"},
		{"anonymous denied on gated tool", "lead_search", "", false, "Authentication required"},
		{"unknown user denied", "lead_search", "stranger@gmail.com", false, "Unknown user"},
		{"deactivated user denied", "get_sales_funnel", "gone@isprava.com", false, "deactivated"},
		{"superuser bypasses tags", "lead_search", "root@isprava.com", true, ""},
		{"matching tag allows", "get_sales_funnel", "sales@isprava.com", true, ""},
		{"OR semantics across required tags", "lead_search", "sales@isprava.com", true, ""},
		{"missing tag denies", "get_sales_funnel", "ops@isprava.com", false, "requires one of"},
		{"untagged tool follows deny default", "unknown_tool", "ops@isprava.com", false, "not permitted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, err := eval.Check(ctx, tt.tool, tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, decision.Allowed)
			if tt.wantReason != "" {
				assert.Contains(t, decision.Reason, tt.wantReason)
			}
		})
	}

	t.Run("open default policy allows untagged tools", func(t *testing.T) {
		_, err := store.UpdateGlobal(ctx, models.UpdateACLConfigRequest{
			DefaultPolicy: ptr("open"),
		})
		require.NoError(t, err)

		decision, err := eval.Check(ctx, "unknown_tool", "ops@isprava.com")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	})
}

func TestEvaluator_FilterForListing(t *testing.T) {
	eval, store, client := newTestEvaluator(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, ""))
	_, err := store.UpdateGlobal(ctx, models.UpdateACLConfigRequest{
		PublicTools:   ptr([]string{"list_locations"}),
		DisabledTools: ptr([]string{"drop_tables"}),
		ToolACLs: ptr(map[string][]string{
			"get_sales_funnel": {"sales_admin"},
		}),
	})
	require.NoError(t, err)

	mustSeedUser(t, client, "sales@isprava.com", []string{"sales_admin"}, true)

	tools := []string{"list_locations", "get_sales_funnel", "drop_tables"}

	t.Run("anonymous listing only drops disabled", func(t *testing.T) {
		visible, err := eval.FilterForListing(ctx, tools, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"list_locations", "get_sales_funnel"}, visible)
	})

	t.Run("user listing applies full rules", func(t *testing.T) {
		visible, err := eval.FilterForListing(ctx, tools, "sales@isprava.com")
		require.NoError(t, err)
		assert.Equal(t, []string{"list_locations", "get_sales_funnel"}, visible)
	})
}

func TestEvaluator_UserCacheInvalidation(t *testing.T) {
	eval, store, client := newTestEvaluator(t)
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, ""))
	_, err := store.UpdateGlobal(ctx, models.UpdateACLConfigRequest{
		ToolACLs: ptr(map[string][]string{"lead_search": {"sales_funnel"}}),
	})
	require.NoError(t, err)

	mustSeedUser(t, client, "new@isprava.com", []string{}, true)

	decision, err := eval.Check(ctx, "lead_search", "new@isprava.com")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)

	// Grant the tag; the cached record still denies until invalidated.
	users := services.NewUserService(client)
	user, err := users.GetByEmail(ctx, "new@isprava.com")
	require.NoError(t, err)
	_, err = users.SetACLs(ctx, user.ID, []string{"sales_funnel"})
	require.NoError(t, err)

	decision, err = eval.Check(ctx, "lead_search", "new@isprava.com")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)

	eval.InvalidateUser(ctx, "new@isprava.com")

	decision, err = eval.Check(ctx, "lead_search", "new@isprava.com")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func mustSeedUser(t *testing.T, client *ent.Client, email string, acls []string, active bool) {
	t.Helper()
	_, err := client.StaffUser.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetName("Test").
		SetAcls(acls).
		SetActive(active).
		Save(context.Background())
	require.NoError(t, err)
}

func ptr[T any](v T) *T {
	return &v
}
