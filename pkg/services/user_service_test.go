package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetByEmail(t *testing.T) {
	client := newTestClient(t)
	svc := NewUserService(client)
	ctx := context.Background()

	seeded := createTestUser(t, client, "priya@lohono.com", true, false)

	t.Run("finds by canonical email", func(t *testing.T) {
		user, err := svc.GetByEmail(ctx, "priya@lohono.com")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		user, err := svc.GetByEmail(ctx, " Priya@Lohono.COM ")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, user.ID)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.GetByEmail(ctx, "nobody@lohono.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := svc.GetByEmail(ctx, "")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestUserService_SetACLs(t *testing.T) {
	client := newTestClient(t)
	svc := NewUserService(client)
	ctx := context.Background()

	seeded := createTestUser(t, client, "ops@isprava.com", true, false)

	t.Run("replaces tag set", func(t *testing.T) {
		user, err := svc.SetACLs(ctx, seeded.ID, []string{"sales_funnel", "finance"})
		require.NoError(t, err)
		assert.Equal(t, []string{"sales_funnel", "finance"}, user.Acls)
	})

	t.Run("nil clears to empty", func(t *testing.T) {
		user, err := svc.SetACLs(ctx, seeded.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, user.Acls)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.SetACLs(ctx, "missing", []string{"x"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
