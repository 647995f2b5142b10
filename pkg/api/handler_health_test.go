package api

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/pkg/breaker"
	"github.com/isprava/concierge/pkg/database"
)

func TestHealthHandler(t *testing.T) {
	fx := newServerFixture(t, nil)

	db, err := sql.Open("sqlite3", "file:"+uuid.New().String()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	fx.server.dbClient = database.NewClientFromEnt(fx.client, db)

	t.Run("healthy without auth", func(t *testing.T) {
		rec := fx.do(http.MethodGet, "/api/health", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		health := decodeJSON[HealthResponse](t, rec)
		assert.Equal(t, healthStatusHealthy, health.Status)
		assert.Equal(t, breaker.StatusClosed, health.Circuits.Claude.State)
		assert.Equal(t, breaker.StatusClosed, health.Circuits.Database.State)
		assert.Empty(t, health.Circuits.MCP)
		assert.NotEmpty(t, health.Version)
	})

	t.Run("database failure is unhealthy", func(t *testing.T) {
		require.NoError(t, db.Close())

		rec := fx.do(http.MethodGet, "/api/health", "", nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		health := decodeJSON[HealthResponse](t, rec)
		assert.Equal(t, healthStatusUnhealthy, health.Status)
	})
}
