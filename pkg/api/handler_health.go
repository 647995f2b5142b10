package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/isprava/concierge/pkg/breaker"
	"github.com/isprava/concierge/pkg/database"
	"github.com/isprava/concierge/pkg/mcp"
	"github.com/isprava/concierge/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status   string       `json:"status"`
	Version  string       `json:"version"`
	Circuits CircuitsView `json:"circuits"`
}

// CircuitsView reports every circuit breaker guarding an external dependency.
type CircuitsView struct {
	Claude   breaker.Snapshot            `json:"claude"`
	Database breaker.Snapshot            `json:"database"`
	MCP      map[string]mcp.ServerHealth `json:"mcp"`
}

// healthHandler handles GET /api/health.
// Database failure makes the service unhealthy (503); an open claude-api or
// MCP breaker only degrades it, so the orchestrator does not restart the
// process when an external dependency is down.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := healthStatusHealthy

	dbErr := s.dbBreaker.Execute(func() error {
		_, err := database.Health(reqCtx, s.dbClient.DB())
		return err
	})
	if dbErr != nil {
		status = healthStatusUnhealthy
	}

	mcpHealth := s.bridge.Health()
	if status == healthStatusHealthy {
		for _, h := range mcpHealth {
			if h.State != breaker.StatusClosed || h.Reconnecting {
				status = healthStatusDegraded
				break
			}
		}
	}

	claude := s.agent.Breaker().Snapshot()
	if status == healthStatusHealthy && claude.State != breaker.StatusClosed {
		status = healthStatusDegraded
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Circuits: CircuitsView{
			Claude:   claude,
			Database: s.dbBreaker.Snapshot(),
			MCP:      mcpHealth,
		},
	})
}
