package api

import (
	"errors"
	"net/http"
	"sort"

	echo "github.com/labstack/echo/v5"

	"github.com/isprava/concierge/pkg/acl"
	"github.com/isprava/concierge/pkg/models"
)

// ToolACLRequest is the body of PUT /api/admin/acl/tools/:name.
type ToolACLRequest struct {
	ACLs []string `json:"acls"`
}

func aclConfigView(cfg *acl.Config, withRegistry bool) *models.ACLConfigView {
	view := &models.ACLConfigView{
		DefaultPolicy: cfg.DefaultPolicy,
		PublicTools:   cfg.PublicTools,
		DisabledTools: cfg.DisabledTools,
		SuperuserACLs: cfg.SuperuserACLs,
		ToolACLs:      cfg.ToolACLs,
	}
	if withRegistry {
		view.ACLRegistry = acl.AvailableACLs()
	}
	return view
}

// listToolACLsHandler handles GET /api/admin/acl/tools.
func (s *Server) listToolACLsHandler(c *echo.Context) error {
	cfg, err := s.aclStore.Effective(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, cfg.ToolACLs)
}

// upsertToolACLsHandler handles PUT /api/admin/acl/tools/:name.
func (s *Server) upsertToolACLsHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tool name is required")
	}

	var req ToolACLRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cfg, err := s.aclStore.UpsertToolACLs(c.Request().Context(), name, req.ACLs)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, aclConfigView(cfg, false))
}

// deleteToolACLsHandler handles DELETE /api/admin/acl/tools/:name.
func (s *Server) deleteToolACLsHandler(c *echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "tool name is required")
	}

	cfg, err := s.aclStore.DeleteToolACLs(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, acl.ErrToolNotConfigured) {
			return echo.NewHTTPError(http.StatusNotFound, "tool has no configured ACLs")
		}
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, aclConfigView(cfg, false))
}

// getGlobalACLHandler handles GET /api/admin/acl/global.
func (s *Server) getGlobalACLHandler(c *echo.Context) error {
	cfg, err := s.aclStore.Effective(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, aclConfigView(cfg, true))
}

// updateGlobalACLHandler handles PUT /api/admin/acl/global.
// Nil fields in the body are left unchanged.
func (s *Server) updateGlobalACLHandler(c *echo.Context) error {
	var req models.UpdateACLConfigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cfg, err := s.aclStore.UpdateGlobal(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, aclConfigView(cfg, true))
}

// availableACLsHandler handles GET /api/admin/acl/available-acls.
func (s *Server) availableACLsHandler(c *echo.Context) error {
	return c.JSON(http.StatusOK, acl.AvailableACLs())
}

// availableToolsHandler handles GET /api/admin/acl/available-tools.
// Tool names come from the live bridge index, so the list reflects what the
// connected MCP servers actually expose right now.
func (s *Server) availableToolsHandler(c *echo.Context) error {
	descriptors := s.bridge.AllTools()
	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	sort.Strings(names)
	return c.JSON(http.StatusOK, names)
}

// listUsersHandler handles GET /api/admin/users.
func (s *Server) listUsersHandler(c *echo.Context) error {
	users, err := s.users.List(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	views := make([]models.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, models.NewUserView(u))
	}
	return c.JSON(http.StatusOK, views)
}

// updateUserACLsHandler handles PUT /api/admin/users/:id/acls.
// The evaluator's cached user record is invalidated so the change takes
// effect on the next tool call, not after the cache TTL.
func (s *Server) updateUserACLsHandler(c *echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	var req models.UpdateUserACLsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := s.users.SetACLs(c.Request().Context(), userID, req.ACLs)
	if err != nil {
		return mapServiceError(err)
	}
	s.acl.InvalidateUser(c.Request().Context(), user.Email)

	return c.JSON(http.StatusOK, models.NewUserView(user))
}
