package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/isprava/concierge/pkg/mcp"
)

// listToolsHandler handles GET /api/tools.
// Returns the tools visible to the caller: the per-user server listings,
// filtered by the access policy (disabled tools are hidden from everyone).
func (s *Server) listToolsHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	user := currentUser(c)

	descriptors := s.bridge.ToolsForUser(ctx, user.Email)

	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	visible, err := s.acl.FilterForListing(ctx, names, user.Email)
	if err != nil {
		return mapServiceError(err)
	}

	allowed := make(map[string]bool, len(visible))
	for _, name := range visible {
		allowed[name] = true
	}

	out := make([]mcp.ToolDescriptor, 0, len(descriptors))
	for _, d := range descriptors {
		if allowed[d.Name] {
			out = append(out, d)
		}
	}
	return c.JSON(http.StatusOK, out)
}
