package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/pkg/acl"
	"github.com/isprava/concierge/pkg/models"
)

func TestAdminRoutesRequireAdmin(t *testing.T) {
	fx := newServerFixture(t, nil)
	fx.seedUser("staff@isprava.com", true, false)
	token := fx.login("staff@isprava.com")

	for _, path := range []string{
		"/api/admin/acl/tools",
		"/api/admin/acl/global",
		"/api/admin/acl/available-acls",
		"/api/admin/acl/available-tools",
		"/api/admin/users",
	} {
		rec := fx.do(http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
}

func TestGlobalACLHandlers(t *testing.T) {
	fx := newServerFixture(t, nil)
	fx.seedUser("admin@isprava.com", true, true)
	token := fx.login("admin@isprava.com")

	// Unseeded config falls back to deny-by-default.
	rec := fx.do(http.MethodGet, "/api/admin/acl/global", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeJSON[models.ACLConfigView](t, rec)
	assert.Equal(t, acl.PolicyDeny, view.DefaultPolicy)
	assert.NotEmpty(t, view.ACLRegistry)

	// Partial update: flip the policy, leave the sets alone.
	open := acl.PolicyOpen
	rec = fx.do(http.MethodPut, "/api/admin/acl/global", token,
		models.UpdateACLConfigRequest{DefaultPolicy: &open})
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeJSON[models.ACLConfigView](t, rec)
	assert.Equal(t, acl.PolicyOpen, view.DefaultPolicy)

	bogus := "everyone"
	rec = fx.do(http.MethodPut, "/api/admin/acl/global", token,
		models.UpdateACLConfigRequest{DefaultPolicy: &bogus})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToolACLHandlers(t *testing.T) {
	fx := newServerFixture(t, nil)
	fx.seedUser("admin@isprava.com", true, true)
	token := fx.login("admin@isprava.com")

	rec := fx.do(http.MethodPut, "/api/admin/acl/tools/lead_search", token,
		ToolACLRequest{ACLs: []string{"sales_funnel"}})
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeJSON[models.ACLConfigView](t, rec)
	assert.Equal(t, []string{"sales_funnel"}, view.ToolACLs["lead_search"])

	list := fx.do(http.MethodGet, "/api/admin/acl/tools", token, nil)
	require.Equal(t, http.StatusOK, list.Code)
	toolACLs := decodeJSON[map[string][]string](t, list)
	assert.Contains(t, toolACLs, "lead_search")

	del := fx.do(http.MethodDelete, "/api/admin/acl/tools/lead_search", token, nil)
	assert.Equal(t, http.StatusOK, del.Code)

	again := fx.do(http.MethodDelete, "/api/admin/acl/tools/lead_search", token, nil)
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestAvailableACLsHandler(t *testing.T) {
	fx := newServerFixture(t, nil)
	fx.seedUser("admin@isprava.com", true, true)
	token := fx.login("admin@isprava.com")

	rec := fx.do(http.MethodGet, "/api/admin/acl/available-acls", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	registry := decodeJSON[map[string]string](t, rec)
	assert.Contains(t, registry, "superuser")
	assert.Contains(t, registry, "sales_funnel")
}

func TestUserACLHandlers(t *testing.T) {
	fx := newServerFixture(t, nil)
	fx.seedUser("admin@isprava.com", true, true)
	staff := fx.seedUser("staff@isprava.com", true, false)
	token := fx.login("admin@isprava.com")

	rec := fx.do(http.MethodGet, "/api/admin/users", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	users := decodeJSON[[]models.UserView](t, rec)
	assert.Len(t, users, 2)

	rec = fx.do(http.MethodPut, "/api/admin/users/"+staff.ID+"/acls", token,
		models.UpdateUserACLsRequest{ACLs: []string{"sales_funnel", "reservations"}})
	require.Equal(t, http.StatusOK, rec.Code)
	view := decodeJSON[models.UserView](t, rec)
	assert.Equal(t, []string{"sales_funnel", "reservations"}, view.ACLs)

	rec = fx.do(http.MethodPut, "/api/admin/users/nope/acls", token,
		models.UpdateUserACLsRequest{ACLs: []string{}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
