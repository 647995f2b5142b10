package models

// ACLConfigView is the API representation of the global tool access policy.
type ACLConfigView struct {
	DefaultPolicy string              `json:"default_policy"`
	PublicTools   []string            `json:"public_tools"`
	DisabledTools []string            `json:"disabled_tools"`
	SuperuserACLs []string            `json:"superuser_acls"`
	ToolACLs      map[string][]string `json:"tool_acls"`
	ACLRegistry   map[string]string   `json:"acl_registry,omitempty"`
}

// UpdateACLConfigRequest applies a partial update to the global policy.
// Nil fields are left unchanged.
type UpdateACLConfigRequest struct {
	DefaultPolicy *string              `json:"default_policy,omitempty"`
	PublicTools   *[]string            `json:"public_tools,omitempty"`
	DisabledTools *[]string            `json:"disabled_tools,omitempty"`
	SuperuserACLs *[]string            `json:"superuser_acls,omitempty"`
	ToolACLs      *map[string][]string `json:"tool_acls,omitempty"`
}

// UpdateUserACLsRequest replaces a user's ACL tag set.
type UpdateUserACLsRequest struct {
	ACLs []string `json:"acls"`
}
