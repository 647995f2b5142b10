// Package acl decides which staff users may invoke which tools.
package acl

import "strings"

// Policy values for Config.DefaultPolicy.
const (
	PolicyOpen = "open"
	PolicyDeny = "deny"
)

// Config is the effective tool access policy. It merges the global policy,
// the public/disabled tool sets, and the per-tool required tag map.
type Config struct {
	DefaultPolicy string              `json:"default_policy" yaml:"default_policy"`
	PublicTools   []string            `json:"public_tools" yaml:"public_tools"`
	DisabledTools []string            `json:"disabled_tools" yaml:"disabled_tools"`
	SuperuserACLs []string            `json:"superuser_acls" yaml:"superuser_acls"`
	ToolACLs      map[string][]string `json:"tool_acls" yaml:"tool_acls"`
}

// DefaultConfig is the policy used when no seed file is configured:
// nothing public, everything gated on explicit tags.
func DefaultConfig() *Config {
	return &Config{
		DefaultPolicy: PolicyDeny,
		PublicTools:   []string{},
		DisabledTools: []string{},
		SuperuserACLs: []string{},
		ToolACLs:      map[string][]string{},
	}
}

func (c *Config) normalize() {
	if c.DefaultPolicy != PolicyOpen {
		c.DefaultPolicy = PolicyDeny
	}
	if c.PublicTools == nil {
		c.PublicTools = []string{}
	}
	if c.DisabledTools == nil {
		c.DisabledTools = []string{}
	}
	if c.SuperuserACLs == nil {
		c.SuperuserACLs = []string{}
	}
	if c.ToolACLs == nil {
		c.ToolACLs = map[string][]string{}
	}
}

func (c *Config) isDisabled(tool string) bool {
	return contains(c.DisabledTools, tool)
}

func (c *Config) isPublic(tool string) bool {
	return contains(c.PublicTools, tool)
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
