package mcp

import (
	"context"
	"sort"
	"strings"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	userToolsPrefix = "tools:user:"
	userToolsTTL    = 5 * time.Minute
)

// ToolsForUser queries each server for the tool list it exposes to this
// user, passing the email as listing metadata. Results are cached for a few
// minutes. A server that refuses or errors contributes its startup
// descriptors instead, so one bad server cannot collapse the whole catalog.
func (b *Bridge) ToolsForUser(ctx context.Context, userEmail string) []ToolDescriptor {
	email := strings.ToLower(strings.TrimSpace(userEmail))
	if email == "" {
		return b.AllTools()
	}

	key := userToolsPrefix + email
	var cached []ToolDescriptor
	if ok, err := b.cache.Get(ctx, key, &cached); err == nil && ok {
		return cached
	}

	b.mu.RLock()
	conns := make([]*ServerConn, 0, len(b.servers))
	for _, conn := range b.servers {
		conns = append(conns, conn)
	}
	b.mu.RUnlock()
	sort.Slice(conns, func(i, j int) bool { return conns[i].ID < conns[j].ID })

	var all []ToolDescriptor
	seen := make(map[string]bool)
	for _, conn := range conns {
		descriptors, err := listDescriptors(ctx, conn.session, mcpsdk.Meta{"user_email": email})
		if err != nil {
			b.logger.Warn("Per-user tool listing failed, using startup descriptors",
				"server", conn.ID, "error", err)
			b.mu.RLock()
			descriptors = conn.descriptors
			b.mu.RUnlock()
		}
		for _, tool := range descriptors {
			if seen[tool.Name] {
				continue
			}
			seen[tool.Name] = true
			all = append(all, tool)
		}
	}

	if err := b.cache.Set(ctx, key, all, userToolsTTL); err != nil {
		b.logger.Warn("Failed to cache per-user tools", "email", email, "error", err)
	}
	return all
}
