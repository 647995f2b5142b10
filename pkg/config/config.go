// Package config loads the service configuration from the environment.
//
// The environment contract is fixed: MCP server endpoints, the Anthropic
// bearer token and model, PostgreSQL connection settings (see pkg/database),
// an optional Redis URL (absence activates the in-memory cache fallback),
// and the path to the ACL seed file.
package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Vertical is an enumerated business line passed to sales-funnel tools.
type Vertical string

const (
	VerticalIsprava Vertical = "isprava"
	VerticalLohono  Vertical = "lohono"
	VerticalChapter Vertical = "chapter"
)

// Verticals lists the accepted business lines.
var Verticals = []Vertical{VerticalIsprava, VerticalLohono, VerticalChapter}

// ValidVertical reports whether v names a known business line.
// The empty string is accepted; vertical is optional on a session.
func ValidVertical(v string) bool {
	if v == "" {
		return true
	}
	for _, known := range Verticals {
		if Vertical(v) == known {
			return true
		}
	}
	return false
}

// MCPServer is a single configured tool-provider endpoint.
type MCPServer struct {
	ID  string
	URL string
}

// Config is the full service configuration.
type Config struct {
	HTTPPort string

	AnthropicAPIKey string
	AnthropicModel  string

	MCPServers []MCPServer

	// RedisURL is optional; empty activates the in-memory cache fallback.
	RedisURL string

	ACLSeedFile string

	Debug bool
}

// Defaults applied when the corresponding variable is unset.
const (
	DefaultModel    = "claude-sonnet-4-5"
	DefaultHTTPPort = "8080"
)

// Load reads the configuration from the environment.
// DB settings are loaded separately by pkg/database.LoadConfigFromEnv.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:        getEnvOrDefault("HTTP_PORT", DefaultHTTPPort),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnvOrDefault("ANTHROPIC_MODEL", DefaultModel),
		RedisURL:        os.Getenv("REDIS_URL"),
		ACLSeedFile:     getEnvOrDefault("ACL_SEED_FILE", "./deploy/config/acl.yaml"),
		Debug:           os.Getenv("DEBUG") == "true",
	}

	if cfg.AnthropicAPIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}

	servers, err := parseMCPServers(os.Getenv("MCP_SERVERS"))
	if err != nil {
		return nil, err
	}
	if len(servers) == 0 {
		return nil, fmt.Errorf("MCP_SERVERS is required (comma-separated id=url pairs)")
	}
	cfg.MCPServers = servers

	return cfg, nil
}

// parseMCPServers parses "sales=http://sales:3001/sse,helpdesk=http://hd:3002/sse".
// Entries are returned sorted by ID so startup connect order is deterministic.
func parseMCPServers(raw string) ([]MCPServer, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	seen := make(map[string]bool)
	var servers []MCPServer
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		id, url, ok := strings.Cut(entry, "=")
		id, url = strings.TrimSpace(id), strings.TrimSpace(url)
		if !ok || id == "" || url == "" {
			return nil, fmt.Errorf("invalid MCP_SERVERS entry %q: expected id=url", entry)
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate MCP server id %q", id)
		}
		seen[id] = true
		servers = append(servers, MCPServer{ID: id, URL: url})
	}

	sort.Slice(servers, func(i, j int) bool { return servers[i].ID < servers[j].ID })
	return servers, nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
