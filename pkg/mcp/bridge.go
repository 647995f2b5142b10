// Package mcp bridges tool calls to federated MCP tool servers over SSE.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/isprava/concierge/pkg/breaker"
	"github.com/isprava/concierge/pkg/cache"
	"github.com/isprava/concierge/pkg/config"
	"github.com/isprava/concierge/pkg/version"
)

const (
	initTimeout      = 30 * time.Second
	operationTimeout = 60 * time.Second

	breakerThreshold = 5
	breakerReset     = 30 * time.Second
)

var (
	// ErrUnknownTool is returned when no connected server exposes the tool.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrNoServers is returned when startup connects to zero servers.
	ErrNoServers = errors.New("no MCP servers connected")
)

// ToolDescriptor is a server-agnostic view of one tool.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"input_schema,omitempty"`
}

// ServerConn is one live server connection with its breaker and the tool
// descriptors recorded at discovery time.
type ServerConn struct {
	ID  string
	URL string

	session     *mcpsdk.ClientSession
	descriptors []ToolDescriptor
	breaker     *breaker.Breaker

	reconnecting atomic.Bool
}

// ServerHealth is the health-endpoint view of one server.
type ServerHealth struct {
	State        breaker.Status `json:"state"`
	Failures     int            `json:"consecutive_failures"`
	Reconnecting bool           `json:"reconnecting"`
	ToolCount    int            `json:"tool_count"`
}

type dialFunc func(ctx context.Context, serverID, url string) (*mcpsdk.ClientSession, error)

// Bridge routes tool calls to the server that owns each tool, guarded by
// per-server circuit breakers. Connection failures trigger a background
// reconnect with exponential backoff.
type Bridge struct {
	cache  *cache.Cache
	logger *slog.Logger
	dial   dialFunc

	mu           sync.RWMutex
	servers      map[string]*ServerConn
	toolToServer map[string]string

	reconnectBackoffMin time.Duration
	reconnectBackoffCap time.Duration
	reconnectAttempts   int
}

// NewBridge creates a disconnected Bridge. Call Connect before use.
func NewBridge(c *cache.Cache) *Bridge {
	return &Bridge{
		cache:               c,
		logger:              slog.Default(),
		dial:                dialSSE,
		servers:             make(map[string]*ServerConn),
		toolToServer:        make(map[string]string),
		reconnectBackoffMin: time.Second,
		reconnectBackoffCap: 60 * time.Second,
		reconnectAttempts:   10,
	}
}

// Connect dials every configured server and discovers its tools. Individual
// failures are tolerated; zero successes is fatal.
func (b *Bridge) Connect(ctx context.Context, servers []config.MCPServer) error {
	for _, srv := range servers {
		conn, err := b.connectServer(ctx, srv.ID, srv.URL)
		if err != nil {
			b.logger.Warn("MCP server failed to connect",
				"server", srv.ID, "url", srv.URL, "error", err)
			continue
		}
		b.mu.Lock()
		b.servers[srv.ID] = conn
		b.mu.Unlock()
		b.logger.Info("MCP server connected",
			"server", srv.ID, "tools", len(conn.descriptors))
	}

	b.mu.Lock()
	connected := len(b.servers)
	b.rebuildIndexLocked()
	b.mu.Unlock()

	if connected == 0 {
		return ErrNoServers
	}
	return nil
}

// connectServer dials one server and discovers its tools.
func (b *Bridge) connectServer(ctx context.Context, serverID, url string) (*ServerConn, error) {
	initCtx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	session, err := b.dial(initCtx, serverID, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %q: %w", serverID, err)
	}

	descriptors, err := listDescriptors(initCtx, session, nil)
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("failed to list tools from %q: %w", serverID, err)
	}

	return &ServerConn{
		ID:          serverID,
		URL:         url,
		session:     session,
		descriptors: descriptors,
		breaker:     breaker.New("mcp-"+serverID, breakerThreshold, breakerReset),
	}, nil
}

// dialSSE is the production dialer.
func dialSSE(ctx context.Context, serverID, url string) (*mcpsdk.ClientSession, error) {
	transport := &mcpsdk.SSEClientTransport{Endpoint: url}
	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)
	return client.Connect(ctx, transport, nil)
}

// listDescriptors discovers a session's tools. meta rides along so servers
// can scope the listing to a user.
func listDescriptors(ctx context.Context, session *mcpsdk.ClientSession, meta mcpsdk.Meta) ([]ToolDescriptor, error) {
	opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	params := &mcpsdk.ListToolsParams{}
	params.Meta = meta
	result, err := session.ListTools(opCtx, params)
	if err != nil {
		return nil, err
	}

	descriptors := make([]ToolDescriptor, 0, len(result.Tools))
	for _, tool := range result.Tools {
		descriptors = append(descriptors, ToolDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: schemaToMap(tool.InputSchema),
		})
	}
	return descriptors, nil
}

// schemaToMap flattens an SDK schema into the generic JSON form the LLM
// request wants.
func schemaToMap(schema any) map[string]any {
	if schema == nil {
		return nil
	}
	data, err := json.Marshal(schema)
	if err != nil {
		slog.Debug("Failed to marshal tool input schema", "error", err)
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	return m
}

// rebuildIndexLocked recomputes tool_to_server. Caller holds b.mu.
// Servers are walked in sorted order so duplicate tool names resolve
// deterministically (first server wins).
func (b *Bridge) rebuildIndexLocked() {
	index := make(map[string]string)
	ids := make([]string, 0, len(b.servers))
	for id := range b.servers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, tool := range b.servers[id].descriptors {
			if owner, exists := index[tool.Name]; exists {
				b.logger.Warn("Duplicate tool name across MCP servers",
					"tool", tool.Name, "kept", owner, "ignored", id)
				continue
			}
			index[tool.Name] = id
		}
	}
	b.toolToServer = index
}

// AllTools returns a stable snapshot of every discovered tool.
func (b *Bridge) AllTools() []ToolDescriptor {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ids := make([]string, 0, len(b.servers))
	for id := range b.servers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var all []ToolDescriptor
	seen := make(map[string]bool)
	for _, id := range ids {
		for _, tool := range b.servers[id].descriptors {
			if seen[tool.Name] {
				continue
			}
			seen[tool.Name] = true
			all = append(all, tool)
		}
	}
	return all
}

// RefreshTools re-discovers every server's tools and rebuilds the index.
func (b *Bridge) RefreshTools(ctx context.Context) error {
	b.mu.RLock()
	conns := make([]*ServerConn, 0, len(b.servers))
	for _, conn := range b.servers {
		conns = append(conns, conn)
	}
	b.mu.RUnlock()

	var lastErr error
	for _, conn := range conns {
		descriptors, err := listDescriptors(ctx, conn.session, nil)
		if err != nil {
			lastErr = err
			b.logger.Warn("Failed to refresh tools", "server", conn.ID, "error", err)
			continue
		}
		b.mu.Lock()
		conn.descriptors = descriptors
		b.mu.Unlock()
	}

	b.mu.Lock()
	b.rebuildIndexLocked()
	b.mu.Unlock()
	return lastErr
}

// Health returns per-server breaker snapshots and reconnect flags.
func (b *Bridge) Health() map[string]ServerHealth {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make(map[string]ServerHealth, len(b.servers))
	for id, conn := range b.servers {
		snap := conn.breaker.Snapshot()
		out[id] = ServerHealth{
			State:        snap.State,
			Failures:     snap.ConsecutiveFailures,
			Reconnecting: conn.reconnecting.Load(),
			ToolCount:    len(conn.descriptors),
		}
	}
	return out
}

// Close shuts down all server sessions.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var firstErr error
	for id, conn := range b.servers {
		if err := conn.session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close session %q: %w", id, err)
		}
	}
	b.servers = make(map[string]*ServerConn)
	b.toolToServer = make(map[string]string)
	return firstErr
}
