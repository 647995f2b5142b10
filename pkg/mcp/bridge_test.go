package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/pkg/breaker"
	"github.com/isprava/concierge/pkg/cache"
	"github.com/isprava/concierge/pkg/config"
)

// emptySchema is a minimal valid JSON Schema for test tools.
var emptySchema = json.RawMessage(`{"type":"object"}`)

// startTestServer creates an in-memory MCP server with given tools and runs it.
// Each call produces a fresh transport pair, so dialers can be invoked
// repeatedly (reconnects included).
func startTestServer(t *testing.T, name string, tools map[string]mcpsdk.ToolHandler) *mcpsdk.InMemoryTransport {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name: name, Version: "test",
	}, nil)

	for toolName, handler := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        toolName,
			Description: "test tool: " + toolName,
			InputSchema: emptySchema,
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
	go func() {
		_ = server.Run(context.Background(), serverTransport)
	}()

	return clientTransport
}

// newTestBridge connects a Bridge to per-ID in-memory servers. toolsByServer
// defines each server's tools; the dialer spins a fresh server instance on
// every dial so reconnects work.
func newTestBridge(t *testing.T, toolsByServer map[string]map[string]mcpsdk.ToolHandler) *Bridge {
	t.Helper()

	b := NewBridge(cache.New(nil, "test", time.Minute))
	b.dial = func(ctx context.Context, serverID, _ string) (*mcpsdk.ClientSession, error) {
		tools, ok := toolsByServer[serverID]
		if !ok {
			return nil, fmt.Errorf("no test server %q", serverID)
		}
		transport := startTestServer(t, serverID, tools)
		client := mcpsdk.NewClient(&mcpsdk.Implementation{
			Name: "concierge-test", Version: "test",
		}, nil)
		return client.Connect(ctx, transport, nil)
	}

	servers := make([]config.MCPServer, 0, len(toolsByServer))
	for id := range toolsByServer {
		servers = append(servers, config.MCPServer{ID: id, URL: "mem://" + id})
	}
	sort.Slice(servers, func(i, j int) bool { return servers[i].ID < servers[j].ID })

	require.NoError(t, b.Connect(context.Background(), servers))
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func textResult(text string) (*mcpsdk.CallToolResult, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}, nil
}

func TestBridge_ConnectAndDiscover(t *testing.T) {
	b := newTestBridge(t, map[string]map[string]mcpsdk.ToolHandler{
		"sales": {
			"lead_search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("leads")
			},
		},
		"stays": {
			"check_availability": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("available")
			},
		},
	})

	all := b.AllTools()
	names := make([]string, len(all))
	for i, tool := range all {
		names[i] = tool.Name
	}
	assert.ElementsMatch(t, []string{"lead_search", "check_availability"}, names)

	health := b.Health()
	require.Len(t, health, 2)
	assert.Equal(t, breaker.StatusClosed, health["sales"].State)
	assert.Equal(t, 1, health["sales"].ToolCount)
	assert.False(t, health["sales"].Reconnecting)
}

func TestBridge_ConnectRequiresOneServer(t *testing.T) {
	b := NewBridge(cache.New(nil, "test", time.Minute))
	b.dial = func(_ context.Context, _, _ string) (*mcpsdk.ClientSession, error) {
		return nil, errors.New("connection refused")
	}

	err := b.Connect(context.Background(), []config.MCPServer{
		{ID: "sales", URL: "http://sales:3001/sse"},
	})
	assert.ErrorIs(t, err, ErrNoServers)
}

func TestBridge_CallTool(t *testing.T) {
	var gotEmail atomic.Value
	b := newTestBridge(t, map[string]map[string]mcpsdk.ToolHandler{
		"sales": {
			"lead_search": func(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				if req.Params.Meta != nil {
					if email, ok := req.Params.Meta["user_email"].(string); ok {
						gotEmail.Store(email)
					}
				}
				return textResult("3 leads in Goa")
			},
			"funnel_report": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return &mcpsdk.CallToolResult{
					StructuredContent: map[string]any{"stage": "qualified", "count": 7},
				}, nil
			},
		},
	})
	ctx := context.Background()

	t.Run("routes and returns text", func(t *testing.T) {
		res, err := b.CallTool(ctx, "lead_search", map[string]any{"location": "goa"}, "sales@isprava.com")
		require.NoError(t, err)
		assert.Equal(t, "3 leads in Goa", res.Text)
		assert.False(t, res.IsError)
		assert.Equal(t, "sales@isprava.com", gotEmail.Load())
	})

	t.Run("structured content serialized when no text", func(t *testing.T) {
		res, err := b.CallTool(ctx, "funnel_report", nil, "")
		require.NoError(t, err)
		assert.JSONEq(t, `{"stage":"qualified","count":7}`, res.Text)
	})

	t.Run("unknown tool", func(t *testing.T) {
		_, err := b.CallTool(ctx, "no_such_tool", nil, "")
		assert.ErrorIs(t, err, ErrUnknownTool)
	})
}

func TestBridge_ToolErrorIsNormalResult(t *testing.T) {
	b := newTestBridge(t, map[string]map[string]mcpsdk.ToolHandler{
		"sales": {
			"lead_search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return nil, errors.New("no leads match that filter")
			},
		},
	})
	ctx := context.Background()

	res, err := b.CallTool(ctx, "lead_search", nil, "")
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, "no leads match")

	// Tool-level errors do not count against the breaker.
	health := b.Health()
	assert.Equal(t, breaker.StatusClosed, health["sales"].State)
	assert.Zero(t, health["sales"].Failures)
}

func TestBridge_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	b := newTestBridge(t, map[string]map[string]mcpsdk.ToolHandler{
		"sales": {
			"lead_search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("ok")
			},
		},
	})
	// Park the reconnect goroutine so it cannot swap in a fresh breaker
	// mid-test.
	b.reconnectBackoffMin = time.Hour
	ctx := context.Background()

	// Sever the transport so calls fail at the session layer.
	b.mu.RLock()
	session := b.servers["sales"].session
	b.mu.RUnlock()
	require.NoError(t, session.Close())

	for i := 0; i < breakerThreshold; i++ {
		_, err := b.CallTool(ctx, "lead_search", nil, "")
		require.Error(t, err)
		assert.NotErrorIs(t, err, breaker.ErrCircuitOpen)
	}

	_, err := b.CallTool(ctx, "lead_search", nil, "")
	assert.ErrorIs(t, err, breaker.ErrCircuitOpen)

	health := b.Health()
	assert.Equal(t, breaker.StatusOpen, health["sales"].State)
	assert.True(t, health["sales"].Reconnecting)
}

func TestBridge_ReconnectAfterFailure(t *testing.T) {
	b := newTestBridge(t, map[string]map[string]mcpsdk.ToolHandler{
		"sales": {
			"lead_search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("recovered")
			},
		},
	})
	b.reconnectBackoffMin = 5 * time.Millisecond
	b.reconnectBackoffCap = 10 * time.Millisecond
	ctx := context.Background()

	b.mu.RLock()
	session := b.servers["sales"].session
	b.mu.RUnlock()
	require.NoError(t, session.Close())

	_, err := b.CallTool(ctx, "lead_search", nil, "")
	require.Error(t, err)

	// The background task dials a fresh server and swaps it in.
	require.Eventually(t, func() bool {
		health := b.Health()
		return !health["sales"].Reconnecting && health["sales"].State == breaker.StatusClosed
	}, 2*time.Second, 10*time.Millisecond)

	res, err := b.CallTool(ctx, "lead_search", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "recovered", res.Text)
}

func TestBridge_ToolsForUser(t *testing.T) {
	b := newTestBridge(t, map[string]map[string]mcpsdk.ToolHandler{
		"sales": {
			"lead_search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("ok")
			},
		},
		"stays": {
			"check_availability": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("ok")
			},
		},
	})
	ctx := context.Background()

	t.Run("empty email falls back to full catalog", func(t *testing.T) {
		tools := b.ToolsForUser(ctx, "")
		assert.Len(t, tools, 2)
	})

	t.Run("per-user listing returns the union", func(t *testing.T) {
		tools := b.ToolsForUser(ctx, "sales@isprava.com")
		names := make([]string, len(tools))
		for i, tool := range tools {
			names[i] = tool.Name
		}
		assert.ElementsMatch(t, []string{"lead_search", "check_availability"}, names)
	})

	t.Run("second lookup is served from cache", func(t *testing.T) {
		first := b.ToolsForUser(ctx, "ops@isprava.com")
		second := b.ToolsForUser(ctx, "ops@isprava.com")
		assert.Equal(t, first, second)
	})
}

func TestBridge_RefreshTools(t *testing.T) {
	b := newTestBridge(t, map[string]map[string]mcpsdk.ToolHandler{
		"sales": {
			"lead_search": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("ok")
			},
		},
	})

	require.NoError(t, b.RefreshTools(context.Background()))
	assert.Len(t, b.AllTools(), 1)
}
