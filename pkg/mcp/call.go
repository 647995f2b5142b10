package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/isprava/concierge/pkg/breaker"
)

// ToolResult is the outcome of a routed tool call. IsError marks tool-level
// failures, which are normal results as far as transport and breaker are
// concerned.
type ToolResult struct {
	Text    string
	IsError bool
}

// CallTool routes a tool invocation to the owning server under its breaker.
// userEmail rides along as request metadata so the downstream server can
// audit and scope data. Any transport failure other than an open breaker
// kicks off a background reconnect for the server.
func (b *Bridge) CallTool(ctx context.Context, toolName string, args map[string]any, userEmail string) (*ToolResult, error) {
	b.mu.RLock()
	var conn *ServerConn
	if serverID, ok := b.toolToServer[toolName]; ok {
		conn = b.servers[serverID]
	}
	b.mu.RUnlock()

	if conn == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, toolName)
	}

	var result *mcpsdk.CallToolResult
	err := conn.breaker.Execute(func() error {
		opCtx, cancel := context.WithTimeout(ctx, operationTimeout)
		defer cancel()

		params := &mcpsdk.CallToolParams{
			Name:      toolName,
			Arguments: args,
		}
		if userEmail != "" {
			params.Meta = mcpsdk.Meta{"user_email": userEmail}
		}

		var callErr error
		result, callErr = conn.session.CallTool(opCtx, params)
		return callErr
	})
	if err != nil {
		if !errors.Is(err, breaker.ErrCircuitOpen) {
			b.triggerReconnect(conn)
		}
		return nil, fmt.Errorf("tool %q on server %q: %w", toolName, conn.ID, err)
	}

	return &ToolResult{
		Text:    extractText(result),
		IsError: result.IsError,
	}, nil
}

// extractText concatenates the text blocks of a tool result. A result with
// no text blocks falls back to its structured content serialized as JSON.
func extractText(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, content := range result.Content {
		if text, ok := content.(*mcpsdk.TextContent); ok {
			parts = append(parts, text.Text)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, "\n")
	}

	if result.StructuredContent != nil {
		if data, err := json.Marshal(result.StructuredContent); err == nil {
			return string(data)
		}
	}
	return ""
}
