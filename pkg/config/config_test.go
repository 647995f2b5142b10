package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMCPServers(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []MCPServer
		wantErr string
	}{
		{
			name: "single server",
			raw:  "sales=http://sales:3001/sse",
			want: []MCPServer{{ID: "sales", URL: "http://sales:3001/sse"}},
		},
		{
			name: "multiple servers sorted by id",
			raw:  "sales=http://sales:3001/sse,helpdesk=http://hd:3002/sse",
			want: []MCPServer{
				{ID: "helpdesk", URL: "http://hd:3002/sse"},
				{ID: "sales", URL: "http://sales:3001/sse"},
			},
		},
		{
			name: "whitespace tolerated",
			raw:  " sales = http://sales:3001/sse , ",
			want: []MCPServer{{ID: "sales", URL: "http://sales:3001/sse"}},
		},
		{
			name:    "missing url",
			raw:     "sales",
			wantErr: "expected id=url",
		},
		{
			name:    "duplicate id",
			raw:     "sales=http://a,sales=http://b",
			wantErr: "duplicate MCP server id",
		},
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMCPServers(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidVertical(t *testing.T) {
	assert.True(t, ValidVertical(""))
	assert.True(t, ValidVertical("isprava"))
	assert.True(t, ValidVertical("lohono"))
	assert.True(t, ValidVertical("chapter"))
	assert.False(t, ValidVertical("unknown"))
}

func TestLoad_RequiresAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("MCP_SERVERS", "sales=http://sales:3001/sse")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("MCP_SERVERS", "sales=http://sales:3001/sse")
	t.Setenv("ANTHROPIC_MODEL", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, cfg.AnthropicModel)
	assert.Equal(t, DefaultHTTPPort, cfg.HTTPPort)
	assert.Empty(t, cfg.RedisURL)
	require.Len(t, cfg.MCPServers, 1)
}
