package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.Equal(t, apiVersion, r.Header.Get("anthropic-version"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_01",
			"role": "assistant",
			"content": [
				{"type": "text", "text": "Checking the funnel."},
				{"type": "tool_use", "id": "tu_1", "name": "get_sales_funnel", "input": {"month": "2026-07"}}
			],
			"stop_reason": "tool_use",
			"usage": {"input_tokens": 120, "output_tokens": 48}
		}`))
	}))
	defer srv.Close()

	client := NewClient("sk-test", "claude-sonnet-4-5", WithBaseURL(srv.URL))
	resp, err := client.CreateMessage(context.Background(), "system prompt",
		[]Message{TextMessage(RoleUser, "leads?")}, nil)
	require.NoError(t, err)

	assert.Equal(t, StopToolUse, resp.StopReason)
	assert.Equal(t, "Checking the funnel.", resp.TextBlocks())

	toolUses := resp.ToolUseBlocks()
	require.Len(t, toolUses, 1)
	assert.Equal(t, "get_sales_funnel", toolUses[0].Name)
	assert.Equal(t, "2026-07", toolUses[0].Input["month"])
	assert.Equal(t, 48, resp.Usage.OutputTokens)
}

func TestCreateMessage_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(529)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"overloaded_error","message":"Overloaded"}}`))
	}))
	defer srv.Close()

	client := NewClient("sk-test", "claude-sonnet-4-5", WithBaseURL(srv.URL))
	_, err := client.CreateMessage(context.Background(), "",
		[]Message{TextMessage(RoleUser, "hi")}, nil)
	require.Error(t, err)

	assert.True(t, IsOverloaded(err))
	assert.True(t, IsTransient(err))
	assert.False(t, IsRateLimited(err))
	assert.Contains(t, FriendlyMessage(err), "busy")
}

func TestCreateMessage_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`))
	}))
	defer srv.Close()

	client := NewClient("sk-test", "claude-sonnet-4-5", WithBaseURL(srv.URL))
	_, err := client.CreateMessage(context.Background(), "",
		[]Message{TextMessage(RoleUser, "hi")}, nil)
	require.Error(t, err)
	assert.True(t, IsRateLimited(err))
	assert.True(t, IsTransient(err))
}

const streamFixture = `event: message_start
data: {"type":"message_start","message":{"id":"msg_02","role":"assistant","usage":{"input_tokens":100,"output_tokens":1}}}

event: content_block_start
data: {"type":"content_block_start","index":0,"content_block":{"type":"text","text":""}}

event: content_block_delta
data: {"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"Let me "}}

event: content_block_delta
data: {"type":"content_block_delta","index":0,"delta":{"type":"text_delta","text":"check."}}

event: content_block_stop
data: {"type":"content_block_stop","index":0}

event: content_block_start
data: {"type":"content_block_start","index":1,"content_block":{"type":"tool_use","id":"tu_9","name":"get_sales_funnel"}}

event: content_block_delta
data: {"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"{\"month\":"}}

event: content_block_delta
data: {"type":"content_block_delta","index":1,"delta":{"type":"input_json_delta","partial_json":"\"2026-07\"}"}}

event: content_block_stop
data: {"type":"content_block_stop","index":1}

event: message_delta
data: {"type":"message_delta","delta":{"type":"message_delta","stop_reason":"tool_use"},"usage":{"output_tokens":33}}

event: message_stop
data: {"type":"message_stop"}

`

func TestStreamMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte(streamFixture))
	}))
	defer srv.Close()

	client := NewClient("sk-test", "claude-sonnet-4-5", WithBaseURL(srv.URL))

	var deltas []string
	resp, err := client.StreamMessage(context.Background(), "",
		[]Message{TextMessage(RoleUser, "leads last month?")}, nil,
		func(text string) { deltas = append(deltas, text) })
	require.NoError(t, err)

	assert.Equal(t, []string{"Let me ", "check."}, deltas)
	assert.Equal(t, "Let me check.", resp.TextBlocks())
	assert.Equal(t, StopToolUse, resp.StopReason)
	assert.Equal(t, 33, resp.Usage.OutputTokens)

	toolUses := resp.ToolUseBlocks()
	require.Len(t, toolUses, 1)
	assert.Equal(t, "tu_9", toolUses[0].ID)
	assert.Equal(t, map[string]any{"month": "2026-07"}, toolUses[0].Input)
}

func TestStreamMessage_ErrorEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("event: error\ndata: {\"type\":\"error\",\"error\":{\"type\":\"overloaded_error\",\"message\":\"busy\"}}\n\n"))
	}))
	defer srv.Close()

	client := NewClient("sk-test", "claude-sonnet-4-5", WithBaseURL(srv.URL))
	_, err := client.StreamMessage(context.Background(), "",
		[]Message{TextMessage(RoleUser, "hi")}, nil, nil)
	require.Error(t, err)
	assert.True(t, IsOverloaded(err))
}
