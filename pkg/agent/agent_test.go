package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/chatmessage"
	"github.com/isprava/concierge/ent/enttest"
	"github.com/isprava/concierge/pkg/acl"
	"github.com/isprava/concierge/pkg/cache"
	"github.com/isprava/concierge/pkg/llm"
	"github.com/isprava/concierge/pkg/mcp"
	"github.com/isprava/concierge/pkg/models"
	"github.com/isprava/concierge/pkg/services"
)

// fakeLLM replays scripted responses. Stream calls emit the scripted deltas
// before returning the response.
type fakeLLM struct {
	mu        sync.Mutex
	responses []*llm.Response
	deltas    [][]string
	err       error
	calls     int
}

func (f *fakeLLM) next() (*llm.Response, []string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, nil, f.err
	}
	if f.calls >= len(f.responses) {
		return nil, nil, errors.New("fakeLLM: script exhausted")
	}
	resp := f.responses[f.calls]
	var deltas []string
	if f.calls < len(f.deltas) {
		deltas = f.deltas[f.calls]
	}
	f.calls++
	return resp, deltas, nil
}

func (f *fakeLLM) CreateMessage(_ context.Context, _ string, _ []llm.Message, _ []llm.Tool) (*llm.Response, error) {
	resp, _, err := f.next()
	return resp, err
}

func (f *fakeLLM) StreamMessage(_ context.Context, _ string, _ []llm.Message, _ []llm.Tool, onDelta func(string)) (*llm.Response, error) {
	resp, deltas, err := f.next()
	if err != nil {
		return nil, err
	}
	for _, d := range deltas {
		onDelta(d)
	}
	return resp, nil
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type bridgeCall struct {
	Name  string
	Args  map[string]any
	Email string
}

// fakeBridge records calls and answers from a canned map. When block is
// set, CallTool waits for it to close before answering.
type fakeBridge struct {
	mu      sync.Mutex
	tools   []mcp.ToolDescriptor
	results map[string]*mcp.ToolResult
	err     error
	block   chan struct{}
	calls   []bridgeCall
}

func (f *fakeBridge) CallTool(_ context.Context, name string, args map[string]any, email string) (*mcp.ToolResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, bridgeCall{Name: name, Args: args, Email: email})
	block := f.block
	err := f.err
	res, ok := f.results[name]
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	if err != nil {
		return nil, err
	}
	if ok {
		return res, nil
	}
	return &mcp.ToolResult{Text: "ok"}, nil
}

func (f *fakeBridge) AllTools() []mcp.ToolDescriptor {
	return f.tools
}

func (f *fakeBridge) recorded() []bridgeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]bridgeCall(nil), f.calls...)
}

// allowAll grants every check.
type allowAll struct{}

func (allowAll) Check(context.Context, string, string) (acl.Decision, error) {
	return acl.Decision{Allowed: true}, nil
}

// denyTool denies one named tool.
type denyTool struct {
	tool   string
	reason string
}

func (d denyTool) Check(_ context.Context, toolName, _ string) (acl.Decision, error) {
	if toolName == d.tool {
		return acl.Decision{Allowed: false, Reason: d.reason}, nil
	}
	return acl.Decision{Allowed: true}, nil
}

type agentFixture struct {
	agent    *Agent
	llm      *fakeLLM
	bridge   *fakeBridge
	cache    *cache.Cache
	client   *ent.Client
	session  *ent.ChatSession
	messages *services.MessageService
}

func newAgentFixture(t *testing.T, fakeLLM *fakeLLM, bridge *fakeBridge, access AccessChecker) *agentFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.New().String())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })

	sessions := services.NewSessionService(client)
	messages := services.NewMessageService(client)
	c := cache.New(nil, "test", time.Minute)

	session, err := sessions.Create(context.Background(), "user-1", models.CreateChatSessionRequest{})
	require.NoError(t, err)

	a := New(fakeLLM, bridge, access, sessions, messages, c)

	return &agentFixture{
		agent:    a,
		llm:      fakeLLM,
		bridge:   bridge,
		cache:    c,
		client:   client,
		session:  session,
		messages: messages,
	}
}

func (fx *agentFixture) input(message string) Input {
	return Input{
		SessionID: fx.session.ID,
		UserID:    "user-1",
		UserEmail: "staff@isprava.com",
		Message:   message,
	}
}

func (fx *agentFixture) transcript(t *testing.T) []*ent.ChatMessage {
	t.Helper()
	log, err := fx.messages.ListBySession(context.Background(), fx.session.ID)
	require.NoError(t, err)
	return log
}

func textResponse(text string) *llm.Response {
	return &llm.Response{
		Role:       llm.RoleAssistant,
		Content:    []llm.ContentBlock{{Type: llm.BlockText, Text: text}},
		StopReason: llm.StopEndTurn,
	}
}

func toolUseResponse(text string, blocks ...llm.ContentBlock) *llm.Response {
	content := []llm.ContentBlock{}
	if text != "" {
		content = append(content, llm.ContentBlock{Type: llm.BlockText, Text: text})
	}
	content = append(content, blocks...)
	return &llm.Response{
		Role:       llm.RoleAssistant,
		Content:    content,
		StopReason: llm.StopToolUse,
	}
}

func toolUse(id, name string, input map[string]any) llm.ContentBlock {
	return llm.ContentBlock{Type: llm.BlockToolUse, ID: id, Name: name, Input: input}
}

func TestAgent_Chat_NoTools(t *testing.T) {
	fx := newAgentFixture(t,
		&fakeLLM{responses: []*llm.Response{textResponse("Hello! How can I help?")}},
		&fakeBridge{},
		allowAll{},
	)
	ctx := context.Background()

	result, err := fx.agent.Chat(ctx, fx.input("hi there"))
	require.NoError(t, err)
	assert.Equal(t, "Hello! How can I help?", result.Text)
	assert.Empty(t, result.ToolsUsed)
	assert.False(t, result.Cached)

	log := fx.transcript(t)
	require.Len(t, log, 2)
	assert.Equal(t, chatmessage.RoleUser, log[0].Role)
	assert.Equal(t, chatmessage.RoleAssistant, log[1].Role)

	// First turn initializes the title.
	session, err := fx.client.ChatSession.Get(ctx, fx.session.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi there", session.Title)
}

func TestAgent_Chat_ToolRound(t *testing.T) {
	fx := newAgentFixture(t,
		&fakeLLM{responses: []*llm.Response{
			toolUseResponse("Let me check.",
				toolUse("toolu_01", "lead_search", map[string]any{"location": "goa"})),
			textResponse("There are 3 leads in Goa."),
		}},
		&fakeBridge{results: map[string]*mcp.ToolResult{
			"lead_search": {Text: "3 leads"},
		}},
		allowAll{},
	)
	ctx := context.Background()

	result, err := fx.agent.Chat(ctx, fx.input("how many leads in goa?"))
	require.NoError(t, err)
	assert.Equal(t, "There are 3 leads in Goa.", result.Text)
	require.Len(t, result.ToolsUsed, 1)
	assert.Equal(t, "lead_search", result.ToolsUsed[0].Name)
	assert.Equal(t, "3 leads", result.ToolsUsed[0].Output)

	calls := fx.bridge.recorded()
	require.Len(t, calls, 1)
	assert.Equal(t, "staff@isprava.com", calls[0].Email)

	roles := make([]chatmessage.Role, 0)
	for _, msg := range fx.transcript(t) {
		roles = append(roles, msg.Role)
	}
	assert.Equal(t, []chatmessage.Role{
		chatmessage.RoleUser,
		chatmessage.RoleAssistant,
		chatmessage.RoleToolUse,
		chatmessage.RoleToolResult,
		chatmessage.RoleAssistant,
	}, roles)
}

func TestAgent_Chat_ResponseCache(t *testing.T) {
	fx := newAgentFixture(t,
		&fakeLLM{responses: []*llm.Response{
			toolUseResponse("",
				toolUse("toolu_01", "lead_search", map[string]any{})),
			textResponse("3 leads."),
		}},
		&fakeBridge{},
		allowAll{},
	)
	ctx := context.Background()

	first, err := fx.agent.Chat(ctx, fx.input("Leads in Goa?"))
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 2, fx.llm.callCount())

	// Same question, normalized differently, is served from cache.
	second, err := fx.agent.Chat(ctx, fx.input("  leads   in goa? "))
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, "3 leads.", second.Text)
	assert.Equal(t, 2, fx.llm.callCount())

	// The cached turn still lands in the transcript.
	log := fx.transcript(t)
	assert.Equal(t, chatmessage.RoleAssistant, log[len(log)-1].Role)
	assert.Equal(t, "3 leads.", log[len(log)-1].Content)
}

func TestAgent_Chat_NoCacheWithoutTools(t *testing.T) {
	fx := newAgentFixture(t,
		&fakeLLM{responses: []*llm.Response{
			textResponse("Just chatting."),
			textResponse("Still chatting."),
		}},
		&fakeBridge{},
		allowAll{},
	)
	ctx := context.Background()

	_, err := fx.agent.Chat(ctx, fx.input("hello"))
	require.NoError(t, err)

	// No tool ran, so the second identical question hits the LLM again.
	result, err := fx.agent.Chat(ctx, fx.input("hello"))
	require.NoError(t, err)
	assert.False(t, result.Cached)
	assert.Equal(t, 2, fx.llm.callCount())
}

func TestAgent_Chat_ACLDeny(t *testing.T) {
	fx := newAgentFixture(t,
		&fakeLLM{responses: []*llm.Response{
			toolUseResponse("",
				toolUse("toolu_01", "get_sales_funnel", map[string]any{})),
			textResponse("You do not have access to the sales funnel."),
		}},
		&fakeBridge{},
		denyTool{tool: "get_sales_funnel", reason: `Tool "get_sales_funnel" requires one of: sales_admin`},
	)
	ctx := context.Background()

	result, err := fx.agent.Chat(ctx, fx.input("show me the funnel"))
	require.NoError(t, err)
	assert.Equal(t, "You do not have access to the sales funnel.", result.Text)

	// The tool was never invoked; the deny reason became the result.
	assert.Empty(t, fx.bridge.recorded())
	require.Len(t, result.ToolsUsed, 1)
	assert.True(t, result.ToolsUsed[0].IsError)
	assert.Contains(t, result.ToolsUsed[0].Output, "sales_admin")

	var resultRow *ent.ChatMessage
	for _, msg := range fx.transcript(t) {
		if msg.Role == chatmessage.RoleToolResult {
			resultRow = msg
		}
	}
	require.NotNil(t, resultRow)
	assert.Contains(t, resultRow.Content, "sales_admin")
}

func TestAgent_Chat_ToolFailureContinuesLoop(t *testing.T) {
	fx := newAgentFixture(t,
		&fakeLLM{responses: []*llm.Response{
			toolUseResponse("",
				toolUse("toolu_01", "lead_search", map[string]any{})),
			textResponse("The lead tool is unavailable right now."),
		}},
		&fakeBridge{err: errors.New("server exploded")},
		allowAll{},
	)
	ctx := context.Background()

	result, err := fx.agent.Chat(ctx, fx.input("leads please"))
	require.NoError(t, err)
	assert.Equal(t, "The lead tool is unavailable right now.", result.Text)
	require.Len(t, result.ToolsUsed, 1)
	assert.True(t, result.ToolsUsed[0].IsError)
	assert.Contains(t, result.ToolsUsed[0].Output, "Error: ")
}

func TestAgent_Chat_LLMError(t *testing.T) {
	fx := newAgentFixture(t,
		&fakeLLM{err: &llm.APIError{StatusCode: 529, Type: "overloaded_error", Message: "overloaded"}},
		&fakeBridge{},
		allowAll{},
	)

	_, err := fx.agent.Chat(context.Background(), fx.input("hello"))
	require.Error(t, err)
	assert.True(t, llm.IsOverloaded(err))
}

func TestAgent_Chat_RoundLimit(t *testing.T) {
	// A model that always wants another tool call must be cut off.
	responses := make([]*llm.Response, maxRounds)
	for i := range responses {
		responses[i] = toolUseResponse("",
			toolUse(fmt.Sprintf("toolu_%02d", i), "lead_search", map[string]any{}))
	}

	fx := newAgentFixture(t,
		&fakeLLM{responses: responses},
		&fakeBridge{},
		allowAll{},
	)

	result, err := fx.agent.Chat(context.Background(), fx.input("loop forever"))
	require.NoError(t, err)
	assert.Equal(t, maxRounds, fx.llm.callCount())
	assert.Empty(t, result.Text)
}

func TestAgent_ChatStream(t *testing.T) {
	fx := newAgentFixture(t,
		&fakeLLM{
			responses: []*llm.Response{
				toolUseResponse("Checking.",
					toolUse("toolu_01", "lead_search", map[string]any{})),
				textResponse("3 leads in Goa."),
			},
			deltas: [][]string{
				{"Check", "ing."},
				{"3 leads ", "in Goa."},
			},
		},
		&fakeBridge{results: map[string]*mcp.ToolResult{
			"lead_search": {Text: "3 leads"},
		}},
		allowAll{},
	)

	var events []models.StreamEvent
	for ev := range fx.agent.ChatStream(context.Background(), fx.input("leads in goa?")) {
		events = append(events, ev)
	}

	types := make([]string, len(events))
	for i, ev := range events {
		types[i] = ev.Event
	}
	assert.Equal(t, []string{
		models.EventTextDelta, models.EventTextDelta,
		models.EventToolStart, models.EventToolEnd,
		models.EventTextDelta, models.EventTextDelta,
		models.EventDone,
	}, types)

	done, ok := events[len(events)-1].Data.(models.DoneData)
	require.True(t, ok)
	assert.Equal(t, "3 leads in Goa.", done.Text)

	// Wire shapes carry exactly the documented fields.
	startJSON, err := json.Marshal(events[2].Data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"lead_search","id":"toolu_01"}`, string(startJSON))
	endJSON, err := json.Marshal(events[3].Data)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"lead_search","id":"toolu_01"}`, string(endJSON))
	doneJSON, err := json.Marshal(done)
	require.NoError(t, err)
	assert.JSONEq(t, `{"assistantText":"3 leads in Goa."}`, string(doneJSON))
}

func TestAgent_ChatStream_DisconnectCompletesTurn(t *testing.T) {
	release := make(chan struct{})
	fx := newAgentFixture(t,
		&fakeLLM{responses: []*llm.Response{
			toolUseResponse("Checking.",
				toolUse("toolu_01", "lead_search", map[string]any{"location": "goa"})),
			textResponse("3 leads in Goa."),
		}},
		&fakeBridge{
			results: map[string]*mcp.ToolResult{"lead_search": {Text: "3 leads"}},
			block:   release,
		},
		allowAll{},
	)

	// The client goes away while the tool call is in flight.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	for ev := range fx.agent.ChatStream(ctx, fx.input("leads in goa?")) {
		if ev.Event == models.EventToolStart {
			cancel()
			close(release)
		}
	}

	// The turn still ran to completion: the tool call finished, its result
	// was persisted, and the final assistant text landed in the transcript.
	assert.Equal(t, 2, fx.llm.callCount())
	roles := make([]chatmessage.Role, 0)
	for _, msg := range fx.transcript(t) {
		roles = append(roles, msg.Role)
	}
	assert.Equal(t, []chatmessage.Role{
		chatmessage.RoleUser,
		chatmessage.RoleAssistant,
		chatmessage.RoleToolUse,
		chatmessage.RoleToolResult,
		chatmessage.RoleAssistant,
	}, roles)
}

func TestAgent_ChatStream_ErrorEvent(t *testing.T) {
	fx := newAgentFixture(t,
		&fakeLLM{err: &llm.APIError{StatusCode: 429, Type: "rate_limit_error", Message: "slow down"}},
		&fakeBridge{},
		allowAll{},
	)

	var events []models.StreamEvent
	for ev := range fx.agent.ChatStream(context.Background(), fx.input("hello")) {
		events = append(events, ev)
	}

	require.NotEmpty(t, events)
	last := events[len(events)-1]
	assert.Equal(t, models.EventError, last.Event)
}

func TestPreprocessArgs(t *testing.T) {
	t.Run("locations resolved to canonical names", func(t *testing.T) {
		args := preprocessArgs("check_availability",
			map[string]any{"locations": []any{"gooa", "alibag"}}, "")
		assert.Equal(t, []string{"Goa", "Alibaug"}, args["locations"])
	})

	t.Run("unresolvable locations left alone", func(t *testing.T) {
		args := preprocessArgs("check_availability",
			map[string]any{"locations": []any{"paris"}}, "")
		assert.Equal(t, []any{"paris"}, args["locations"])
	})

	t.Run("vertical injected for sales funnel family", func(t *testing.T) {
		args := preprocessArgs("get_sales_funnel", map[string]any{"month": "2026-07"}, "lohono")
		assert.Equal(t, "lohono", args["vertical"])

		args = preprocessArgs("lead_search", map[string]any{}, "lohono")
		_, injected := args["vertical"]
		assert.False(t, injected)
	})

	t.Run("original input not mutated", func(t *testing.T) {
		input := map[string]any{"locations": []any{"gooa"}}
		preprocessArgs("check_availability", input, "isprava")
		assert.Equal(t, []any{"gooa"}, input["locations"])
	})
}
