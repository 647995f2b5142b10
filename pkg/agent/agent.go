// Package agent runs the tool-augmented conversation loop between staff
// users, the model, and the MCP tool servers.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/isprava/concierge/ent/chatmessage"
	"github.com/isprava/concierge/pkg/acl"
	"github.com/isprava/concierge/pkg/breaker"
	"github.com/isprava/concierge/pkg/cache"
	"github.com/isprava/concierge/pkg/llm"
	"github.com/isprava/concierge/pkg/mcp"
	"github.com/isprava/concierge/pkg/models"
	"github.com/isprava/concierge/pkg/services"
)

// maxRounds bounds LLM calls per chat turn. A run that still wants tools
// after this many rounds returns whatever text it has.
const maxRounds = 20

// historyWindow is how many recent messages feed each LLM call.
const historyWindow = 50

// titleLimit truncates the first user message into the session title.
const titleLimit = 60

const systemPrompt = `You are the staff concierge for Isprava, a luxury villa group operating the Isprava (villa sales), Lohono (villa rentals) and Chapter (serviced homes) verticals across Goa, Alibaug, Lonavala, Karjat, Coonoor, Mussoorie, Kasauli, Udaipur and Srinagar.

You answer questions from staff by calling the available tools. Prefer tools over guessing; if a tool denies access, relay the reason. Keep answers concise and business-ready. Amounts are in INR unless a tool says otherwise.`

// LLMClient is the slice of the model client the loop needs.
type LLMClient interface {
	CreateMessage(ctx context.Context, system string, messages []llm.Message, tools []llm.Tool) (*llm.Response, error)
	StreamMessage(ctx context.Context, system string, messages []llm.Message, tools []llm.Tool, onDelta func(string)) (*llm.Response, error)
}

// ToolBridge routes tool calls and exposes the discovered catalog.
type ToolBridge interface {
	CallTool(ctx context.Context, name string, args map[string]any, userEmail string) (*mcp.ToolResult, error)
	AllTools() []mcp.ToolDescriptor
}

// AccessChecker decides per-call tool access.
type AccessChecker interface {
	Check(ctx context.Context, toolName, userEmail string) (acl.Decision, error)
}

// Input is one user turn.
type Input struct {
	SessionID string
	UserID    string
	UserEmail string
	Vertical  string
	Message   string
}

// Agent owns the conversation loop. Safe for concurrent use; each call runs
// its own sequential loop.
type Agent struct {
	llm      LLMClient
	bridge   ToolBridge
	access   AccessChecker
	sessions *services.SessionService
	messages *services.MessageService
	cache    *cache.Cache
	breaker  *breaker.Breaker
	logger   *slog.Logger
	now      func() time.Time
}

// New creates an Agent. The claude-api breaker ignores transient overload
// and rate-limit errors so a busy upstream does not trip it.
func New(
	llmClient LLMClient,
	bridge ToolBridge,
	access AccessChecker,
	sessions *services.SessionService,
	messages *services.MessageService,
	c *cache.Cache,
) *Agent {
	return &Agent{
		llm:      llmClient,
		bridge:   bridge,
		access:   access,
		sessions: sessions,
		messages: messages,
		cache:    c,
		breaker:  breaker.New("claude-api", 3, 60*time.Second, breaker.WithTransient(llm.IsTransient)),
		logger:   slog.Default(),
		now:      time.Now,
	}
}

// Breaker exposes the claude-api breaker for health reporting.
func (a *Agent) Breaker() *breaker.Breaker {
	return a.breaker
}

// Chat answers one turn and blocks until the final text is ready.
func (a *Agent) Chat(ctx context.Context, in Input) (*models.ChatResult, error) {
	emit := func(models.StreamEvent) {}
	return a.run(ctx, in, emit, false)
}

// ChatStream answers one turn as a stream of events, closing the channel
// after the terminal done or error event. A client disconnect stops
// emission only: the loop keeps running so in-flight LLM and tool calls
// complete and the persisted transcript stays whole.
func (a *Agent) ChatStream(ctx context.Context, in Input) <-chan models.StreamEvent {
	ch := make(chan models.StreamEvent, 16)

	go func() {
		defer close(ch)

		aborted := false
		emit := func(ev models.StreamEvent) {
			if aborted {
				return
			}
			select {
			case ch <- ev:
			case <-ctx.Done():
				aborted = true
			}
		}

		result, err := a.run(ctx, in, emit, true)
		switch {
		case err != nil:
			emit(models.StreamEvent{
				Event: models.EventError,
				Data:  models.ErrorData{Message: llm.FriendlyMessage(err)},
			})
		default:
			emit(models.StreamEvent{
				Event: models.EventDone,
				Data:  models.DoneData{Text: result.Text},
			})
		}
	}()

	return ch
}

// run is the shared state machine behind Chat and ChatStream.
func (a *Agent) run(ctx context.Context, in Input, emit func(models.StreamEvent), stream bool) (*models.ChatResult, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, services.NewValidationError("message", "required")
	}

	// A client disconnect must not cancel in-flight LLM or tool calls;
	// every persisted tool_use gets its paired tool_result and the final
	// assistant turn still lands in the transcript.
	ctx = context.WithoutCancel(ctx)

	cacheKey := responseCacheKey(in.Message, in.Vertical)

	// Identical recent questions short-circuit the whole loop.
	var cachedText string
	if ok, err := a.cache.Get(ctx, cacheKey, &cachedText); err == nil && ok && cachedText != "" {
		return a.serveCached(ctx, in, cachedText, emit)
	}

	userMsg, err := a.messages.Append(ctx, in.SessionID, models.AppendMessage{
		Role:    string(chatmessage.RoleUser),
		Content: in.Message,
	})
	if err != nil {
		return nil, err
	}
	firstTurn := userMsg.Sequence == 0

	tools := a.toolCatalog()

	var (
		finalText string
		toolsUsed []models.ToolInvocation
	)

	for round := 0; round < maxRounds; round++ {
		turns, err := a.loadTurns(ctx, in.SessionID)
		if err != nil {
			return nil, err
		}

		resp, err := a.callLLM(ctx, in.Vertical, turns, tools, emit, stream)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("LLM round complete",
			"session", in.SessionID, "round", round,
			"stop_reason", resp.StopReason,
			"input_tokens", resp.Usage.InputTokens,
			"output_tokens", resp.Usage.OutputTokens)

		text := sanitizeText(resp.TextBlocks())
		if text != "" {
			if _, err := a.messages.Append(ctx, in.SessionID, models.AppendMessage{
				Role:    string(chatmessage.RoleAssistant),
				Content: text,
			}); err != nil {
				return nil, err
			}
		}

		toolUses := resp.ToolUseBlocks()
		if resp.StopReason == llm.StopEndTurn || len(toolUses) == 0 {
			finalText = text
			break
		}
		finalText = text

		for _, use := range toolUses {
			if _, err := a.messages.Append(ctx, in.SessionID, models.AppendMessage{
				Role:      string(chatmessage.RoleToolUse),
				ToolName:  use.Name,
				ToolUseID: use.ID,
				ToolInput: use.Input,
			}); err != nil {
				return nil, err
			}

			emit(models.StreamEvent{
				Event: models.EventToolStart,
				Data:  models.ToolStartData{Name: use.Name, ID: use.ID},
			})

			resultText, isError := a.invokeTool(ctx, in, use)

			toolsUsed = append(toolsUsed, models.ToolInvocation{
				Name:    use.Name,
				Input:   use.Input,
				Output:  resultText,
				IsError: isError,
			})

			if _, err := a.messages.Append(ctx, in.SessionID, models.AppendMessage{
				Role:      string(chatmessage.RoleToolResult),
				Content:   resultText,
				ToolName:  use.Name,
				ToolUseID: use.ID,
			}); err != nil {
				return nil, err
			}

			emit(models.StreamEvent{
				Event: models.EventToolEnd,
				Data:  models.ToolEndData{Name: use.Name, ID: use.ID},
			})
		}
	}

	a.finishTurn(ctx, in, firstTurn)

	if finalText != "" && len(toolsUsed) > 0 {
		ttl := responseTTL(in.Message, a.now())
		if err := a.cache.Set(ctx, cacheKey, finalText, ttl); err != nil {
			a.logger.Warn("Failed to write response cache", "error", err)
		}
	}

	return &models.ChatResult{
		Text:      finalText,
		ToolsUsed: toolsUsed,
	}, nil
}

// serveCached replays a cached answer, keeping the transcript complete.
func (a *Agent) serveCached(ctx context.Context, in Input, text string, emit func(models.StreamEvent)) (*models.ChatResult, error) {
	userMsg, err := a.messages.Append(ctx, in.SessionID, models.AppendMessage{
		Role:    string(chatmessage.RoleUser),
		Content: in.Message,
	})
	if err != nil {
		return nil, err
	}
	if _, err := a.messages.Append(ctx, in.SessionID, models.AppendMessage{
		Role:    string(chatmessage.RoleAssistant),
		Content: text,
	}); err != nil {
		return nil, err
	}

	a.finishTurn(ctx, in, userMsg.Sequence == 0)

	emit(models.StreamEvent{
		Event: models.EventTextDelta,
		Data:  models.TextDeltaData{Text: text},
	})

	return &models.ChatResult{Text: text, Cached: true}, nil
}

// callLLM performs one model call under the claude-api breaker.
func (a *Agent) callLLM(ctx context.Context, vertical string, turns []llm.Message, tools []llm.Tool, emit func(models.StreamEvent), stream bool) (*llm.Response, error) {
	system := systemPrompt
	if vertical != "" {
		system += "\n\nThe user is currently working in the " + vertical + " vertical."
	}

	var resp *llm.Response
	err := a.breaker.Execute(func() error {
		var callErr error
		if stream {
			resp, callErr = a.llm.StreamMessage(ctx, system, turns, tools, func(delta string) {
				emit(models.StreamEvent{
					Event: models.EventTextDelta,
					Data:  models.TextDeltaData{Text: delta},
				})
			})
		} else {
			resp, callErr = a.llm.CreateMessage(ctx, system, turns, tools)
		}
		return callErr
	})
	return resp, err
}

// invokeTool runs one tool-use block through ACL, argument preprocessing,
// and the bridge. Failures come back as result text so the loop continues
// and the model can explain.
func (a *Agent) invokeTool(ctx context.Context, in Input, use llm.ContentBlock) (string, bool) {
	decision, err := a.access.Check(ctx, use.Name, in.UserEmail)
	if err != nil {
		a.logger.Warn("ACL check failed", "tool", use.Name, "error", err)
		return "Error: access check unavailable", true
	}
	if !decision.Allowed {
		return decision.Reason, true
	}

	args := preprocessArgs(use.Name, use.Input, in.Vertical)

	result, err := a.bridge.CallTool(ctx, use.Name, args, in.UserEmail)
	if err != nil {
		return fmt.Sprintf("Error: %s", err), true
	}
	return result.Text, result.IsError
}

// preprocessArgs canonicalizes location arguments and injects the vertical
// into sales-funnel tools.
func preprocessArgs(toolName string, input map[string]any, vertical string) map[string]any {
	args := make(map[string]any, len(input)+1)
	for k, v := range input {
		args[k] = v
	}

	if raw, ok := args["locations"].([]any); ok {
		tokens := make([]string, 0, len(raw))
		for _, v := range raw {
			if s, ok := v.(string); ok {
				tokens = append(tokens, s)
			}
		}
		if len(tokens) == len(raw) {
			if resolved := ResolveLocations(tokens); len(resolved) > 0 {
				args["locations"] = resolved
			}
		}
	}

	if vertical != "" && strings.Contains(toolName, "sales_funnel") {
		args["vertical"] = vertical
	}

	return args
}

// loadTurns reads the recent window and folds it into API turns.
func (a *Agent) loadTurns(ctx context.Context, sessionID string) ([]llm.Message, error) {
	window, err := a.messages.GetRecent(ctx, sessionID, historyWindow)
	if err != nil {
		return nil, err
	}
	return foldMessages(window), nil
}

// toolCatalog converts discovered descriptors into the request format. The
// full catalog goes to the model; ACL is enforced at call time.
func (a *Agent) toolCatalog() []llm.Tool {
	descriptors := a.bridge.AllTools()
	tools := make([]llm.Tool, 0, len(descriptors))
	for _, d := range descriptors {
		schema := d.InputSchema
		if schema == nil {
			schema = map[string]any{"type": "object"}
		}
		tools = append(tools, llm.Tool{
			Name:        d.Name,
			Description: d.Description,
			InputSchema: schema,
		})
	}
	return tools
}

// finishTurn bumps session recency and initializes the title on the first
// exchange.
func (a *Agent) finishTurn(ctx context.Context, in Input, firstTurn bool) {
	if err := a.sessions.Touch(ctx, in.SessionID); err != nil {
		a.logger.Warn("Failed to touch session", "session", in.SessionID, "error", err)
	}
	if !firstTurn {
		return
	}
	title := strings.TrimSpace(in.Message)
	if len([]rune(title)) > titleLimit {
		title = string([]rune(title)[:titleLimit]) + "..."
	}
	if _, err := a.sessions.UpdateTitle(ctx, in.UserID, in.SessionID, title); err != nil {
		a.logger.Warn("Failed to initialize session title", "session", in.SessionID, "error", err)
	}
}
