package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/enttest"
	"github.com/isprava/concierge/pkg/acl"
	"github.com/isprava/concierge/pkg/agent"
	"github.com/isprava/concierge/pkg/cache"
	"github.com/isprava/concierge/pkg/database"
	"github.com/isprava/concierge/pkg/llm"
	"github.com/isprava/concierge/pkg/mcp"
	"github.com/isprava/concierge/pkg/services"
)

// fakeLLM returns scripted responses in call order.
type fakeLLM struct {
	mu        sync.Mutex
	responses []*llm.Response
	err       error
	calls     int
}

func (f *fakeLLM) next() (*llm.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.calls >= len(f.responses) {
		return nil, fmt.Errorf("unexpected LLM call %d", f.calls)
	}
	resp := f.responses[f.calls]
	f.calls++
	return resp, nil
}

func (f *fakeLLM) CreateMessage(context.Context, string, []llm.Message, []llm.Tool) (*llm.Response, error) {
	return f.next()
}

func (f *fakeLLM) StreamMessage(_ context.Context, _ string, _ []llm.Message, _ []llm.Tool, onDelta func(string)) (*llm.Response, error) {
	resp, err := f.next()
	if err != nil {
		return nil, err
	}
	for _, block := range resp.Content {
		if block.Type == llm.BlockText && block.Text != "" {
			onDelta(block.Text)
		}
	}
	return resp, nil
}

func textResponse(text string) *llm.Response {
	return &llm.Response{
		Content:    []llm.ContentBlock{{Type: llm.BlockText, Text: text}},
		StopReason: llm.StopEndTurn,
	}
}

// serverFixture wires a full Server over an in-memory database, an
// unconnected bridge and a scripted model.
type serverFixture struct {
	t      *testing.T
	server *Server
	client *ent.Client
	auth   *services.AuthService
	users  *services.UserService
	store  *acl.Store
}

func newServerFixture(t *testing.T, llmClient agent.LLMClient) *serverFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.New().String())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })

	c := cache.New(nil, "test", time.Minute)
	users := services.NewUserService(client)
	auth := services.NewAuthService(client, users)
	sessions := services.NewSessionService(client)
	messages := services.NewMessageService(client)
	store := acl.NewStore(client, c)
	evaluator := acl.NewEvaluator(store, users, c)
	bridge := mcp.NewBridge(c)

	if llmClient == nil {
		llmClient = &fakeLLM{}
	}
	agentLoop := agent.New(llmClient, bridge, evaluator, sessions, messages, c)

	server := NewServer(
		database.NewClientFromEnt(client, nil),
		auth, users, sessions, messages, agentLoop, bridge, store, evaluator,
	)

	return &serverFixture{
		t:      t,
		server: server,
		client: client,
		auth:   auth,
		users:  users,
		store:  store,
	}
}

func (fx *serverFixture) seedUser(email string, active, admin bool) *ent.StaffUser {
	fx.t.Helper()
	user, err := fx.client.StaffUser.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetName("Test User").
		SetAcls([]string{}).
		SetActive(active).
		SetAdmin(admin).
		Save(context.Background())
	require.NoError(fx.t, err)
	return user
}

// login seeds nothing; the user must exist already.
func (fx *serverFixture) login(email string) string {
	fx.t.Helper()
	session, _, err := fx.auth.Login(context.Background(), email)
	require.NoError(fx.t, err)
	return session.ID
}

// do runs one request through the full middleware chain.
func (fx *serverFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	fx.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(fx.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.server.echo.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
