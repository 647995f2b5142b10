package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/isprava/concierge/pkg/acl"
	"github.com/isprava/concierge/pkg/agent"
	"github.com/isprava/concierge/pkg/breaker"
	"github.com/isprava/concierge/pkg/database"
	"github.com/isprava/concierge/pkg/mcp"
	"github.com/isprava/concierge/pkg/services"
)

// Server is the HTTP surface: auth, chat sessions, the agent loop (batch
// and SSE), admin ACL management, and health.
type Server struct {
	echo *echo.Echo
	http *http.Server

	dbClient *database.Client
	auth     *services.AuthService
	users    *services.UserService
	sessions *services.SessionService
	messages *services.MessageService
	agent    *agent.Agent
	bridge   *mcp.Bridge
	aclStore *acl.Store
	acl      *acl.Evaluator

	// dbBreaker guards health-probe queries so a dead database fast-fails
	// instead of stacking up 5s pings.
	dbBreaker *breaker.Breaker

	globalLimiter *slidingWindow
	chatLimiter   *slidingWindow

	stopJanitor chan struct{}
}

// NewServer creates a new Server and registers all routes.
func NewServer(
	dbClient *database.Client,
	auth *services.AuthService,
	users *services.UserService,
	sessions *services.SessionService,
	messages *services.MessageService,
	agentLoop *agent.Agent,
	bridge *mcp.Bridge,
	aclStore *acl.Store,
	evaluator *acl.Evaluator,
) *Server {
	s := &Server{
		dbClient:      dbClient,
		auth:          auth,
		users:         users,
		sessions:      sessions,
		messages:      messages,
		agent:         agentLoop,
		bridge:        bridge,
		aclStore:      aclStore,
		acl:           evaluator,
		dbBreaker:     breaker.New("database", 5, 30*time.Second),
		globalLimiter: newSlidingWindow(globalRateLimit, rateLimitWindow),
		chatLimiter:   newSlidingWindow(chatRateLimit, rateLimitWindow),
		stopJanitor:   make(chan struct{}),
	}

	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	s.registerRoutes(e)
	s.echo = e

	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.Use(securityHeaders())
	e.Use(requestLogger())

	// Public routes; rate-limited by client IP since no user is known yet.
	e.GET("/api/health", s.healthHandler, rateLimit(s.globalLimiter))
	e.POST("/api/auth/google", s.googleLoginHandler, rateLimit(s.globalLimiter))

	// Authenticated routes. The global limiter runs after auth so its
	// window is keyed by user email, not by client IP.
	g := e.Group("/api", s.requireAuth, rateLimit(s.globalLimiter))
	g.GET("/auth/me", s.meHandler)
	g.POST("/auth/logout", s.logoutHandler)

	g.POST("/sessions", s.createSessionHandler)
	g.GET("/sessions", s.listSessionsHandler)
	g.GET("/sessions/:id", s.getSessionHandler)
	g.PUT("/sessions/:id", s.updateSessionTitleHandler)
	g.DELETE("/sessions/:id", s.deleteSessionHandler)

	g.POST("/sessions/:id/messages", s.chatHandler, rateLimit(s.chatLimiter))
	g.GET("/sessions/:id/messages/stream", s.chatStreamHandler, rateLimit(s.chatLimiter))

	g.GET("/tools", s.listToolsHandler)

	// Admin routes
	admin := g.Group("/admin", s.requireAdmin)
	admin.GET("/acl/tools", s.listToolACLsHandler)
	admin.PUT("/acl/tools/:name", s.upsertToolACLsHandler)
	admin.DELETE("/acl/tools/:name", s.deleteToolACLsHandler)
	admin.GET("/acl/global", s.getGlobalACLHandler)
	admin.PUT("/acl/global", s.updateGlobalACLHandler)
	admin.GET("/acl/available-acls", s.availableACLsHandler)
	admin.GET("/acl/available-tools", s.availableToolsHandler)
	admin.GET("/users", s.listUsersHandler)
	admin.PUT("/users/:id/acls", s.updateUserACLsHandler)
}

// Start begins serving on addr. Blocks until the listener fails or
// Shutdown is called.
func (s *Server) Start(addr string) error {
	go s.janitor()

	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	close(s.stopJanitor)
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// janitor periodically drops idle rate-limiter buckets.
func (s *Server) janitor() {
	ticker := time.NewTicker(rateLimitWindow)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.globalLimiter.prune()
			s.chatLimiter.prune()
		case <-s.stopJanitor:
			return
		}
	}
}
