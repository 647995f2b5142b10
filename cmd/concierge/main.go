// Concierge gateway server. Provides the staff HTTP/SSE API, runs the
// agent loop against Anthropic, and bridges tool calls to the configured
// MCP servers.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/isprava/concierge/pkg/acl"
	"github.com/isprava/concierge/pkg/agent"
	"github.com/isprava/concierge/pkg/api"
	"github.com/isprava/concierge/pkg/cache"
	"github.com/isprava/concierge/pkg/config"
	"github.com/isprava/concierge/pkg/database"
	"github.com/isprava/concierge/pkg/llm"
	"github.com/isprava/concierge/pkg/mcp"
	"github.com/isprava/concierge/pkg/services"
	"github.com/isprava/concierge/pkg/version"
)

// authPurgeInterval is how often expired bearer tokens are swept.
const authPurgeInterval = time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting concierge",
		"version", version.GitCommit,
		"http_port", cfg.HTTPPort,
		"mcp_servers", len(cfg.MCPServers))

	ctx := context.Background()

	// 1. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 2. Shared cache; a missing or unreachable Redis degrades to the
	// process-local store.
	rdb := cache.Connect(ctx, cfg.RedisURL)
	sharedCache := cache.New(rdb, version.AppName, 5*time.Minute)

	// 3. Domain services
	users := services.NewUserService(dbClient.Client)
	auth := services.NewAuthService(dbClient.Client, users)
	sessions := services.NewSessionService(dbClient.Client)
	messages := services.NewMessageService(dbClient.Client)

	// 4. Access policy
	aclStore := acl.NewStore(dbClient.Client, sharedCache)
	seedPath := cfg.ACLSeedFile
	if _, statErr := os.Stat(seedPath); statErr != nil {
		slog.Warn("ACL seed file not found, using deny-by-default policy", "path", seedPath)
		seedPath = ""
	}
	if err := aclStore.Seed(ctx, seedPath); err != nil {
		slog.Error("Failed to seed ACL config", "error", err)
		os.Exit(1)
	}
	evaluator := acl.NewEvaluator(aclStore, users, sharedCache)

	// 5. MCP bridge. Startup requires at least one reachable server.
	bridge := mcp.NewBridge(sharedCache)
	if err := bridge.Connect(ctx, cfg.MCPServers); err != nil {
		slog.Error("MCP startup failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := bridge.Close(); err != nil {
			slog.Error("Error closing MCP bridge", "error", err)
		}
	}()
	slog.Info("MCP servers connected", "tools", len(bridge.AllTools()))

	// 6. Agent loop
	llmClient := llm.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	agentLoop := agent.New(llmClient, bridge, evaluator, sessions, messages, sharedCache)

	// 7. HTTP server
	httpServer := api.NewServer(
		dbClient, auth, users, sessions, messages, agentLoop, bridge, aclStore, evaluator,
	)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTPPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 8. Background sweep of expired bearer tokens
	purgeCtx, purgeCancel := context.WithCancel(ctx)
	defer purgeCancel()
	go purgeExpiredTokens(purgeCtx, auth)

	slog.Info("Concierge started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

// purgeExpiredTokens periodically deletes expired auth sessions so the
// table does not grow unbounded.
func purgeExpiredTokens(ctx context.Context, auth *services.AuthService) {
	ticker := time.NewTicker(authPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			count, err := auth.PurgeExpired(ctx)
			if err != nil {
				slog.Warn("Failed to purge expired auth sessions", "error", err)
				continue
			}
			if count > 0 {
				slog.Info("Purged expired auth sessions", "count", count)
			}
		case <-ctx.Done():
			return
		}
	}
}
