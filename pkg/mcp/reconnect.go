package mcp

import (
	"context"
	"time"
)

// triggerReconnect starts a background reconnect for the server unless one
// is already running.
func (b *Bridge) triggerReconnect(conn *ServerConn) {
	if !conn.reconnecting.CompareAndSwap(false, true) {
		return
	}
	go b.reconnect(conn)
}

// reconnect retries the server connection with exponential backoff. On
// success the fresh connection replaces the stale one and the tool index is
// rebuilt in the same critical section, so routing never observes a half
// swapped state. On exhaustion the flag clears so a later failure retries.
func (b *Bridge) reconnect(stale *ServerConn) {
	defer stale.reconnecting.Store(false)

	backoff := b.reconnectBackoffMin
	for attempt := 1; attempt <= b.reconnectAttempts; attempt++ {
		time.Sleep(backoff)

		ctx, cancel := context.WithTimeout(context.Background(), initTimeout)
		fresh, err := b.connectServer(ctx, stale.ID, stale.URL)
		cancel()

		if err == nil {
			_ = stale.session.Close()

			b.mu.Lock()
			b.servers[stale.ID] = fresh
			b.rebuildIndexLocked()
			b.mu.Unlock()

			b.logger.Info("MCP server reconnected",
				"server", stale.ID, "attempt", attempt,
				"tools", len(fresh.descriptors))
			return
		}

		b.logger.Warn("MCP reconnect attempt failed",
			"server", stale.ID, "attempt", attempt,
			"max_attempts", b.reconnectAttempts, "error", err)

		backoff *= 2
		if backoff > b.reconnectBackoffCap {
			backoff = b.reconnectBackoffCap
		}
	}

	b.logger.Error("MCP reconnect attempts exhausted", "server", stale.ID)
}
