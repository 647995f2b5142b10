// Package cache provides a namespaced, typed key/value layer over Redis with
// TTL semantics. When Redis is not configured or unreachable, operations
// transparently fall back to a process-local map with the same TTLs. The
// cache stops being shared across processes in that mode, but correctness is
// preserved.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect opens a Redis client for the given URL and verifies connectivity.
// Returns nil (in-memory fallback mode) when the URL is empty or the ping
// fails; cache degradation is never fatal.
func Connect(ctx context.Context, url string) *redis.Client {
	if url == "" {
		slog.Info("Redis not configured, using in-memory cache fallback")
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		slog.Warn("Invalid Redis URL, using in-memory cache fallback", "error", err)
		return nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis unreachable, using in-memory cache fallback", "error", err)
		_ = client.Close()
		return nil
	}

	slog.Info("Connected to Redis")
	return client
}

// Cache is a typed key/value cache scoped to a key namespace with a default
// TTL. Values are JSON-serialized (self-describing). A nil Redis client, or
// any Redis I/O error, routes the operation to the in-memory store.
type Cache struct {
	rdb        *redis.Client
	mem        *memoryStore
	namespace  string
	defaultTTL time.Duration
	now        func() time.Time
}

// New creates a Cache. rdb may be nil for pure in-memory operation.
func New(rdb *redis.Client, namespace string, defaultTTL time.Duration) *Cache {
	return &Cache{
		rdb:        rdb,
		mem:        newMemoryStore(),
		namespace:  namespace,
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (c *Cache) key(k string) string {
	return c.namespace + ":" + k
}

// Get unmarshals the cached value for key into dest.
// Returns false when the key is absent or expired. Redis errors degrade to
// the in-memory store instead of surfacing to the caller.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	full := c.key(key)

	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, full).Bytes()
		switch {
		case err == nil:
			if err := json.Unmarshal(data, dest); err != nil {
				return false, fmt.Errorf("unmarshal cached value %q: %w", full, err)
			}
			return true, nil
		case errors.Is(err, redis.Nil):
			return false, nil
		default:
			slog.Warn("Redis get failed, falling back to in-memory cache",
				"key", full, "error", err)
		}
	}

	data, ok := c.mem.get(full, c.now())
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("unmarshal cached value %q: %w", full, err)
	}
	return true, nil
}

// Set stores value under key. A zero ttl uses the cache's default.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	full := c.key(key)

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %q: %w", full, err)
	}

	if c.rdb != nil {
		err := c.rdb.Set(ctx, full, data, ttl).Err()
		if err == nil {
			return nil
		}
		slog.Warn("Redis set failed, falling back to in-memory cache",
			"key", full, "error", err)
	}

	c.mem.set(full, data, ttl, c.now())
	return nil
}

// Delete removes key from both tiers.
func (c *Cache) Delete(ctx context.Context, key string) {
	full := c.key(key)
	if c.rdb != nil {
		if err := c.rdb.Del(ctx, full).Err(); err != nil {
			slog.Warn("Redis delete failed", "key", full, "error", err)
		}
	}
	c.mem.delete(full)
}
