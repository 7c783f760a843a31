// Package broadcast mirrors the engine's latest GameState snapshot to
// Redis under a play-id key with a short TTL, so a second process (a
// spectator view, a coaching replay tool) can read current state
// without holding a reference to the live *engine.Engine. This is
// ambient infrastructure the engine itself never depends on.
package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/coverageeng/snap-engine/internal/model"
)

// SnapshotTTL is how long a published snapshot survives in Redis after
// its most recent publish before it's considered stale.
const SnapshotTTL = 10 * time.Second

// KeyPrefix namespaces snapshot keys from anything else sharing the
// Redis instance.
const KeyPrefix = "snapengine:play:"

// Cache publishes GameState snapshots to Redis and reads them back.
type Cache struct {
	client *redis.Client
}

// Connect parses redisURL and verifies connectivity with a short-lived
// ping, matching the teacher corpus's connect-then-ping convention.
func Connect(ctx context.Context, redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &Cache{client: client}, nil
}

// Close closes the underlying Redis connection.
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func key(playID string) string { return KeyPrefix + playID }

// Publish stores the snapshot under playID with SnapshotTTL, overwriting
// any previous snapshot for the same play.
func (c *Cache) Publish(ctx context.Context, playID string, snapshot *model.GameState) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := c.client.Set(ctx, key(playID), data, SnapshotTTL).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot for play %s: %w", playID, err)
	}
	return nil
}

// Latest retrieves the most recently published snapshot for playID, or
// ok=false if none is cached (expired or never published).
func (c *Cache) Latest(ctx context.Context, playID string) (snapshot *model.GameState, ok bool, err error) {
	val, err := c.client.Get(ctx, key(playID)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get snapshot for play %s: %w", playID, err)
	}
	var gs model.GameState
	if err := json.Unmarshal([]byte(val), &gs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal snapshot for play %s: %w", playID, err)
	}
	return &gs, true, nil
}

// Clear removes a play's cached snapshot (e.g. on nextPlay/resetPlay,
// so stale state never outlives the play it describes).
func (c *Cache) Clear(ctx context.Context, playID string) error {
	if err := c.client.Del(ctx, key(playID)).Err(); err != nil {
		return fmt.Errorf("failed to clear snapshot for play %s: %w", playID, err)
	}
	return nil
}

// HealthCheck verifies Redis connectivity, for the demo server's
// /health endpoint.
func (c *Cache) HealthCheck(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
