package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// TriggerGuard implements ports.TriggerGuard using Redis SET NX. A claimed
// key outlives the sweep that set it, so an at-least-once scheduler retrying
// the same due firing always loses the claim.
type TriggerGuard struct {
	client *goredis.Client
	prefix string
}

// NewTriggerGuard creates a new Redis-backed trigger guard.
func NewTriggerGuard(client *goredis.Client) *TriggerGuard {
	return &TriggerGuard{
		client: client,
		prefix: "trigger:",
	}
}

// Acquire atomically claims a trigger key. Returns true if this caller won
// the claim, false if the key was already recorded.
func (g *TriggerGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — this firing was already claimed
			return false, nil
		}
		return false, fmt.Errorf("redis trigger claim: %w", err)
	}
	return result == "OK", nil
}
