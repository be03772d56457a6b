package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// intentKeyPrefix is the prefix for all notification dedupe keys
const intentKeyPrefix = "claim_notify:"

// DefaultDedupeTTLMinutes is the default suppression window in minutes
const DefaultDedupeTTLMinutes = 30

// IntentDeduplicator provides Redis-based notification deduplication. A
// dispatched intent's dedupe key is remembered for a TTL so retried or
// replayed claim events do not mail the same people twice.
type IntentDeduplicator struct {
	client *redis.Client
}

func NewIntentDeduplicator(client *redis.Client) *IntentDeduplicator {
	return &IntentDeduplicator{client: client}
}

func (d *IntentDeduplicator) buildKey(dedupeKey string) string {
	return intentKeyPrefix + dedupeKey
}

// TryAcquire atomically claims the dedupe key using SetNX. Returns true if
// this caller should send the notification, false if an identical intent was
// already dispatched within the TTL. SetNX keeps multi-instance deployments
// from double-sending.
func (d *IntentDeduplicator) TryAcquire(ctx context.Context, dedupeKey string, ttl time.Duration) (bool, error) {
	acquired, err := d.client.SetNX(ctx, d.buildKey(dedupeKey), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire notification lock: %w", err)
	}
	return acquired, nil
}

// Clear releases a dedupe key, for example after a send failed and should be
// retried immediately.
func (d *IntentDeduplicator) Clear(ctx context.Context, dedupeKey string) error {
	if err := d.client.Del(ctx, d.buildKey(dedupeKey)).Err(); err != nil {
		return fmt.Errorf("failed to clear notification lock: %w", err)
	}
	return nil
}
