package bureau

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"lendflow/internal/decision/ports"
)

const cacheKeyPrefix = "bureau:score:"

// ScoreCache caches successful bureau reports in Redis, keyed by phone number.
// Cache failures degrade to a bureau call, never to a lookup error.
type ScoreCache struct {
	client *goredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewScoreCache(client *goredis.Client, ttl time.Duration, logger *slog.Logger) *ScoreCache {
	return &ScoreCache{client: client, ttl: ttl, logger: logger}
}

// Get returns a cached report and whether the lookup hit.
func (c *ScoreCache) Get(ctx context.Context, phone string) (*ports.CreditReport, bool) {
	val, err := c.client.Get(ctx, cacheKeyPrefix+phone).Result()
	if err != nil {
		if err != goredis.Nil && c.logger != nil {
			c.logger.WarnContext(ctx, "score cache read failed", "error", err)
		}
		return nil, false
	}

	var report ports.CreditReport
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		if c.logger != nil {
			c.logger.WarnContext(ctx, "score cache entry corrupt", "error", err)
		}
		return nil, false
	}
	return &report, true
}

// Put stores a report for the configured TTL.
func (c *ScoreCache) Put(ctx context.Context, phone string, report *ports.CreditReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal score cache entry: %w", err)
	}
	if err := c.client.Set(ctx, cacheKeyPrefix+phone, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("write score cache entry: %w", err)
	}
	return nil
}
