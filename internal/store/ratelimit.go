package store

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/kyctrust/kyctrust-manager/internal/dependency"
	"github.com/kyctrust/kyctrust-manager/internal/entity"
)

// Rows older than this are deleted opportunistically on every call; there
// is no dedicated sweep job.
const rateLimitRetention = 48 * time.Hour

type rateLimitStore struct {
	*MYSQLStore
}

// RateLimit returns an object implementing the RateLimiter interface
func (ms *MYSQLStore) RateLimit() dependency.RateLimiter {
	return &rateLimitStore{
		MYSQLStore: ms,
	}
}

// Allow records one attempt for key and decides by counting attempts within
// the trailing window, the fresh insert included, so "limit" successes are
// possible before lockout. The insert and the count are not atomic: two
// concurrent requests can both slip under the limit. Accepted for this
// traffic profile.
func (rl *rateLimitStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (entity.RateLimitResult, error) {
	now := rl.Now()

	err := ExecNamed(ctx, rl.DB(), `INSERT INTO rate_limit (attempt_key, ts) VALUES (:key, :ts)`, map[string]any{
		"key": key,
		"ts":  now,
	})
	if err != nil {
		return entity.RateLimitResult{}, fmt.Errorf("failed to record rate limit attempt: %w", err)
	}

	count, err := QueryCountNamed(ctx, rl.DB(), `
	SELECT COUNT(*) FROM rate_limit
	WHERE attempt_key = :key AND ts >= :windowStart`, map[string]any{
		"key":         key,
		"windowStart": now.Add(-window),
	})
	if err != nil {
		return entity.RateLimitResult{}, fmt.Errorf("failed to count rate limit attempts: %w", err)
	}

	rl.cleanup(ctx, now)

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return entity.RateLimitResult{
		Allowed:   count <= limit,
		Remaining: remaining,
		Reset:     now.Add(window),
	}, nil
}

// cleanup drops stale attempt rows. Best effort: failures are logged and
// never surfaced to the caller.
func (rl *rateLimitStore) cleanup(ctx context.Context, now time.Time) {
	err := ExecNamed(ctx, rl.DB(), `DELETE FROM rate_limit WHERE ts < :cutoff`, map[string]any{
		"cutoff": now.Add(-rateLimitRetention),
	})
	if err != nil {
		slog.Default().WarnContext(ctx, "rate limit cleanup failed", "error", err)
	}
}
