package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimitAllow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	defer db.Close()
	rl := db.RateLimit()

	const limit = 3
	for i := 0; i < limit; i++ {
		res, err := rl.Allow(ctx, "gate:unlock:1.2.3.4", limit, time.Minute)
		assert.NoError(t, err)
		assert.True(t, res.Allowed, "attempt %d should be allowed", i+1)
	}

	res, err := rl.Allow(ctx, "gate:unlock:1.2.3.4", limit, time.Minute)
	assert.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Zero(t, res.Remaining)
	assert.False(t, res.Reset.IsZero())

	// other keys are unaffected
	res, err = rl.Allow(ctx, "gate:unlock:5.6.7.8", limit, time.Minute)
	assert.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRateLimitWindowExpiry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	defer db.Close()
	rl := db.RateLimit()

	res, err := rl.Allow(ctx, "k", 1, time.Second)
	assert.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = rl.Allow(ctx, "k", 1, time.Second)
	assert.NoError(t, err)
	assert.False(t, res.Allowed)

	time.Sleep(1100 * time.Millisecond)

	res, err = rl.Allow(ctx, "k", 1, time.Second)
	assert.NoError(t, err)
	assert.True(t, res.Allowed)
}
