package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_Allow(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	l := NewMemoryLimiter(2, 2, time.Hour)
	l.now = func() time.Time { return clock }

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok, "budget spent")

	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "keys are independent")

	clock = clock.Add(31 * time.Minute)
	ok, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok, "one token refilled after half the window passed")
}

func TestMemoryLimiter_Prune(t *testing.T) {
	clock := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(10, 1, time.Minute)
	l.now = func() time.Time { return clock }

	_, _ = l.Allow(context.Background(), "old")
	clock = clock.Add(2 * time.Minute)
	l.prune(clock)

	assert.NotContains(t, l.buckets, "old")
}
