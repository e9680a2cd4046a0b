package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CleanupDropsAbandonedKeys(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(WithCleanupInterval(time.Hour))
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()
	now := time.Now()

	allowed, _, _, err := store.Allow(ctx, "abandoned", 5, 50*time.Millisecond, now)
	require.NoError(t, err)
	require.True(t, allowed)

	// The key is never touched again; once its window has passed the sweep
	// alone must reclaim it.
	time.Sleep(60 * time.Millisecond)
	store.cleanup()

	store.mu.Lock()
	_, exists := store.windows["abandoned"]
	store.mu.Unlock()
	assert.False(t, exists, "expired window survived cleanup")
}

func TestMemoryStore_CleanupKeepsLiveWindows(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(WithCleanupInterval(time.Hour))
	t.Cleanup(func() { _ = store.Close() })

	ctx := context.Background()

	_, _, _, err := store.Allow(ctx, "live", 5, time.Hour, time.Now())
	require.NoError(t, err)

	store.cleanup()

	store.mu.Lock()
	timestamps := store.windows["live"]
	store.mu.Unlock()
	assert.Len(t, timestamps, 1, "unexpired window must survive cleanup")
}
