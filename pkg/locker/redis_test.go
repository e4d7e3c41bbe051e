package locker

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testLockKey = "ingest:content:693134"

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	// In-memory Redis instance for testing
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}

	return client, cleanup
}

func TestRedisLocker_Acquire_Success(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	locker := NewRedisLocker(client, zap.NewNop())

	acquired, err := locker.Acquire(context.Background(), testLockKey, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, acquired, "first acquisition should succeed")
}

func TestRedisLocker_Acquire_AlreadyHeld(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	logger := zap.NewNop()
	locker1 := NewRedisLocker(client, logger)
	locker2 := NewRedisLocker(client, logger)

	ctx := context.Background()
	ttl := 5 * time.Second

	acquired1, err := locker1.Acquire(ctx, testLockKey, ttl)
	require.NoError(t, err)
	require.True(t, acquired1)

	// Contention is reported as false, not as an error.
	acquired2, err := locker2.Acquire(ctx, testLockKey, ttl)
	require.NoError(t, err)
	assert.False(t, acquired2, "second acquisition should fail while the lock is held")
}

func TestRedisLocker_ReleaseThenReacquire(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	locker := NewRedisLocker(client, zap.NewNop())
	ctx := context.Background()
	ttl := 5 * time.Second

	acquired, err := locker.Acquire(ctx, testLockKey, ttl)
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, locker.Release(ctx, testLockKey))

	acquired2, err := locker.Acquire(ctx, testLockKey, ttl)
	require.NoError(t, err)
	assert.True(t, acquired2, "should reacquire after release")
}

func TestRedisLocker_Release_NotOwned(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	logger := zap.NewNop()
	owner := NewRedisLocker(client, logger)
	other := NewRedisLocker(client, logger)

	ctx := context.Background()

	acquired, err := owner.Acquire(ctx, testLockKey, 5*time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	// Releasing a lock this instance never acquired is a no-op.
	require.NoError(t, other.Release(ctx, testLockKey))

	// The owner can still release.
	require.NoError(t, owner.Release(ctx, testLockKey))
}

func TestRedisLocker_ConcurrentAcquisition(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	logger := zap.NewNop()
	ctx := context.Background()

	// Simulate several instances racing to ingest the same content.
	const numInstances = 5
	results := make(chan bool, numInstances)

	for i := 0; i < numInstances; i++ {
		go func() {
			locker := NewRedisLocker(client, logger)
			acquired, _ := locker.Acquire(ctx, testLockKey, 2*time.Second)
			results <- acquired
		}()
	}

	successCount := 0
	for i := 0; i < numInstances; i++ {
		if <-results {
			successCount++
		}
	}

	assert.Equal(t, 1, successCount, "exactly one instance should acquire the lock")
}

func TestRedisLocker_ContextCancellation(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	defer cleanup()

	locker := NewRedisLocker(client, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	acquired, err := locker.Acquire(ctx, testLockKey, 5*time.Second)
	assert.Error(t, err)
	assert.False(t, acquired)
}
