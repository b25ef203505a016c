package redis

import (
	"context"
	"testing"
	"time"

	"tokenpay-core/internal/core/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerGuard_Acquire_FirstClaimWins(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewTriggerGuard(client)
	ctx := context.Background()

	key := domain.BuildTriggerKey(uuid.New(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	ok, err := guard.Acquire(ctx, key, 48*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok, "first claim should win")

	ok, err = guard.Acquire(ctx, key, 48*time.Hour)
	require.NoError(t, err)
	assert.False(t, ok, "duplicate claim should lose")
}

func TestTriggerGuard_Acquire_DistinctDueDates(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewTriggerGuard(client)
	ctx := context.Background()

	id := uuid.New()
	march := domain.BuildTriggerKey(id, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	april := domain.BuildTriggerKey(id, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))

	ok, err := guard.Acquire(ctx, march, 48*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)

	// The next cycle of the same subscription is a fresh key.
	ok, err = guard.Acquire(ctx, april, 48*time.Hour)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTriggerGuard_Acquire_ExpiredKeyReclaims(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	guard := NewTriggerGuard(client)
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "sub:2024-03-01", 1*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	s.FastForward(2 * time.Second)

	ok, err = guard.Acquire(ctx, "sub:2024-03-01", 1*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "expired claim should be acquirable again")
}
