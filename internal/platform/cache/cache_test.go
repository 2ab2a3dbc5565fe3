package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/team-alchemy-backend/internal/platform/logger"
)

type payload struct {
	TeamID uint    `json:"team_id"`
	Score  float64 `json:"score"`
}

func TestRedisCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	c, err := New(ctx, "redis://"+mr.Addr(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	var got payload
	hit, err := c.Get(ctx, "team:1", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.Set(ctx, "team:1", payload{TeamID: 1, Score: 72.5}, time.Minute))
	assert.True(t, mr.Exists("team-alchemy:team:1"))

	hit, err = c.Get(ctx, "team:1", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, payload{TeamID: 1, Score: 72.5}, got)

	mr.FastForward(2 * time.Minute)
	hit, err = c.Get(ctx, "team:1", &got)
	require.NoError(t, err)
	assert.False(t, hit, "entry should expire")
}

func TestRedisCacheDropsCorruptEntries(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()
	c := NewRedis(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), logger.Nop())

	require.NoError(t, mr.Set("team-alchemy:bad", "{not json"))
	var got payload
	hit, err := c.Get(ctx, "bad", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.False(t, mr.Exists("team-alchemy:bad"))

	require.NoError(t, c.Set(ctx, "gone", payload{}, 0))
	require.NoError(t, c.Delete(ctx, "gone"))
	assert.False(t, mr.Exists("team-alchemy:gone"))
}

func TestNewWithoutURLIsNoop(t *testing.T) {
	c, err := New(context.Background(), "", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Set(context.Background(), "k", 1, time.Minute))
	var v int
	hit, err := c.Get(context.Background(), "k", &v)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := New(context.Background(), "not-a-url://x", logger.Nop())
	assert.Error(t, err)
}
