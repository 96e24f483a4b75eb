package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/strongfit/studio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	srv := miniredis.RunT(t)
	return New(config.Config{
		CacheEnabled: true,
		CacheTTL:     60,
		RedisAddr:    srv.Addr(),
	}, zap.NewNop())
}

func TestSetGetRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	type item struct {
		Name string `json:"name"`
	}
	c.Set(ctx, "athletes:list", []item{{Name: "Marta"}})

	var out []item
	require.True(t, c.Get(ctx, "athletes:list", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Marta", out[0].Name)
}

func TestGetMiss(t *testing.T) {
	c := newTestCache(t)

	var out []string
	assert.False(t, c.Get(context.Background(), "missing", &out))
}

func TestInvalidate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "exercises:list", []string{"squat"})
	c.Invalidate(ctx, "exercises:list")

	var out []string
	assert.False(t, c.Get(ctx, "exercises:list", &out))
}

func TestDisabledCacheIsNoOp(t *testing.T) {
	c := New(config.Config{CacheEnabled: false}, zap.NewNop())
	ctx := context.Background()

	c.Set(ctx, "key", "value")
	c.Invalidate(ctx, "key")

	var out string
	assert.False(t, c.Get(ctx, "key", &out))
}
