package redis_test

import (
	"context"
	"testing"

	"civic/pkg/storage/redis"

	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func setupRedis(t *testing.T) (*redis.Redis, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	r, err := redis.New(ctx, redis.Options{URL: url, PoolSize: 2})
	require.NoError(t, err)

	return r, func() {
		_ = r.Close()
		_ = container.Terminate(ctx)
	}
}

func TestRedis_Visits(t *testing.T) {
	r, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, r.Ping(ctx))

	total, err := r.Visits(ctx, "/tckn")
	require.NoError(t, err)
	require.Zero(t, total)

	for i := int64(1); i <= 3; i++ {
		total, err = r.IncrVisits(ctx, "/tckn")
		require.NoError(t, err)
		require.Equal(t, i, total)
	}

	total, err = r.Visits(ctx, "/tckn")
	require.NoError(t, err)
	require.Equal(t, int64(3), total)

	total, err = r.Visits(ctx, "/other")
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestNew_BadURL(t *testing.T) {
	_, err := redis.New(context.Background(), redis.Options{URL: "not a url"})
	require.Error(t, err)
}
