// Package redis implements the redis-backed storage used for counters.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"civic/pkg/storage"

	"github.com/redis/go-redis/v9"
)

const visitsKeyPrefix = "visits:"

// Options defines the redis connection parameters. Zero values keep the
// defaults parsed from URL.
type Options struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Redis wraps a go-redis client.
type Redis struct {
	*redis.Client
}

var _ storage.VisitStorage = (*Redis)(nil)

// New connects to redis and pings it.
func New(ctx context.Context, options Options) (*Redis, error) {
	opts, err := redis.ParseURL(options.URL)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis URL: %w", err)
	}

	if options.PoolSize > 0 {
		opts.PoolSize = options.PoolSize
	}
	if options.MinIdleConns > 0 {
		opts.MinIdleConns = options.MinIdleConns
	}
	if options.DialTimeout > 0 {
		opts.DialTimeout = options.DialTimeout
	}
	if options.ReadTimeout > 0 {
		opts.ReadTimeout = options.ReadTimeout
	}
	if options.WriteTimeout > 0 {
		opts.WriteTimeout = options.WriteTimeout
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &Redis{Client: client}, nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis: %w", err)
	}

	return nil
}

func (r *Redis) IncrVisits(ctx context.Context, page string) (int64, error) {
	total, err := r.Incr(ctx, visitsKeyPrefix+page).Result()
	if err != nil {
		return 0, fmt.Errorf("could not increment visits: %w", err)
	}

	return total, nil
}

func (r *Redis) Visits(ctx context.Context, page string) (int64, error) {
	total, err := r.Get(ctx, visitsKeyPrefix+page).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("could not get visits: %w", err)
	}

	return total, nil
}
