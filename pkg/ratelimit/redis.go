package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "ratelimit:"

// allowScript prunes, counts and conditionally records a hit in one atomic
// step. Scores are microseconds from the redis clock so replicas with skewed
// clocks share one window. Numbers are formatted explicitly since redis would
// otherwise render large Lua numbers in exponent form.
//
// KEYS[1] window key; ARGV[1] window in microseconds, ARGV[2] limit,
// ARGV[3] unique member. Returns {allowed, used, oldest score or -1}.
var allowScript = redis.NewScript(`
local t = redis.call('TIME')
local now = tonumber(t[1]) * 1000000 + tonumber(t[2])
local window = tonumber(ARGV[1])
local limit = tonumber(ARGV[2])

redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', string.format('%d', now - window))
local used = redis.call('ZCARD', KEYS[1])
local allowed = 0
if used < limit then
	redis.call('ZADD', KEYS[1], string.format('%d', now), ARGV[3])
	redis.call('PEXPIRE', KEYS[1], string.format('%d', math.ceil(window / 1000)))
	used = used + 1
	allowed = 1
end

local first = -1
local oldest = redis.call('ZRANGE', KEYS[1], 0, 0, 'WITHSCORES')
if #oldest > 0 then
	first = tonumber(oldest[2])
end

return {allowed, used, first}
`)

// RedisStore keeps one sorted set per key, scored by request time in
// microseconds, so every replica shares the same window.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (Result, error) {
	// the member is unique so concurrent requests in the same microsecond all count
	vals, err := allowScript.Run(ctx, s.client, []string{redisKeyPrefix + key},
		window.Microseconds(), limit, uuid.NewString()).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("could not check rate limit window: %w", err)
	}
	if len(vals) != 3 {
		return Result{}, fmt.Errorf("unexpected rate limit reply %v", vals)
	}

	res := Result{
		Allowed: vals[0] == 1,
		Limit:   limit,
		ResetAt: time.Now().Add(window),
	}
	if res.Allowed {
		res.Remaining = limit - int(vals[1])
	}
	if first := vals[2]; first >= 0 {
		res.ResetAt = time.UnixMicro(first).Add(window)
	}

	return res, nil
}
