package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// allowScript atomically prunes expired attempts, checks the limit and
// records the attempt when admitted. Scores and arguments are unix
// milliseconds. Returns {allowed, count, oldestScore}.
var allowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, 0, now - window)

local count = redis.call('ZCARD', key)
local allowed = 0
if count < limit then
	redis.call('ZADD', key, now, member)
	redis.call('PEXPIRE', key, window)
	allowed = 1
	count = count + 1
end

local oldest = 0
local head = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if head[2] then
	oldest = tonumber(head[2])
end

return {allowed, count, oldest}
`)

// RedisStore keeps sliding-window state in Redis sorted sets, one per key,
// so the limit holds across processes sharing the same Redis instance.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore creates a Redis-backed store.
func NewRedisStore(client redis.UniversalClient) (*RedisStore, error) {
	if client == nil {
		return nil, ErrStoreRequired
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Allow(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (bool, int64, time.Time, error) {
	res, err := allowScript.Run(ctx, s.client,
		[]string{key},
		now.UnixMilli(),
		window.Milliseconds(),
		limit,
		uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return false, 0, time.Time{}, fmt.Errorf("ratelimit: redis allow: %w", err)
	}
	if len(res) != 3 {
		return false, 0, time.Time{}, fmt.Errorf("ratelimit: redis allow: unexpected reply length %d", len(res))
	}

	return res[0] == 1, res[1], millisToTime(res[2]), nil
}

func (s *RedisStore) Window(ctx context.Context, key string, window time.Duration, now time.Time) (int64, time.Time, error) {
	cutoff := now.UnixMilli() - window.Milliseconds()

	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", cutoff))
	countCmd := pipe.ZCard(ctx, key)
	headCmd := pipe.ZRangeWithScores(ctx, key, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, time.Time{}, fmt.Errorf("ratelimit: redis window: %w", err)
	}

	count := countCmd.Val()
	head := headCmd.Val()
	if count == 0 || len(head) == 0 {
		return 0, time.Time{}, nil
	}

	return count, millisToTime(int64(head[0].Score)), nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("ratelimit: redis reset: %w", err)
	}
	return nil
}

func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
