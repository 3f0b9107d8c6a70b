package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache holds the active intervals of a scope so availability reads can skip the database.
// Entries are versioned by a per-scope generation. Invalidate advances the generation,
// so a snapshot read under an older generation is never served after a write.
type Cache interface {
	Generation(ctx context.Context, stadiumID string, date time.Time) (int64, error)
	Get(ctx context.Context, stadiumID string, date time.Time, gen int64) ([]Interval, bool, error)
	Set(ctx context.Context, stadiumID string, date time.Time, gen int64, intervals []Interval) error
	Invalidate(ctx context.Context, stadiumID string, date time.Time) error
}

// NoopCache never hits. Used when Redis is not configured.
type NoopCache struct{}

func (NoopCache) Generation(context.Context, string, time.Time) (int64, error) { return 0, nil }

func (NoopCache) Get(context.Context, string, time.Time, int64) ([]Interval, bool, error) {
	return nil, false, nil
}

func (NoopCache) Set(context.Context, string, time.Time, int64, []Interval) error { return nil }

func (NoopCache) Invalidate(context.Context, string, time.Time) error { return nil }

type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisCache(client redis.Cmdable, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func scopeKey(stadiumID string, date time.Time) string {
	return stadiumID + ":" + date.Format(DateLayout)
}

func cacheKey(stadiumID string, date time.Time, gen int64) string {
	return fmt.Sprintf("avail:%s:%d", scopeKey(stadiumID, date), gen)
}

func genKey(stadiumID string, date time.Time) string {
	return "avail:gen:" + scopeKey(stadiumID, date)
}

func (c *RedisCache) Generation(ctx context.Context, stadiumID string, date time.Time) (int64, error) {
	gen, err := c.client.Get(ctx, genKey(stadiumID, date)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation failed: %w", err)
	}
	return gen, nil
}

func (c *RedisCache) Get(ctx context.Context, stadiumID string, date time.Time, gen int64) ([]Interval, bool, error) {
	raw, err := c.client.Get(ctx, cacheKey(stadiumID, date, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	intervals, err := decodeIntervals(raw)
	if err != nil {
		return nil, false, err
	}
	return intervals, true, nil
}

func (c *RedisCache) Set(ctx context.Context, stadiumID string, date time.Time, gen int64, intervals []Interval) error {
	raw, err := encodeIntervals(intervals)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, cacheKey(stadiumID, date, gen), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Invalidate bumps the scope generation. The generation key outlives every entry
// written under it, so it never resets while an older entry is still readable.
func (c *RedisCache) Invalidate(ctx context.Context, stadiumID string, date time.Time) error {
	key := genKey(stadiumID, date)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		if c.ttl > 0 {
			pipe.Expire(ctx, key, 2*c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis incr generation failed: %w", err)
	}
	return nil
}

// Cached intervals are stored as [[start,end],...] in seconds.
func encodeIntervals(intervals []Interval) ([]byte, error) {
	pairs := make([][2]int, len(intervals))
	for i, iv := range intervals {
		pairs[i] = [2]int{int(iv.Start), int(iv.End)}
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("encode intervals: %w", err)
	}
	return b, nil
}

func decodeIntervals(raw []byte) ([]Interval, error) {
	var pairs [][2]int
	if err := json.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("decode intervals: %w", err)
	}
	intervals := make([]Interval, len(pairs))
	for i, p := range pairs {
		intervals[i] = Interval{Start: Clock(p[0]), End: Clock(p[1])}
	}
	return intervals, nil
}
