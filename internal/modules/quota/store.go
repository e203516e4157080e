package quota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	counterKeyPrefix = "quota:%s:%s"
	// Counters only matter within their day; keep a margin for clock skew.
	counterTTL = 26 * time.Hour
)

// Store tracks per-client daily request counters in Redis.
type Store struct {
	redis *redis.Client
}

// NewStore returns a Store backed by the given Redis client.
func NewStore(redis *redis.Client) *Store {
	return &Store{redis: redis}
}

// Use increments the client's counter for today and reports whether the
// limit was exceeded. The counter expires on its own, so a new day starts
// fresh without any reset job.
func (s *Store) Use(ctx context.Context, client string, limit int) error {
	key := counterKey(client, time.Now().UTC())

	n, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("quota incr: %w", err)
	}
	if n == 1 {
		if err := s.redis.Expire(ctx, key, counterTTL).Err(); err != nil {
			return fmt.Errorf("quota expire: %w", err)
		}
	}
	if n > int64(limit) {
		return ErrQuotaExhausted
	}
	return nil
}

// Remaining reports how many requests the client has left today.
func (s *Store) Remaining(ctx context.Context, client string, limit int) (int, error) {
	key := counterKey(client, time.Now().UTC())

	n, err := s.redis.Get(ctx, key).Int64()
	if err == redis.Nil {
		return limit, nil
	}
	if err != nil {
		return 0, fmt.Errorf("quota get: %w", err)
	}
	remaining := limit - int(n)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func counterKey(client string, now time.Time) string {
	return fmt.Sprintf(counterKeyPrefix, client, now.Format("2006-01-02"))
}
