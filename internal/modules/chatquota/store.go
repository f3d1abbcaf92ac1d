// README: Redis-backed daily chat counters.
package chatquota

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store handles per-visitor daily message counters. Counters are keyed by
// visitor and local calendar day and expire on their own, so there is no
// reset job.
type Store struct {
	rdb *redis.Client
	loc *time.Location
	now func() time.Time
}

// NewStore returns a Store backed by the given Redis client. loc fixes the
// calendar day boundary for the quota window.
func NewStore(rdb *redis.Client, loc *time.Location) *Store {
	return &Store{rdb: rdb, loc: loc, now: time.Now}
}

// Incr bumps the visitor's counter for today and returns the new count.
// The first bump of the day sets the key to expire at local midnight.
func (s *Store) Incr(ctx context.Context, visitorID string) (int64, error) {
	now := s.now().In(s.loc)
	key := fmt.Sprintf("chat:quota:%s:%s", visitorID, now.Format("2006-01-02"))

	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("incr chat quota: %w", err)
	}
	if count == 1 {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)
		if err := s.rdb.ExpireAt(ctx, key, midnight).Err(); err != nil {
			return 0, fmt.Errorf("expire chat quota: %w", err)
		}
	}
	return count, nil
}

// Decr undoes one bump of the visitor's counter for today. It is only
// called right after a successful Incr, so the key exists.
func (s *Store) Decr(ctx context.Context, visitorID string) error {
	now := s.now().In(s.loc)
	key := fmt.Sprintf("chat:quota:%s:%s", visitorID, now.Format("2006-01-02"))
	if err := s.rdb.Decr(ctx, key).Err(); err != nil {
		return fmt.Errorf("decr chat quota: %w", err)
	}
	return nil
}
