package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Deduper struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDeduper(rdb *redis.Client, ttl time.Duration) *Deduper {
	return &Deduper{rdb: rdb, ttl: ttl}
}

// AcquireOnce tries to acquire a dedup lock for a handler + event key.
// It returns true the first time and false for duplicates within the TTL.
// When Redis is unavailable processing proceeds; the history insert is the
// final idempotency guard.
func (d *Deduper) AcquireOnce(ctx context.Context, handler, key string) bool {
	redisKey := fmt.Sprintf("dedup:%s:%s", handler, key)

	ok, err := d.rdb.SetNX(ctx, redisKey, 1, d.ttl).Result()
	if err != nil {
		return true
	}
	return ok
}
