// Package redislock provides a best-effort mutual exclusion lock in Redis.
//
// The generation poller takes it around each tick so that several replicas
// sharing one database do not run passes at the same time. Row claims stay the
// correctness mechanism; the lock only avoids wasted passes.
package redislock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0`)

// Locker takes short-lived locks with SET NX PX.
type Locker struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// New creates a Locker. Locks expire after ttl even if never released.
func New(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Locker {
	return &Locker{client: client, ttl: ttl, log: logger.With("adapter", "redislock")}
}

// TryLock attempts to take key. When ok is false another holder has it and
// release is nil. release must be called once the protected work is done.
func (l *Locker) TryLock(ctx context.Context, key string) (release func(), ok bool, err error) {
	token := uuid.NewString()

	ok, err = l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redislock: set %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release = func() {
		// The caller's context may already be cancelled by the time we release.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
			l.log.WarnContext(ctx, "release lock", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
	return release, true, nil
}

// Ping checks that Redis is reachable.
func (l *Locker) Ping(ctx context.Context) error {
	return l.client.Ping(ctx).Err()
}

// Noop is used when Redis is not configured. Every TryLock succeeds.
type Noop struct{}

// TryLock always succeeds.
func (Noop) TryLock(context.Context, string) (func(), bool, error) {
	return func() {}, true, nil
}
