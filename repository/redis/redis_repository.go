package redis

import (
	"context"
	"time"

	redisclient "github.com/ksagri/agroexport-api/cmd/redis"
)

// Repository defines the Redis-backed concerns: auth sessions keyed by the
// token's jti, and fixed-window request counters for rate limiting.
type Repository interface {
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	IncrementRequestCount(ctx context.Context, clientKey string, window time.Duration) (int64, error)
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Set(ctx, key, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	key := "session:" + sessionID
	val, err := client.Get(ctx, key).Uint64()
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	key := "session:" + sessionID
	return client.Del(ctx, key).Err()
}

// IncrementRequestCount bumps the fixed-window counter for a client and
// returns the new count. The TTL is set only when the key is created, so the
// window is anchored at the first request.
func (r *redis) IncrementRequestCount(ctx context.Context, clientKey string, window time.Duration) (int64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}
	key := "ratelimit:" + clientKey

	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := client.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}
