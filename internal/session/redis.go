package session

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions in Redis so they survive restarts and can be
// shared across instances.
type RedisStore struct {
	client *redis.Client
}

// Ensure RedisStore implements Store
var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(addr, password string, db int) *RedisStore {
	return &RedisStore{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Save records a session with a TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	key := redisKeyPrefix + sessionID
	return s.client.Set(ctx, key, strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

// Lookup returns the user ID for a live session.
func (s *RedisStore) Lookup(ctx context.Context, sessionID string) (uint, error) {
	key := redisKeyPrefix + sessionID
	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return uint(userID), nil
}

// Delete removes a session.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, redisKeyPrefix+sessionID).Err()
}
