package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bistro-api/models"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

// Load returns nil lines for an unknown session.
func (s *RedisStore) Load(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	data, err := s.Client.Get(ctx, key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %s: %w", sessionID, err)
	}
	return decode(data)
}

// Save overwrites the blob and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, sessionID string, lines []models.CartLine) error {
	data, err := encode(lines)
	if err != nil {
		return err
	}
	if err := s.Client.Set(ctx, key(sessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", sessionID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, key(sessionID)).Err()
}
