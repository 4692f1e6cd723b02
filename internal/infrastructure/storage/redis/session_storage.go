package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Slot keys for the persisted session. The user record and token live in
// two independent keys but are always written and cleared together.
const (
	keyUser  = "session:user"
	keyToken = "session:token"
)

// SessionStorage persists the session slots in Redis with no expiry; the
// bearer token carries its own lifetime and the session layer re-derives
// validity from it on restore.
type SessionStorage struct {
	client *redis.Client
}

func NewSessionStorage(client *redis.Client) *SessionStorage {
	return &SessionStorage{client: client}
}

// Save writes both slots atomically.
func (s *SessionStorage) Save(ctx context.Context, userJSON, token string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyUser, userJSON, 0)
		pipe.Set(ctx, keyToken, token, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("session storage save: %w", err)
	}
	return nil
}

// Load reads both slots. A missing slot yields an empty string, not an
// error; interpreting a half-written pair is the session layer's call.
func (s *SessionStorage) Load(ctx context.Context) (string, string, error) {
	userJSON, err := s.client.Get(ctx, keyUser).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", "", fmt.Errorf("session storage load user: %w", err)
	}

	token, err := s.client.Get(ctx, keyToken).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", "", fmt.Errorf("session storage load token: %w", err)
	}

	return userJSON, token, nil
}

// Clear deletes both slots together.
func (s *SessionStorage) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, keyUser, keyToken).Err(); err != nil {
		return fmt.Errorf("session storage clear: %w", err)
	}
	return nil
}
