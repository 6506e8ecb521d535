package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage is the durable key-value boundary for preferences.
type Storage interface {
	Load(ctx context.Context, clientID string) (Preferences, bool, error)
	Save(ctx context.Context, clientID string, p Preferences) error
}

// RedisStorage keeps one JSON document per client under prefs:<clientID>.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStorage constructs a RedisStorage. A zero ttl keeps keys forever.
func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

// Load reads the stored preferences. The bool is false when none exist.
func (s *RedisStorage) Load(ctx context.Context, clientID string) (Preferences, bool, error) {
	raw, err := s.client.Get(ctx, key(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Preferences{}, false, nil
		}
		return Preferences{}, false, fmt.Errorf("prefs: load: %w", err)
	}
	var p Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		return Preferences{}, false, fmt.Errorf("prefs: decode: %w", err)
	}
	return p, true, nil
}

// Save writes p.
func (s *RedisStorage) Save(ctx context.Context, clientID string, p Preferences) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key(clientID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("prefs: save: %w", err)
	}
	return nil
}

func key(clientID string) string {
	return "prefs:" + clientID
}

var _ Storage = (*RedisStorage)(nil)
