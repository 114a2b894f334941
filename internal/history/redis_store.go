package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the setting and the definitions mapping as JSON values
// under the "history" and "definitions" keys, optionally prefixed.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

func NewRedisStore(client redis.UniversalClient, keyPrefix string) *RedisStore {
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// NewRedisClient creates a client from a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL > %w", err)
	}
	return redis.NewClient(opts), nil
}

func (s *RedisStore) key(name string) string {
	return s.keyPrefix + name
}

func (s *RedisStore) Setting(ctx context.Context) (Setting, bool, error) {
	var setting Setting
	found, err := s.get(ctx, SettingKey, &setting)
	if err != nil {
		return Setting{}, false, err
	}
	return setting, found, nil
}

func (s *RedisStore) SaveSetting(ctx context.Context, setting Setting) error {
	return s.set(ctx, SettingKey, setting)
}

func (s *RedisStore) Definitions(ctx context.Context) (map[string]string, error) {
	definitions := make(map[string]string)
	if _, err := s.get(ctx, DefinitionsKey, &definitions); err != nil {
		return nil, err
	}
	if definitions == nil {
		definitions = make(map[string]string)
	}
	return definitions, nil
}

func (s *RedisStore) SaveDefinitions(ctx context.Context, definitions map[string]string) error {
	return s.set(ctx, DefinitionsKey, definitions)
}

func (s *RedisStore) get(ctx context.Context, name string, v any) (bool, error) {
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("client.Get(%s) > %w", s.key(name), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("json.Unmarshal(%s) > %w", s.key(name), err)
	}
	return true, nil
}

func (s *RedisStore) set(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json.Marshal(%s) > %w", s.key(name), err)
	}
	if err := s.client.Set(ctx, s.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("client.Set(%s) > %w", s.key(name), err)
	}
	return nil
}
