package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "labdash:pref:"

// Store keeps preferences in Redis: plain keys for values, SETs for sets.
type Store struct {
	client *redis.Client
	prefix string
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client, prefix: defaultPrefix}
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Members(ctx context.Context, set string) ([]string, error) {
	members, err := s.client.SMembers(ctx, s.key(set)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers %s: %w", set, err)
	}
	sort.Strings(members)
	return members, nil
}

// Replace deletes and refills the set inside MULTI/EXEC.
func (s *Store) Replace(ctx context.Context, set string, members []string) error {
	key := s.key(set)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(members) > 0 {
			args := make([]interface{}, len(members))
			for i, m := range members {
				args[i] = m
			}
			pipe.SAdd(ctx, key, args...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis replace %s: %w", set, err)
	}
	return nil
}
