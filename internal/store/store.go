package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a thin client for the hosted key-value service. It translates the
// hash and list shapes the handlers need into single Redis calls; there is no
// caching and no retry here, every error goes straight back to the caller.
type Store struct {
	rdb *redis.Client
}

// New connects to the key-value service at url (redis:// or rediss://, with
// the access credential embedded in the URL). The connection is verified with
// a short ping so a bad URL fails at startup, not on first request.
func New(url string) (*Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("store: invalid URL: %w", err)
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("store: connection failed: %w", err)
	}

	return &Store{rdb: rdb}, nil
}

// GetHashAll returns every field of a hash. A missing key reads as an empty
// map, not an error.
func (s *Store) GetHashAll(ctx context.Context, key string) (map[string]string, error) {
	fields, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("store: hgetall %s: %w", key, err)
	}
	return fields, nil
}

// GetHashField returns one hash field. The second return reports whether the
// field existed; a missing field is not an error.
func (s *Store) GetHashField(ctx context.Context, key, field string) (string, bool, error) {
	val, err := s.rdb.HGet(ctx, key, field).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: hget %s %s: %w", key, field, err)
	}
	return val, true, nil
}

func (s *Store) SetHashField(ctx context.Context, key, field, value string) error {
	if err := s.rdb.HSet(ctx, key, field, value).Err(); err != nil {
		return fmt.Errorf("store: hset %s %s: %w", key, field, err)
	}
	return nil
}

// PushListHead prepends value to the list, creating it if absent.
func (s *Store) PushListHead(ctx context.Context, key, value string) error {
	if err := s.rdb.LPush(ctx, key, value).Err(); err != nil {
		return fmt.Errorf("store: lpush %s: %w", key, err)
	}
	return nil
}

// GetListRange returns list elements from start to end inclusive; pass
// 0, -1 for the whole list. A missing key reads as an empty list.
func (s *Store) GetListRange(ctx context.Context, key string, start, end int64) ([]string, error) {
	vals, err := s.rdb.LRange(ctx, key, start, end).Result()
	if err != nil {
		return nil, fmt.Errorf("store: lrange %s: %w", key, err)
	}
	return vals, nil
}

func (s *Store) GetListLength(ctx context.Context, key string) (int64, error) {
	n, err := s.rdb.LLen(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("store: llen %s: %w", key, err)
	}
	return n, nil
}

// EnumerateKeys returns all keys matching a glob pattern. SCAN-based, so it
// never blocks the service the way KEYS would; fine at this system's scale of
// tens to low hundreds of keys.
func (s *Store) EnumerateKeys(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("store: scan %s: %w", pattern, err)
	}
	return keys, nil
}

// Ping checks the connection (used by the health endpoint).
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}
