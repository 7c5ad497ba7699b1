package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every memoized entry
const KeyPrefix = "nbareport"

// Store is the injectable memoization backend
type Store interface {
	// Get decodes the entry at key into dest and reports whether it was found
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set stores value at key for ttl
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// entry is the stored envelope; StoredAt and TTL let readers judge freshness
type entry struct {
	StoredAt time.Time       `json:"stored_at"`
	TTL      time.Duration   `json:"ttl"`
	Data     json.RawMessage `json:"data"`
}

// RedisStore keeps TTL-stamped JSON entries in Redis
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisStore creates a new Redis-backed store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		now:    time.Now,
	}
}

// Key builds "nbareport:<function>:<args...>"
func Key(function string, args ...interface{}) string {
	key := KeyPrefix + ":" + function
	for _, arg := range args {
		key += fmt.Sprintf(":%v", arg)
	}
	return key
}

// Get reads and decodes the entry at key
func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return false, fmt.Errorf("unmarshaling %s: %w", key, err)
	}
	if e.TTL > 0 && s.now().Sub(e.StoredAt) > e.TTL {
		return false, nil
	}
	if err := json.Unmarshal(e.Data, dest); err != nil {
		return false, fmt.Errorf("unmarshaling %s data: %w", key, err)
	}
	return true, nil
}

// Set encodes value and stores it with ttl
func (s *RedisStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}

	payload, err := json.Marshal(entry{
		StoredAt: s.now().UTC(),
		TTL:      ttl,
		Data:     data,
	})
	if err != nil {
		return fmt.Errorf("marshaling %s entry: %w", key, err)
	}

	return s.client.Set(ctx, key, payload, ttl).Err()
}

// NopStore never finds anything and drops every write
type NopStore struct{}

// Get always misses
func (NopStore) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

// Set discards value
func (NopStore) Set(context.Context, string, interface{}, time.Duration) error { return nil }
