package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/medonline/consultation-scheduler/internal/config"
)

// RedisStore keeps every record as a JSON document whose Redis key is the
// record's hierarchical path.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.Config) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}),
	}
}

func NewRedisStoreWithClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) List(ctx context.Context, path string) ([]Record, error) {
	all, err := s.scan(ctx, path+"/*")
	if err != nil {
		return nil, &OpError{Op: "list", Path: path, Err: err}
	}

	// Direct children only; "users/*" must not pick up
	// "users/{id}/appointments/{id}".
	keys := all[:0]
	for _, k := range all {
		if !strings.Contains(strings.TrimPrefix(k, path+"/"), "/") {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, nil
	}

	// SCAN order is not stable; sorted keys keep list reads deterministic.
	sort.Strings(keys)

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, &OpError{Op: "list", Path: path, Err: err}
	}

	records := make([]Record, 0, len(keys))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// Key expired between SCAN and MGET.
			continue
		}
		records = append(records, Record{Key: keys[i], Data: json.RawMessage(raw)})
	}
	return records, nil
}

func (s *RedisStore) Read(ctx context.Context, path string) (Record, error) {
	raw, err := s.client.Get(ctx, path).Result()
	if err == redis.Nil {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, &OpError{Op: "read", Path: path, Err: err}
	}
	return Record{Key: path, Data: json.RawMessage(raw)}, nil
}

func (s *RedisStore) Write(ctx context.Context, path string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return &OpError{Op: "write", Path: path, Err: err}
	}
	if err := s.client.Set(ctx, path, data, 0).Err(); err != nil {
		return &OpError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func (s *RedisStore) Update(ctx context.Context, path string, fields map[string]any) error {
	raw, err := s.client.Get(ctx, path).Result()
	if err == redis.Nil {
		return ErrNotFound
	}
	if err != nil {
		return &OpError{Op: "update", Path: path, Err: err}
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return &OpError{Op: "update", Path: path, Err: err}
	}
	for k, v := range fields {
		doc[k] = v
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return &OpError{Op: "update", Path: path, Err: err}
	}
	if err := s.client.Set(ctx, path, data, 0).Err(); err != nil {
		return &OpError{Op: "update", Path: path, Err: err}
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, path string) error {
	if err := s.client.Del(ctx, path).Err(); err != nil {
		return &OpError{Op: "delete", Path: path, Err: err}
	}
	return nil
}

func (s *RedisStore) DeleteTree(ctx context.Context, path string) error {
	keys, err := s.scan(ctx, path+"/*")
	if err != nil {
		return &OpError{Op: "delete-tree", Path: path, Err: err}
	}
	keys = append(keys, path)
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return &OpError{Op: "delete-tree", Path: path, Err: err}
	}
	return nil
}

func (s *RedisStore) NewID() string {
	return uuid.NewString()
}

func (s *RedisStore) scan(ctx context.Context, pattern string) ([]string, error) {
	var keys []string
	iter := s.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
