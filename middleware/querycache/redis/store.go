package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coderi421/fluentdb/middleware/querycache"
	"github.com/coderi421/fluentdb/query"
	redis "github.com/redis/go-redis/v9"
)

// StoreOption is a function type for configuring a Store.
type StoreOption func(store *Store)

// Store 把结果集 JSON 序列化后放进 redis。
// 注意 JSON 往返会丢失驱动原始类型，数值会统一变成 float64，
// 对只做展示的缓存场景来说够用
type Store struct {
	prefix     string // redis 中 key 的前缀
	client     redis.Cmdable
	expiration time.Duration
}

// NewStore creates a new instance of the Store struct.
func NewStore(client redis.Cmdable, opts ...StoreOption) *Store {
	res := &Store{
		client:     client,
		prefix:     "querycache",
		expiration: time.Minute,
	}

	for _, opt := range opts {
		opt(res)
	}
	return res
}

// WithPrefix sets the key prefix used in redis.
func WithPrefix(prefix string) StoreOption {
	return func(store *Store) {
		store.prefix = prefix
	}
}

// WithExpiration sets the expiration duration for cached result sets.
func WithExpiration(expiration time.Duration) StoreOption {
	return func(store *Store) {
		store.expiration = expiration
	}
}

// key generates the redis key by combining the prefix with the cache key.
func (s *Store) key(k string) string {
	return fmt.Sprintf("%s_%s", s.prefix, k)
}

func (s *Store) Get(ctx context.Context, key string) ([]query.Row, error) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, querycache.ErrKeyNotFound
		}
		return nil, err
	}

	var rows []query.Row
	if err = json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) Set(ctx context.Context, key string, rows []query.Row) error {
	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(key), data, s.expiration).Err()
}
