package lru

import (
	"context"

	"github.com/coderi421/fluentdb/middleware/querycache"
	"github.com/coderi421/fluentdb/query"
	lru "github.com/hashicorp/golang-lru"
)

// Store 基于 LRU 的缓存实现，容量固定，没有过期时间。
// 最多消耗多少内存？ size * 单个结果集的大小
type Store struct {
	c *lru.Cache
}

// NewStore creates an LRU-backed store holding at most size result sets.
func NewStore(size int) (*Store, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]query.Row, error) {
	val, ok := s.c.Get(key)
	if !ok {
		return nil, querycache.ErrKeyNotFound
	}
	// 进出都复制一份，缓存里的行不和调用方共享
	return querycache.CloneRows(val.([]query.Row)), nil
}

func (s *Store) Set(ctx context.Context, key string, rows []query.Row) error {
	s.c.Add(key, querycache.CloneRows(rows))
	return nil
}
