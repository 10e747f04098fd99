package memory

import (
	"context"
	"sync"
	"time"

	"github.com/coderi421/fluentdb/middleware/querycache"
	"github.com/coderi421/fluentdb/query"
	cache "github.com/patrickmn/go-cache"
)

type Store struct {
	// 如果难以确保同一个 key 不会被多个 goroutine 来操作，就加上这个
	mutex sync.RWMutex
	c     *cache.Cache
	// 利用一个内存缓存来帮助我们管理过期时间
	expiration time.Duration
}

// NewStore creates a new Store instance.
// The expiration parameter specifies how long cached result sets live.
func NewStore(expiration time.Duration) *Store {
	return &Store{
		c:          cache.New(expiration, time.Second),
		expiration: expiration,
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]query.Row, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	val, ok := s.c.Get(key)
	if !ok {
		return nil, querycache.ErrKeyNotFound
	}
	// 进出都复制一份，缓存里的行不和调用方共享
	return querycache.CloneRows(val.([]query.Row)), nil
}

func (s *Store) Set(ctx context.Context, key string, rows []query.Row) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.c.Set(key, querycache.CloneRows(rows), s.expiration)
	return nil
}
