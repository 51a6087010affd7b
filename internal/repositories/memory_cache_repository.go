package repositories

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

type memoryCacheItem struct {
	value     string
	expiresAt time.Time
}

func (i memoryCacheItem) expired(now time.Time) bool {
	return !i.expiresAt.IsZero() && !now.Before(i.expiresAt)
}

// MemoryCacheRepository - кеш в памяти процесса для режима без Redis и для тестов.
type MemoryCacheRepository struct {
	mu    sync.Mutex
	items map[string]memoryCacheItem
	now   func() time.Time
}

func NewMemoryCacheRepository() *MemoryCacheRepository {
	return &MemoryCacheRepository{
		items: make(map[string]memoryCacheItem),
		now:   time.Now,
	}
}

func (r *MemoryCacheRepository) lookup(key string) (memoryCacheItem, bool) {
	item, ok := r.items[key]
	if !ok {
		return item, false
	}
	if item.expired(r.now()) {
		delete(r.items, key)
		return item, false
	}
	return item, true
}

func (r *MemoryCacheRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.lookup(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return item.value, nil
}

func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item := memoryCacheItem{value: fmt.Sprint(value)}
	if expiration > 0 {
		item.expiresAt = r.now().Add(expiration)
	}
	r.items[key] = item
	return nil
}

func (r *MemoryCacheRepository) Del(_ context.Context, keys ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		delete(r.items, k)
	}
	return nil
}

func (r *MemoryCacheRepository) IncrWithTTL(_ context.Context, key string, ttl time.Duration) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.lookup(key)
	var n int64
	if ok {
		parsed, err := strconv.ParseInt(item.value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("значение ключа %s не является числом: %w", key, err)
		}
		n = parsed
	} else if ttl > 0 {
		item.expiresAt = r.now().Add(ttl)
	}
	n++
	item.value = strconv.FormatInt(n, 10)
	r.items[key] = item
	return n, nil
}
