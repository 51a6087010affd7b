package repositories

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss - ключ отсутствует или истёк.
var ErrCacheMiss = errors.New("ключ не найден в кеше")

// CacheRepositoryInterface - хранилище счётчиков неудачных входов и блокировок.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	// IncrWithTTL увеличивает счётчик; окно ttl отсчитывается от первого увеличения.
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
