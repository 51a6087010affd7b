package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// Все ключи приложения живут в своём пространстве имён, Redis может быть общим.
const redisKeyPrefix = "smartgmao:"

// INCR и PEXPIRE одним скриптом: счётчик не останется без TTL, если процесс упадёт между командами.
var incrWithTTLScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

type RedisCacheRepository struct {
	client *redis.Client
}

func NewRedisCacheRepository(client *redis.Client) CacheRepositoryInterface {
	return &RedisCacheRepository{client: client}
}

func redisKey(key string) string {
	return redisKeyPrefix + key
}

func (r *RedisCacheRepository) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	return val, err
}

func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, redisKey(key), value, expiration).Err()
}

func (r *RedisCacheRepository) Del(ctx context.Context, keys ...string) error {
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = redisKey(k)
	}
	return r.client.Del(ctx, prefixed...).Err()
}

func (r *RedisCacheRepository) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return incrWithTTLScript.Run(ctx, r.client, []string{redisKey(key)}, ttl.Milliseconds()).Int64()
}
