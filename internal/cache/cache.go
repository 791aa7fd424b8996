package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fxlibrary/fxlibrary/internal/models"
)

// AssetCache — минимальный контракт кэша деталей ассетов.
// Кэш опционален: при недоступном Redis сервис работает без него.
type AssetCache interface {
	// Get возвращает ассет и признак его наличия в кэше.
	Get(ctx context.Context, slug string) (*models.Asset, bool, error)
	// Set сохраняет деталь ассета с TTL.
	Set(ctx context.Context, slug string, asset *models.Asset, ttl time.Duration) error
	// Invalidate удаляет деталь ассета из кэша.
	Invalidate(ctx context.Context, slug string) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "catalog:asset:".
func NewRedisCache(redisURL, prefix string) (AssetCache, error) {
	if prefix == "" {
		prefix = "catalog:asset:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(slug string) string { return c.prefix + slug }

// Храним деталь ассета как JSON-значение ключа.
func (c *redisCache) Get(ctx context.Context, slug string) (*models.Asset, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, err
	}

	var asset models.Asset
	if err := json.Unmarshal(raw, &asset); err != nil {
		// Повреждённая запись не должна ломать чтение из БД.
		_ = c.rdb.Del(ctx, c.key(slug)).Err()
		return nil, false, nil
	}

	return &asset, true, nil
}

func (c *redisCache) Set(ctx context.Context, slug string, asset *models.Asset, ttl time.Duration) error {
	raw, err := json.Marshal(asset)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, c.key(slug), raw, ttl).Err()
}

func (c *redisCache) Invalidate(ctx context.Context, slug string) error {
	return c.rdb.Del(ctx, c.key(slug)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
