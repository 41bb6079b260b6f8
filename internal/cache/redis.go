// Package cache хранит в Redis привязку пользователя к клиенту (профиль),
// чтобы не читать ее из базы на каждый запрос.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/payments-tracker/internal/config"
	"github.com/magabrotheeeer/payments-tracker/internal/models"
)

// Cache - обертка над клиентом Redis с JSON-сериализацией значений.
type Cache struct {
	Db         *redis.Client
	profileTTL time.Duration
}

// InitServer подключается к Redis и проверяет соединение.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Cache, error) {
	const op = "cache.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ttl := cfg.ProfileTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Cache{Db: db, profileTTL: ttl}, nil
}

// Get читает значение по ключу в result. Возвращает false, если ключа нет.
func (c *Cache) Get(ctx context.Context, key string, result any) (bool, error) {
	const op = "cache.Get"
	val, err := c.Db.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if err := json.Unmarshal([]byte(val), result); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

// Set сохраняет значение в JSON с временем жизни expiration.
func (c *Cache) Set(ctx context.Context, key string, value any, expiration time.Duration) error {
	const op = "cache.Set"
	jsonData, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.Db.Set(ctx, key, jsonData, expiration).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с Redis.
func (c *Cache) Close() error {
	return c.Db.Close()
}

func profileKey(userID int64) string {
	return "profile:" + strconv.FormatInt(userID, 10)
}

// GetProfile возвращает закешированный профиль пользователя.
func (c *Cache) GetProfile(ctx context.Context, userID int64) (*models.Profile, bool, error) {
	var p models.Profile
	found, err := c.Get(ctx, profileKey(userID), &p)
	if err != nil || !found {
		return nil, false, err
	}
	return &p, true, nil
}

// SetProfile кеширует профиль пользователя.
func (c *Cache) SetProfile(ctx context.Context, p *models.Profile) error {
	return c.Set(ctx, profileKey(p.UserID), p, c.profileTTL)
}

// Noop - кеш профилей, который ничего не хранит.
type Noop struct{}

func (Noop) GetProfile(context.Context, int64) (*models.Profile, bool, error) { return nil, false, nil }
func (Noop) SetProfile(context.Context, *models.Profile) error                { return nil }
