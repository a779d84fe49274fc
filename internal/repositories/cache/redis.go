// Package cache holds the redis-backed consumed-token store. A token may
// be redeemed against the charge endpoint once; redis remembers the nonce
// for the token's remaining lifetime.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// ConsumedTokenStore marks token nonces as redeemed.
type ConsumedTokenStore struct {
	client *redis.Client
}

func NewConsumedTokenStore(client *redis.Client) *ConsumedTokenStore {
	return &ConsumedTokenStore{client: client}
}

func consumedKey(nonce string) string {
	return "token:consumed:" + nonce
}

// Consume records a nonce as redeemed for ttl. It returns false when the
// nonce was already present, which is how replays surface.
func (s *ConsumedTokenStore) Consume(ctx context.Context, nonce string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, consumedKey(nonce), 1, ttl).Result()
}

func (s *ConsumedTokenStore) Close() error {
	return s.client.Close()
}
