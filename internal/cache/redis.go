package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rkhan0192/sapienscare/config"
	"github.com/rkhan0192/sapienscare/internal/domain"
)

type RedisCache struct {
	client      *redis.Client
	productsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, productsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:      redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		productsTTL: productsTTL,
	}
}

func (c *RedisCache) GetProducts(ctx context.Context) ([]domain.Product, error) {
	data, err := c.client.Get(ctx, productsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *RedisCache) SetProducts(ctx context.Context, products []domain.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productsKey(), payload, c.productsTTL).Err()
}

// InvalidateProducts drops the cached catalog after a product is added so
// the next list reads from the database.
func (c *RedisCache) InvalidateProducts(ctx context.Context) error {
	return c.client.Del(ctx, productsKey()).Err()
}

func productsKey() string {
	return "cache:products"
}
