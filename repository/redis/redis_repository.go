package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
	redisclient "github.com/retailmax/inventario/cmd/redis"
	"github.com/retailmax/inventario/model"
)

// Repository caches external catalog metadata so repeated lookups for the
// same SKU do not hit the remote catalog service. All methods are no-ops
// when the client was never initialized.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	GetCatalogProduct(ctx context.Context, sku string) (*model.CatalogProduct, error)
	SetCatalogProduct(ctx context.Context, product *model.CatalogProduct, ttl time.Duration) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	client := redisclient.Get()
	if client == nil {
		return "", nil
	}
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// GetCatalogProduct returns the cached catalog entry for a SKU, or nil on miss
func (r *redis) GetCatalogProduct(ctx context.Context, sku string) (*model.CatalogProduct, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}

	key := catalogKey(sku)
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var product model.CatalogProduct
	if err := json.Unmarshal([]byte(val), &product); err != nil {
		// stale or corrupt entry, drop it and treat as a miss
		_ = client.Del(ctx, key).Err()
		return nil, nil
	}
	return &product, nil
}

// SetCatalogProduct caches a catalog entry for a SKU with TTL
func (r *redis) SetCatalogProduct(ctx context.Context, product *model.CatalogProduct, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	body, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return client.Set(ctx, catalogKey(product.SKU), string(body), ttl).Err()
}

func catalogKey(sku string) string {
	return "catalog:product:" + sku
}
