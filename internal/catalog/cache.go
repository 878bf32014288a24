package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/clinical-scales-server/internal/domain"
)

// CachedStore layers an in-process LRU and an optional shared Redis tier over
// another catalog store. Catalog definitions change rarely, so entries are
// cached with a TTL and never invalidated eagerly.
type CachedStore struct {
	inner      domain.CatalogStore
	scales     *lru.Cache[string, cachedScale]
	variables  *lru.Cache[string, cachedVariable]
	redis      *redis.Client
	defaultTTL time.Duration
	logger     *logrus.Logger
}

type cachedScale struct {
	Scale     *domain.ScaleDefinition `json:"scale"` // nil records a definitive miss
	ExpiresAt time.Time               `json:"expires_at"`
}

type cachedVariable struct {
	Variable  *domain.VariableDefinition `json:"variable"`
	ExpiresAt time.Time                  `json:"expires_at"`
}

// NewCachedStore wraps a catalog store with caching. The Redis tier is
// enabled only when the config carries a Redis URL; a connection failure at
// startup is an error so misconfiguration surfaces immediately.
func NewCachedStore(inner domain.CatalogStore, config domain.CacheConfig, logger *logrus.Logger) (*CachedStore, error) {
	maxEntries := config.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 256
	}
	scales, err := lru.New[string, cachedScale](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create scale cache: %w", err)
	}
	variables, err := lru.New[string, cachedVariable](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create variable cache: %w", err)
	}

	ttl := config.DefaultTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	store := &CachedStore{
		inner:      inner,
		scales:     scales,
		variables:  variables,
		defaultTTL: ttl,
		logger:     logger,
	}

	if config.RedisURL != "" {
		opts, err := redis.ParseURL(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		opts.PoolSize = config.PoolSize
		opts.PoolTimeout = config.PoolTimeout
		opts.MaxRetries = config.MaxRetries

		client := redis.NewClient(opts)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		store.redis = client
	}

	return store, nil
}

// FindScaleByCode serves from cache, then Redis, then the inner store
func (c *CachedStore) FindScaleByCode(ctx context.Context, codeName string) (*domain.ScaleDefinition, error) {
	if entry, ok := c.scales.Get(codeName); ok && time.Now().Before(entry.ExpiresAt) {
		return entry.Scale, nil
	}

	if c.redis != nil {
		key := "catalog:scale:" + codeName
		val, err := c.redis.Get(ctx, key).Result()
		if err == nil {
			var entry cachedScale
			if json.Unmarshal([]byte(val), &entry) == nil && time.Now().Before(entry.ExpiresAt) {
				c.scales.Add(codeName, entry)
				return entry.Scale, nil
			}
			c.redis.Del(ctx, key)
		} else if err != redis.Nil {
			c.logger.WithError(err).Warn("Redis scale lookup failed, falling through")
		}
	}

	scale, err := c.inner.FindScaleByCode(ctx, codeName)
	if err != nil {
		return nil, err
	}
	c.storeScale(ctx, codeName, scale)
	return scale, nil
}

// FindVariableByName serves from cache, then Redis, then the inner store
func (c *CachedStore) FindVariableByName(ctx context.Context, name string) (*domain.VariableDefinition, error) {
	if entry, ok := c.variables.Get(name); ok && time.Now().Before(entry.ExpiresAt) {
		return entry.Variable, nil
	}

	if c.redis != nil {
		key := "catalog:variable:" + name
		val, err := c.redis.Get(ctx, key).Result()
		if err == nil {
			var entry cachedVariable
			if json.Unmarshal([]byte(val), &entry) == nil && time.Now().Before(entry.ExpiresAt) {
				c.variables.Add(name, entry)
				return entry.Variable, nil
			}
			c.redis.Del(ctx, key)
		} else if err != redis.Nil {
			c.logger.WithError(err).Warn("Redis variable lookup failed, falling through")
		}
	}

	variable, err := c.inner.FindVariableByName(ctx, name)
	if err != nil {
		return nil, err
	}
	c.storeVariable(ctx, name, variable)
	return variable, nil
}

// ListScales always hits the inner store; listings are not in the hot path
func (c *CachedStore) ListScales(ctx context.Context) ([]domain.ScaleDefinition, error) {
	return c.inner.ListScales(ctx)
}

func (c *CachedStore) storeScale(ctx context.Context, codeName string, scale *domain.ScaleDefinition) {
	entry := cachedScale{Scale: scale, ExpiresAt: time.Now().Add(c.defaultTTL)}
	c.scales.Add(codeName, entry)

	if c.redis != nil {
		if data, err := json.Marshal(entry); err == nil {
			if err := c.redis.Set(ctx, "catalog:scale:"+codeName, data, c.defaultTTL).Err(); err != nil {
				c.logger.WithError(err).Warn("Failed to write scale to Redis cache")
			}
		}
	}
}

func (c *CachedStore) storeVariable(ctx context.Context, name string, variable *domain.VariableDefinition) {
	entry := cachedVariable{Variable: variable, ExpiresAt: time.Now().Add(c.defaultTTL)}
	c.variables.Add(name, entry)

	if c.redis != nil {
		if data, err := json.Marshal(entry); err == nil {
			if err := c.redis.Set(ctx, "catalog:variable:"+name, data, c.defaultTTL).Err(); err != nil {
				c.logger.WithError(err).Warn("Failed to write variable to Redis cache")
			}
		}
	}
}

// Close releases the Redis connection if one was opened
func (c *CachedStore) Close() error {
	if c.redis != nil {
		return c.redis.Close()
	}
	return nil
}
