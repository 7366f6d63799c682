package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"leadassign/internal/model"
)

// Distribution events are immutable once written, so a plain TTL
// cache-aside never serves stale data.
const cachedDistributionTimeToLive = 10 * time.Minute

// DistributionCache keeps recently requested distribution events close
type DistributionCache interface {
	FindByID(ctx context.Context, id string) (*model.Distribution, error)
	Cache(ctx context.Context, d *model.Distribution) error
}

type redisDistributionCache struct {
	client *redis.Client
}

func NewRedisDistributionCache(client *redis.Client) DistributionCache {
	return &redisDistributionCache{client: client}
}

func (r *redisDistributionCache) FindByID(ctx context.Context, id string) (*model.Distribution, error) {
	res, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var d model.Distribution
	if err := msgpack.Unmarshal([]byte(res), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *redisDistributionCache) Cache(ctx context.Context, d *model.Distribution) error {
	encoded, err := msgpack.Marshal(d)
	if err != nil {
		return err
	}

	if _, err := r.client.SetNX(ctx, r.key(d.ID), encoded, cachedDistributionTimeToLive).Result(); err != nil {
		return err
	}
	return nil
}

func (r *redisDistributionCache) key(id string) string {
	return fmt.Sprintf("distribution:%s", id)
}
