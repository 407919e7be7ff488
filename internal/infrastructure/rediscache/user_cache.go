package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
	"github.com/oksasatya/go-users-tasks-api/internal/domain/repository"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
)

// UserCache stores user projections as JSON strings under "user:<id>".
type UserCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewUserCache returns a cache backed by rdb. ttl 0 keeps entries until they
// are overwritten or deleted.
func NewUserCache(rdb redis.Cmdable, ttl time.Duration) *UserCache {
	return &UserCache{rdb: rdb, ttl: ttl}
}

func userKey(id string) string {
	return "user:" + id
}

func (c *UserCache) Get(ctx context.Context, id string) (*entity.UserView, bool, error) {
	var v entity.UserView
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, userKey(id), &v)
	if err != nil || !ok {
		return nil, false, err
	}
	return &v, true, nil
}

func (c *UserCache) Set(ctx context.Context, v entity.UserView) error {
	return helpers.RedisSetJSON(ctx, c.rdb, userKey(v.ID), v, c.ttl)
}

func (c *UserCache) Delete(ctx context.Context, id string) error {
	return helpers.RedisDel(ctx, c.rdb, userKey(id))
}

var _ repository.UserCache = (*UserCache)(nil)
