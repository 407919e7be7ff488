package repository

import (
	"context"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/entity"
)

// UserCache is a side cache of user projections keyed by user id.
// A miss is reported as (nil, false, nil), never as an error.
type UserCache interface {
	Get(ctx context.Context, id string) (*entity.UserView, bool, error)
	Set(ctx context.Context, v entity.UserView) error
	Delete(ctx context.Context, id string) error
}

// NopUserCache is used when caching is disabled: every Get misses.
type NopUserCache struct{}

func (NopUserCache) Get(context.Context, string) (*entity.UserView, bool, error) {
	return nil, false, nil
}

func (NopUserCache) Set(context.Context, entity.UserView) error { return nil }

func (NopUserCache) Delete(context.Context, string) error { return nil }

var _ UserCache = NopUserCache{}
