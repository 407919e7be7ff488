package router

import (
	"context"

	"github.com/oksasatya/go-users-tasks-api/internal/application"
	"github.com/oksasatya/go-users-tasks-api/internal/container"
	repo "github.com/oksasatya/go-users-tasks-api/internal/domain/repository"
	"github.com/oksasatya/go-users-tasks-api/internal/infrastructure/esindex"
	"github.com/oksasatya/go-users-tasks-api/internal/infrastructure/gcsstore"
	pginfra "github.com/oksasatya/go-users-tasks-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-users-tasks-api/internal/infrastructure/rediscache"
	handlers "github.com/oksasatya/go-users-tasks-api/internal/interface/http"
	"github.com/oksasatya/go-users-tasks-api/internal/router/modules"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
)

// userCache picks the cache once at startup: Redis when enabled, no-op otherwise.
func userCache() repo.UserCache {
	cfg := container.GetConfig()
	if !cfg.RedisEnabled || container.GetRedis() == nil {
		return repo.NopUserCache{}
	}
	return rediscache.NewUserCache(container.GetRedis(), cfg.UserCacheTTL)
}

func buildUserService() *application.Service {
	cfg := container.GetConfig()
	svc := application.NewService(
		pginfra.NewUserRepository(container.GetPGPool()),
		userCache(),
		container.GetJWT(),
		helpers.NewPasswordHasher(cfg.BcryptCost),
		container.GetLogger(),
		cfg.DefaultPerPage,
	)
	if es := container.GetES(); es != nil {
		svc.Index = esindex.NewUserIndex(es, cfg.ESUsersIndex)
	}
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		svc.Avatars = gcsstore.NewAvatarStore(gcs, cfg.GCSBucket)
	}
	if pub := container.GetRabbitPub(); pub != nil {
		svc.Events = pub
	}
	return svc
}

func buildTaskService() *application.TaskService {
	return application.NewTaskService(
		pginfra.NewTaskRepository(container.GetPGPool()),
		container.GetLogger(),
		container.GetConfig().DefaultPerPage,
	)
}

func statusHandler() *handlers.StatusHandler {
	var rp handlers.Pinger
	if rdb := container.GetRedis(); rdb != nil {
		rp = handlers.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}
	return handlers.NewStatusHandler(container.GetPGPool(), rp, container.GetLogger())
}

// InitModules wires every module from the container and adds it to the registry.
// Call once during startup, after the container is populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	rdb := container.GetRedis()

	users := buildUserService()
	tasks := buildTaskService()

	r.Add(
		modules.NewAuthModule(handlers.NewAuthHandler(users, logger, cfg.CookieDomain, cfg.CookieSecure), jwt, rdb),
		modules.NewUserModule(handlers.NewUserHandler(users, logger), jwt, rdb),
		modules.NewTaskModule(handlers.NewTaskHandler(tasks, logger), jwt, rdb),
		modules.NewStatusModule(statusHandler()),
	)
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
}
