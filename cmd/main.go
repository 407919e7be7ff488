package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/oksasatya/go-users-tasks-api/config"
	"github.com/oksasatya/go-users-tasks-api/internal/container"
	"github.com/oksasatya/go-users-tasks-api/internal/infrastructure/esindex"
	pginfra "github.com/oksasatya/go-users-tasks-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-users-tasks-api/internal/interface/middleware"
	"github.com/oksasatya/go-users-tasks-api/internal/router"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
	"github.com/oksasatya/go-users-tasks-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env, cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBMaxConnLife,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}
	container.SetPGPool(pool)

	if err := runMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	if cfg.JWTSecret == "devsecret" && cfg.Env == "production" {
		logger.Fatal("JWT_SECRET must be set in production")
	}

	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetJWT(helpers.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL))
	initOptionalClients(ctx, cfg, logger)
	defer func() {
		if err := container.Close(); err != nil {
			logger.WithError(err).Warn("closing clients")
		}
	}()

	validation.Init()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(logger))
	}
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	r.Use(cors.New(corsCfg))

	reg := router.NewRegistry(r, logger)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
	}
	logger.Info("server exited properly")
}

// initOptionalClients connects the clients of the optional features. A client
// that fails to connect disables its feature instead of stopping the server.
func initOptionalClients(ctx context.Context, cfg *config.Config, logger *logrus.Logger) {
	if cfg.RedisEnabled {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.WithError(err).Fatal("redis enabled but unreachable")
		}
		container.SetRedis(rdb)
	}

	if cfg.GCSBucket != "" {
		gcs, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			logger.WithError(err).Warn("gcs disabled")
		} else {
			container.SetGCS(gcs)
		}
	}

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		es, err := helpers.NewESClient(helpers.ESOptions{Addrs: addrs, Username: cfg.ElasticsearchUser, Password: cfg.ElasticsearchPass})
		if err == nil {
			err = esindex.NewUserIndex(es, cfg.ESUsersIndex).EnsureIndex(ctx)
		}
		if err != nil {
			logger.WithError(err).Warn("elasticsearch disabled")
		} else {
			container.SetES(es)
		}
	}

	if cfg.RabbitMQURL != "" {
		pub, err := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
		if err != nil {
			logger.WithError(err).Warn("user events disabled")
		} else {
			container.SetRabbitPub(pub)
		}
	}
}

func runMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
