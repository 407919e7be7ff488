package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/oksasatya/go-users-tasks-api/config"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
)

// app-level container sharing the clients built in main with the router modules.
// Optional clients (redis, gcs, es, rabbit) stay nil when their feature is disabled.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	gcsClient   *storage.Client

	jwtManager *helpers.JWTManager

	rabbitPub *helpers.RabbitPublisher
	esClient  *elasticsearch.Client
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetPGPool(p *pgxpool.Pool)               { pgPool = p }
func GetPGPool() *pgxpool.Pool                { return pgPool }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetGCS(s *storage.Client)                { gcsClient = s }
func GetGCS() *storage.Client                 { return gcsClient }
func SetJWT(m *helpers.JWTManager)            { jwtManager = m }
func GetJWT() *helpers.JWTManager             { return jwtManager }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }

// Close releases every client that was set, returning all close errors combined.
func Close() error {
	var err error
	if rabbitPub != nil {
		err = multierr.Append(err, rabbitPub.Close())
	}
	if gcsClient != nil {
		err = multierr.Append(err, gcsClient.Close())
	}
	if redisClient != nil {
		err = multierr.Append(err, redisClient.Close())
	}
	if pgPool != nil {
		pgPool.Close()
	}
	return err
}
