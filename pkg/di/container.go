// Package di wires the catalogue gateway's collaborators (database
// handle, cache backend, observability sink, query service) behind a
// single validated configuration.
package di

import (
	"database/sql"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"go.uber.org/zap"

	"github.com/goliatone/go-catalog-gateway/cache"
	"github.com/goliatone/go-catalog-gateway/gateway"
	"github.com/goliatone/go-catalog-gateway/internal/cacheinfra"
	"github.com/goliatone/go-catalog-gateway/observe"
	"github.com/goliatone/go-catalog-gateway/store"
)

// Driver selects the relational store driver.
type Driver string

const (
	DriverSQLite   Driver = "sqlite3"
	DriverPostgres Driver = "postgres"
)

// Backend selects the cache backend.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendRedis  Backend = "redis"
)

// Config covers everything the container needs to build a working
// service.
type Config struct {
	Driver Driver
	DSN    string

	Backend     Backend
	RedisAddr   string
	RedisPrefix string
	// Memory configures the in-process backend. A zero value falls back
	// to cache.DefaultConfig.
	Memory cache.Config

	// Logger backs the observability sink. When nil a production zap
	// logger is built.
	Logger *zap.Logger
}

// DefaultConfig returns an embedded single-process setup: SQLite store,
// in-process cache.
func DefaultConfig() Config {
	return Config{
		Driver:  DriverSQLite,
		DSN:     "file:catalog.db",
		Backend: BackendMemory,
		Memory:  cache.DefaultConfig(),
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Driver, validation.Required, validation.In(DriverSQLite, DriverPostgres)),
		validation.Field(&c.DSN, validation.Required),
		validation.Field(&c.Backend, validation.Required, validation.In(BackendMemory, BackendRedis)),
		validation.Field(&c.RedisAddr, validation.Required.When(c.Backend == BackendRedis)),
	)
}

// Container holds the wired singletons.
type Container struct {
	cfg     Config
	db      *bun.DB
	redis   *redis.Client
	cacheGw *cache.Gateway
	service *gateway.Service
	log     *zap.Logger
}

// NewContainer validates the configuration and wires the service graph.
func NewContainer(cfg Config) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		var err error
		log, err = zap.NewProduction()
		if err != nil {
			return nil, err
		}
	}
	sink := observe.NewZapSink(log)

	sqldb, err := sql.Open(string(cfg.Driver), cfg.DSN)
	if err != nil {
		return nil, err
	}

	var db *bun.DB
	switch cfg.Driver {
	case DriverPostgres:
		db = bun.NewDB(sqldb, pgdialect.New())
	default:
		db = bun.NewDB(sqldb, sqlitedialect.New())
	}

	c := &Container{cfg: cfg, db: db, log: log}

	var backend cache.Store
	switch cfg.Backend {
	case BackendRedis:
		c.redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		backend = cacheinfra.NewRedisStore(c.redis, cacheinfra.WithPrefix(cfg.RedisPrefix))
	default:
		memCfg := cfg.Memory
		if memCfg == (cache.Config{}) {
			memCfg = cache.DefaultConfig()
		}
		backend, err = cache.NewMemoryStore(memCfg)
		if err != nil {
			db.Close()
			return nil, err
		}
	}

	c.cacheGw = cache.NewGateway(backend, sink)
	c.service = gateway.New(store.NewCatalog(db), c.cacheGw, cache.NewKeyDeriver(), sink)
	return c, nil
}

// NewContainerWithDefaults builds a container from DefaultConfig. A
// convenience constructor for embedded deployments.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(DefaultConfig())
}

// Service returns the wired query gateway.
func (c *Container) Service() *gateway.Service {
	return c.service
}

// DB returns the shared bun handle, e.g. for schema tooling.
func (c *Container) DB() *bun.DB {
	return c.db
}

// CacheGateway exposes the cache gateway, e.g. for stats scraping.
func (c *Container) CacheGateway() *cache.Gateway {
	return c.cacheGw
}

// Logger returns the logger backing the observability sink.
func (c *Container) Logger() *zap.Logger {
	return c.log
}

// Close releases the database handle and, when wired, the Redis client.
func (c *Container) Close() error {
	var firstErr error
	if err := c.db.Close(); err != nil {
		firstErr = err
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
