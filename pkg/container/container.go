package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"todoapp-backend/internal/config"
	catalogHandler "todoapp-backend/internal/domains/catalog/handler"
	catalogRepo "todoapp-backend/internal/domains/catalog/repository"
	catalogService "todoapp-backend/internal/domains/catalog/service"
	infraCache "todoapp-backend/internal/infrastructure/cache"
	"todoapp-backend/internal/infrastructure/database"
	"todoapp-backend/pkg/cache"
)

// Container holds every dependency of the application and is the root of
// the dependency graph. Initialization order matters: config, then
// infrastructure, then repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo catalogRepo.AuthorRepository
	BookRepo   catalogRepo.BookRepository

	AuthorService catalogService.AuthorService
	BookService   catalogService.BookService

	AuthorHandler *catalogHandler.AuthorHandler
	BookHandler   *catalogHandler.BookHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// A dead cache is degraded, not fatal: repositories treat every cache
	// miss and cache error the same way.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("redis connection failed, continuing without warm cache")
		}
	}
	c.Cache = redisCache

	c.AuthorRepo = catalogRepo.NewAuthorRepository(db.Pool, c.Cache)
	c.BookRepo = catalogRepo.NewBookRepository(db.Pool, c.Cache)

	c.AuthorService = catalogService.NewAuthorService(c.AuthorRepo)
	c.BookService = catalogService.NewBookService(c.BookRepo)

	c.AuthorHandler = catalogHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = catalogHandler.NewBookHandler(c.BookService)

	return c, nil
}

// Cleanup releases infrastructure connections; called on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
