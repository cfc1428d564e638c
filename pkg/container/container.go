package container

import (
	"context"
	"fmt"
	"time"

	"bookstore-search/internal/config"
	"bookstore-search/internal/domains/catalog"
	catalogHandler "bookstore-search/internal/domains/catalog/handler"
	searchHandler "bookstore-search/internal/domains/search/handler"
	searchService "bookstore-search/internal/domains/search/service"
	infraCache "bookstore-search/internal/infrastructure/cache"
	"bookstore-search/pkg/logger"
	"bookstore-search/pkg/ratelimit"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Lifecycle: Singleton, built once at start
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config  *config.Config
	Redis   *infraCache.RedisClient // nil unless RATE_LIMIT_BACKEND=redis
	Limiter ratelimit.Limiter

	// ========================================
	// GATEWAY LAYER (UPSTREAM CATALOGS)
	// ========================================
	BookCatalog   catalog.BookCatalog
	AuthorCatalog catalog.AuthorCatalog

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	SearchService searchService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	SearchHandler *searchHandler.SearchHandler
	BookHandler   *catalogHandler.BookHandler

	memoryLimiter *ratelimit.MemoryLimiter
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads the configuration and builds the dependency graph.
//
// Thứ tự initialization:
// 1. Config
// 2. Infrastructure (logger, redis, rate limiter)
// 3. Catalog gateways
// 4. Services
// 5. Handlers
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return Build(cfg)
}

// Build wires the graph for an already loaded configuration.
func Build(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: LOGGER
	// ========================================
	logger.Init(cfg.App.Environment, cfg.Log.Level)
	logger.Info("Initializing DI container", map[string]interface{}{
		"environment": cfg.App.Environment,
		"version":     cfg.App.Version,
	})

	// ========================================
	// STEP 2: RATE LIMITER (+ REDIS)
	// ========================================
	if err := c.initRateLimiter(); err != nil {
		return nil, err
	}

	// ========================================
	// STEP 3: CATALOG GATEWAYS
	// ========================================
	c.BookCatalog = catalog.NewBooksClient(catalog.Config{
		Name:    "books",
		BaseURL: cfg.Books.BaseURL,
		Secret:  cfg.Books.Secret,
		Timeout: cfg.Books.Timeout,
	})
	c.AuthorCatalog = catalog.NewAuthorsClient(catalog.Config{
		Name:    "authors",
		BaseURL: cfg.Authors.BaseURL,
		Secret:  cfg.Authors.Secret,
		Timeout: cfg.Authors.Timeout,
	})

	// ========================================
	// STEP 4: SERVICES
	// ========================================
	popular, err := searchService.LoadPopularSearches(cfg.Popular.File)
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to load popular searches: %w", err)
	}
	c.SearchService = searchService.NewService(c.BookCatalog, c.AuthorCatalog, popular)

	// ========================================
	// STEP 5: HANDLERS
	// ========================================
	c.SearchHandler = searchHandler.NewSearchHandler(c.SearchService)
	c.BookHandler = catalogHandler.NewBookHandler(c.BookCatalog)

	logger.Info("DI container ready", map[string]interface{}{
		"books_url":          cfg.Books.BaseURL,
		"authors_url":        cfg.Authors.BaseURL,
		"rate_limit_backend": cfg.RateLimit.Backend,
		"popular_searches":   len(popular),
	})

	return c, nil
}

func (c *Container) initRateLimiter() error {
	rl := c.Config.RateLimit

	if rl.Backend == "redis" {
		c.Redis = infraCache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.Redis.Connect(ctx); err != nil {
			_ = c.Redis.Close()
			c.Redis = nil
			return fmt.Errorf("failed to connect redis: %w", err)
		}

		c.Limiter = ratelimit.NewRedisLimiter(c.Redis.Client, rl.Burst, rl.Window)
		return nil
	}

	c.memoryLimiter = ratelimit.NewMemoryLimiter(rl.RPS, rl.Burst)
	c.Limiter = c.memoryLimiter
	return nil
}

// Cleanup releases background resources
func (c *Container) Cleanup() {
	if c.memoryLimiter != nil {
		c.memoryLimiter.Stop()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.Error("Failed to close redis", err)
		}
	}
}
