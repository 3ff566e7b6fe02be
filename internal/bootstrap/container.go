package bootstrap

import (
	"context"
	"log"
	"time"

	"newsroom-be/internal/config"
	"newsroom-be/internal/controller"
	"newsroom-be/internal/pkg/logger"
	"newsroom-be/internal/repository/unitofwork"
	"newsroom-be/internal/service"
	"newsroom-be/pkg/cache"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	CategoryController controller.ICategoryController
	NewsController     controller.INewsController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	// 2. Cache store. Redis when reachable, in-process otherwise; either
	// way cache failures never fail a request.
	store := newCacheStore(cfg, ttl)

	// 3. Services
	categoryService := service.NewCategoryService(uowFactory)
	newsService := service.NewNewsService(uowFactory, categoryService)

	// 4. Controllers
	return &Container{
		CategoryController: controller.NewCategoryController(categoryService, store, sysLogger, ttl),
		NewsController:     controller.NewNewsController(newsService, store, sysLogger, ttl),
		Logger:             sysLogger,
	}
}

func newCacheStore(cfg *config.Config, ttl time.Duration) cache.Store {
	opt, err := redis.ParseURL(cfg.Cache.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.Cache.RedisURL}
	}

	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory cache", err)
		return cache.NewMemoryStore(ttl)
	}
	return cache.NewRedisStore(rdb)
}
