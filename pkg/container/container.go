package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"

	"library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/category"
	categoryHandler "library-backend/internal/domains/category/handler"
	categoryRepo "library-backend/internal/domains/category/repository"
	categoryService "library-backend/internal/domains/category/service"
	"library-backend/internal/domains/user"
	userHandler "library-backend/internal/domains/user/handler"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"
	"library-backend/internal/domains/wishlist"
	wishlistHandler "library-backend/internal/domains/wishlist/handler"
	wishlistRepo "library-backend/internal/domains/wishlist/repository"
	wishlistService "library-backend/internal/domains/wishlist/service"
)

// Container is the root of the dependency graph. Every component is a
// singleton built once at startup.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	UserRepo     user.Repository
	CategoryRepo category.Repository
	BookRepo     book.Repository
	WishlistRepo wishlist.Repository

	UserService     user.Service
	CategoryService category.Service
	BookService     book.Service
	WishlistService wishlist.Service

	AuthHandler     *userHandler.AuthHandler
	UserHandler     *userHandler.UserHandler
	CategoryHandler *categoryHandler.CategoryHandler
	BookHandler     *bookHandler.BookHandler
	WishlistHandler *wishlistHandler.WishlistHandler
}

// NewContainer builds the full dependency graph in layer order:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("configuration loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	db := database.NewPostgresDB(config.LoadDatabaseConfig(cfg))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Connect is not part of the Cache interface. Redis being down is
	// not fatal: caching and the token denylist degrade gracefully.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed, running without cache", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			logger.Info("redis connected", nil)
		}
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	logger.Info("container initialized", nil)
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.CategoryRepo = categoryRepo.NewPostgresRepository(pool)
	c.BookRepo = bookRepo.NewPostgresRepository(pool, c.Cache)
	c.WishlistRepo = wishlistRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager, c.Cache)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.BookRepo)
	// The wishlist repository doubles as the reader that decorates
	// book detail responses for authenticated callers.
	c.BookService = bookService.NewBookService(c.BookRepo, c.CategoryRepo, c.WishlistRepo)
	c.WishlistService = wishlistService.NewWishlistService(c.WishlistRepo, c.BookRepo)
}

func (c *Container) initHandlers() {
	c.AuthHandler = userHandler.NewAuthHandler(c.UserService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.WishlistHandler = wishlistHandler.NewWishlistHandler(c.WishlistService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				logger.Error("failed to close redis connection", err)
			}
		}
	}

	if c.DB != nil {
		c.DB.Close()
	}

	logger.Info("container cleaned up", nil)
}
