package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"blog-backend/internal/config"
	infraCache "blog-backend/internal/infrastructure/cache"
	"blog-backend/internal/infrastructure/database"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/jwt"

	commentHandler "blog-backend/internal/domains/comment/handler"
	commentRepo "blog-backend/internal/domains/comment/repository"
	commentService "blog-backend/internal/domains/comment/service"
	postHandler "blog-backend/internal/domains/post/handler"
	postRepo "blog-backend/internal/domains/post/repository"
	postService "blog-backend/internal/domains/post/service"
	"blog-backend/internal/domains/user"
	userHandler "blog-backend/internal/domains/user/handler"
	userRepo "blog-backend/internal/domains/user/repository"
	userService "blog-backend/internal/domains/user/service"
)

// Container holds the whole dependency graph, built once at startup in
// strict order: config, infrastructure, repositories, services, handlers.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// Repositories
	UserRepo    user.Repository
	PostRepo    postRepo.Repository
	CommentRepo commentRepo.Repository

	// Services
	UserService    user.Service
	PostService    postService.Service
	CommentService commentService.Service

	// Handlers
	UserHandler    *userHandler.UserHandler
	PostHandler    *postHandler.PostHandler
	CommentHandler *commentHandler.CommentHandler

	redis *infraCache.RedisCache
}

func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// ========================================
	// STEP 2: DATABASE
	// ========================================
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
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 3: CACHE
	// ========================================
	// Redis being down only disables the user cache; requests still work.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("[CACHE] Redis unavailable, continuing without cache: %v", err)
		c.Cache = nil
	} else {
		c.Cache = redisCache
		c.redis = redisCache
	}

	// ========================================
	// STEP 4: JWT MANAGER
	// ========================================
	jwtManager, err := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.Algorithm,
		time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create jwt manager: %w", err)
	}
	c.JWTManager = jwtManager

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	c.UserRepo = userRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.PostRepo = postRepo.NewPostgresRepository(db.Pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(db.Pool)

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.PostService = postService.NewPostService(c.PostRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.PostRepo)

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	c.UserHandler = userHandler.NewUserHandler(c.UserService, c.PostService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Printf("[CACHE] Close failed: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
