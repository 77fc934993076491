// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"socialhub/internal/cache"
	"socialhub/internal/config"
	"socialhub/internal/database"
	"socialhub/internal/middleware"
	"socialhub/internal/models"
	"socialhub/internal/repository"
	"socialhub/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo       repository.UserRepository
	groupRepo      repository.GroupRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository
	likeRepo       repository.LikeRepository
	friendshipRepo repository.FriendshipRepository
	eventRepo      repository.EventRepository
	adRepo         repository.AdvertisementRepository

	userService       *service.UserService
	groupService      *service.GroupService
	postService       *service.PostService
	commentService    *service.CommentService
	likeService       *service.LikeService
	friendshipService *service.FriendshipService
	eventService      *service.EventService
	adService         *service.AdvertisementService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and optionally
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("socialhub-api"),
		userRepo:       repository.NewUserRepository(db),
		groupRepo:      repository.NewGroupRepository(db),
		postRepo:       repository.NewPostRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
		likeRepo:       repository.NewLikeRepository(db),
		friendshipRepo: repository.NewFriendshipRepository(db),
		eventRepo:      repository.NewEventRepository(db),
		adRepo:         repository.NewAdvertisementRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo)
	server.groupService = service.NewGroupService(server.groupRepo)
	server.postService = service.NewPostService(server.postRepo, server.commentRepo, server.likeRepo)
	server.commentService = service.NewCommentService(server.commentRepo)
	server.likeService = service.NewLikeService(server.likeRepo)
	server.friendshipService = service.NewFriendshipService(server.friendshipRepo)
	server.eventService = service.NewEventService(server.eventRepo, server.userRepo)
	server.adService = service.NewAdvertisementService(server.adRepo, redisClient)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for correlation
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.NewString() },
	}))

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// Distributed tracing spans per request
	app.Use(middleware.TracingMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// User routes
	users := api.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/csv", s.ExportUsers)
	users.Get("/oldest", s.GetOldestUser)
	users.Get("/youngest", s.GetYoungestUser)
	users.Get("/location/:location", s.GetUsersByLocation)
	users.Get("/gender/:gender", s.GetUsersByGender)
	users.Get("/search/:term", middleware.RateLimit(
		s.redis, 10, time.Minute, "user_search"), s.SearchUsers)
	users.Get("/partial/:term", middleware.RateLimit(
		s.redis, 10, time.Minute, "user_search"), s.SearchUsersPartial)
	users.Post("/", s.CreateUser)
	users.Put("/:id", s.UpdateUser)
	users.Delete("/:id", s.DeleteUser)
	// Generic /:id route must be last
	users.Get("/:id", s.GetUser)

	// Group routes
	groups := api.Group("/groups")
	groups.Get("/", s.GetGroups)
	groups.Get("/csv", s.ExportGroups)
	groups.Get("/byname", s.GetGroupsByName)
	groups.Get("/empty", s.GetEmptyGroup)
	groups.Get("/search", s.SearchGroups)
	groups.Get("/partial", s.SearchGroupsPartial)
	// Define specific /:id/:resource routes BEFORE generic /:id route
	groups.Get("/:id/users", s.GetGroupMembers)
	groups.Get("/:id/fill", s.GetGroupFillPercentage)
	groups.Post("/", s.CreateGroup)
	groups.Put("/:id", s.UpdateGroup)
	groups.Delete("/:id", s.DeleteGroup)
	groups.Get("/:id", s.GetGroup)

	// Event routes
	events := api.Group("/events")
	events.Get("/", s.GetEvents)
	events.Get("/csv", s.ExportEvents)
	events.Get("/search/:term", middleware.RateLimit(
		s.redis, 10, time.Minute, "event_search"), s.SearchEvents)
	events.Get("/partial/:term", middleware.RateLimit(
		s.redis, 10, time.Minute, "event_search"), s.SearchEventsPartial)
	events.Post("/:id/user/:userId", s.JoinEvent)
	events.Post("/", s.CreateEvent)
	events.Put("/:id", s.UpdateEvent)
	events.Delete("/:id", s.DeleteEvent)
	events.Get("/:id", s.GetEvent)

	// Post routes (comments and likes are written through their post)
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/csv", s.ExportPosts)
	posts.Post("/", s.CreatePost)
	posts.Post("/:id/comments", s.CreateComment)
	posts.Put("/:id/comments/:commentId", s.UpdateComment)
	posts.Delete("/:id/comments/:commentId", s.DeleteComment)
	posts.Post("/:id/likes", s.CreateLike)
	posts.Delete("/:id/likes/:likeId", s.DeleteLike)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)
	posts.Get("/:id", s.GetPost)

	// Comment routes (read-only collection views)
	comments := api.Group("/comments")
	comments.Get("/", s.GetComments)
	comments.Get("/csv", s.ExportComments)
	comments.Get("/:id", s.GetComment)

	// Like routes (read-only collection views)
	likes := api.Group("/likes")
	likes.Get("/", s.GetLikes)
	likes.Get("/csv", s.ExportLikes)
	likes.Get("/:id", s.GetLike)

	// Friendship routes
	friendships := api.Group("/friendships")
	friendships.Get("/", s.GetFriendships)
	friendships.Get("/csv", s.ExportFriendships)
	friendships.Post("/", s.CreateFriendship)
	friendships.Delete("/:id", s.DeleteFriendship)
	friendships.Get("/:id", s.GetFriendship)

	// Advertisement routes
	ads := api.Group("/advertisements")
	ads.Get("/", s.GetAdvertisements)
	ads.Get("/csv", s.ExportAdvertisements)
	ads.Get("/active", s.GetActiveAdvertisements)
	ads.Post("/", s.CreateAdvertisement)
	ads.Put("/:id", s.UpdateAdvertisement)
	ads.Delete("/:id", s.DeleteAdvertisement)
	ads.Get("/:id", s.GetAdvertisement)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The cache is optional; a missing Redis degrades but does not
		// block readiness.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Social Hub API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
