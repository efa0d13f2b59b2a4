package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opsdeck/admin-dashboard/internal/api/handler"
	"github.com/opsdeck/admin-dashboard/internal/api/middleware"
	"github.com/opsdeck/admin-dashboard/internal/core/domain"
	"github.com/opsdeck/admin-dashboard/internal/core/service"
	"github.com/opsdeck/admin-dashboard/internal/core/token"
	mongodb "github.com/opsdeck/admin-dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/opsdeck/admin-dashboard/internal/infrastructure/db/redis"
	httphandlers "github.com/opsdeck/admin-dashboard/internal/infrastructure/http/handlers"
)

// RouterConfig carries the runtime knobs the router needs beyond its
// storage handles.
type RouterConfig struct {
	JWTSecret        string
	TokenTTL         time.Duration
	LoginMaxAttempts int
	LoginWindow      time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg RouterConfig, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.LoginMaxAttempts, cfg.LoginWindow)
	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	auditService := service.NewAuditRecorder(auditRepo, userRepo, log)
	authService := service.NewAuthService(userRepo, tokens, throttle, auditService, log)
	userService := service.NewUserService(userRepo, auditService, log)
	contentService := service.NewContentService(postRepo, userRepo, auditService, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	contentHandler := handler.NewContentHandler(contentService)
	logHandler := handler.NewLogHandler(auditService)

	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes (no token required) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Admin-only user management ---
	users := e.Group("/users", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.PUT("/:id/role", userHandler.UpdateRole)
	users.DELETE("/:id", userHandler.Delete)

	// --- Content. Mutation rights are decided per post by the policy
	// (owner or admin), so no coarse role gate here: a missing post has
	// to answer 404 before ownership is even considered. ---
	content := e.Group("/content", authMiddleware)
	content.GET("", contentHandler.List)
	content.POST("", contentHandler.Create)
	content.PUT("/:id", contentHandler.Update)
	content.DELETE("/:id", contentHandler.Delete)

	// --- Admin-only audit log ---
	logs := e.Group("/logs", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	logs.GET("", logHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
