package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/yukikurage/project-management-api/internal/config"
	"github.com/yukikurage/project-management-api/internal/database"
	"github.com/yukikurage/project-management-api/internal/handlers"
	applogger "github.com/yukikurage/project-management-api/internal/logger"
	"github.com/yukikurage/project-management-api/internal/middleware"
	"github.com/yukikurage/project-management-api/internal/repository"
	"github.com/yukikurage/project-management-api/internal/services"
	"github.com/yukikurage/project-management-api/internal/token"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := applogger.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Redis backs the token denylist
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
	})
	defer rdb.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		cancel()
		logger.Fatal("Failed to connect to Redis", zap.String("addr", cfg.RedisAddr()), zap.Error(err))
	}
	cancel()

	tokens, err := token.NewService(cfg.JWTSecret, cfg.TokenTTL, token.NewRedisDenylist(rdb), logger)
	if err != nil {
		logger.Fatal("Failed to create token service", zap.Error(err))
	}

	// Initialize repositories and services
	db := database.GetDB()
	authService := services.NewAuthService(repository.NewUserRepository(db), tokens)
	projectService := services.NewProjectService(repository.NewProjectRepository(db))

	var authLimiter *middleware.RateLimiter
	if cfg.AuthRateLimit > 0 {
		authLimiter = middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst)
	}

	// Initialize Gin router
	r, err := handlers.NewEngine(cfg.TrustedProxies,
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}),
	)
	if err != nil {
		logger.Fatal("Invalid TRUSTED_PROXIES", zap.Error(err))
	}

	handlers.RegisterRoutes(r, handlers.Routes{
		Auth:        handlers.NewAuthHandler(authService, tokens, logger),
		Projects:    handlers.NewProjectHandler(projectService, logger),
		Verifier:    tokens,
		AuthLimiter: authLimiter,
		Health: handlers.Health(
			database.Ping,
			func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		),
	})

	// Start server
	addr := ":" + cfg.Port
	logger.Info("Server starting", zap.String("addr", addr), zap.String("mode", cfg.GinMode))
	if err := r.Run(addr); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
