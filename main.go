package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/caatpension/pension-api/handlers"
	"github.com/caatpension/pension-api/internal/auth"
	"github.com/caatpension/pension-api/internal/config"
	"github.com/caatpension/pension-api/internal/contact"
	"github.com/caatpension/pension-api/internal/employers"
	"github.com/caatpension/pension-api/internal/members"
	"github.com/caatpension/pension-api/internal/news"
	"github.com/caatpension/pension-api/internal/sessions"
	"github.com/caatpension/pension-api/pkg/logger"
	"github.com/caatpension/pension-api/pkg/metrics"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: redis=%v jwt_secret_set=%v", cfg.Redis.Host != "", cfg.JWT.Secret != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple; production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Active-token registry: Redis when configured and reachable, otherwise
	// in-process memory (tokens then die with the process).
	var registry sessions.Registry = sessions.NewMemoryRegistry()
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(context.Background()).Err(); err == nil {
			registry = sessions.NewRedisRegistry(redisClient, "")
			logger.Infof("Using Redis for the active-token registry: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis (%s:%s): %v; falling back to in-memory registry", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		}
	}

	// Basic health endpoint
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "CAAT Pension API", "version": "1.0.0", "docs": "/docs"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "CAAT Pension API"})
	})

	// readiness endpoint: return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		if redisClient != nil {
			deps["redis"] = redisClient.Ping(c.Request.Context()).Err() == nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			// memory registry has no external dependency
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Services over the seeded in-memory stores
	authSvc := auth.NewService(cfg, registry)
	memberSvc := members.NewService(cfg, members.NewRepository())
	newsSvc := news.NewService()
	employerSvc := employers.NewService()
	contactSvc := contact.NewService()

	api := r.Group("/api/v1")
	handlers.NewAuthHandler(authSvc).Register(api)
	handlers.NewMembersHandler(memberSvc).Register(api)
	handlers.NewNewsHandler(newsSvc).Register(api)
	handlers.NewEmployersHandler(employerSvc).Register(api)
	handlers.NewContactHandler(contactSvc).Register(api)

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting pension API on %s (env=%s)", addr, cfg.Server.Environment)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
