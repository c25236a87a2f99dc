// Package server provides HTTP server setup and configuration.
package server

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/yukselcoding/greeting-service/internal/config"
	"github.com/yukselcoding/greeting-service/internal/handlers"
	"github.com/yukselcoding/greeting-service/internal/middleware"
)

const healthPath = "/api/v1/health"

// Dependencies holds all dependencies needed to create a server
type Dependencies struct {
	Config  *config.Config
	Greeter handlers.Greeter
	Logger  *slog.Logger
}

// New creates a new Gin router with all routes configured
func New(deps *Dependencies) *gin.Engine {
	// gin.New() instead of gin.Default() so request logging goes through slog
	router := gin.New()

	// Unsupported methods on a known path answer 405 instead of 404
	router.HandleMethodNotAllowed = true

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger, healthPath))

	// CORS for browser clients
	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Encoding", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.NewRateLimitMiddleware(deps.Config.RateLimit.Limit, deps.Config.RateLimit.Period))
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	router.NoMethod(handlers.MethodNotAllowed)
	router.NoRoute(handlers.NotFound)

	greetingHandler := handlers.NewGreetingHandler(deps.Greeter)
	greetingLimiter := middleware.NewRateLimitMiddleware(
		deps.Config.RateLimit.GreetingLimit,
		deps.Config.RateLimit.GreetingPeriod,
	)

	registerGreeting := func(group *gin.RouterGroup) {
		hello := group.Group("/hello")
		hello.Use(greetingLimiter)
		{
			hello.GET("/:name", greetingHandler.GreetByPath)
			hello.POST("", greetingHandler.GreetByBody)
		}
	}

	registerGreeting(&router.RouterGroup)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", handlers.NewHealthHandler(deps.Config.Server.Version))
		registerGreeting(v1)
	}

	return router
}
