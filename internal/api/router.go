package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mociber/booking-api/internal/api/handler"
	"github.com/mociber/booking-api/internal/api/middleware"
	"github.com/mociber/booking-api/internal/core/service"
	"github.com/mociber/booking-api/internal/infrastructure/config"
	mongodb "github.com/mociber/booking-api/internal/infrastructure/db/mongo"
	"github.com/mociber/booking-api/internal/infrastructure/db/redis"
	"github.com/mociber/booking-api/internal/infrastructure/webhook"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	sessions := redis.NewSessionStore(rdb)
	accountRepo := mongodb.NewAccountRepository(db)
	requestRepo := mongodb.NewRequestRepository(db)
	notifier := webhook.NewNotifier(webhook.Config{
		URL:     cfg.Webhook.URL,
		Timeout: cfg.Webhook.Timeout,
	}, log)

	authService := service.NewAuthService(accountRepo, sessions, cfg.JWTSecret, cfg.SessionTTL, log)
	requestService := service.NewRequestService(requestRepo, notifier, log)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler()
	requestHandler := handler.NewRequestHandler(requestService)
	authMiddleware := middleware.Auth(cfg.JWTSecret, sessions)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/session", authHandler.Session, authMiddleware)

	// --- Booking routes (session required) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.GET("/services", catalogHandler.List)
	v1.GET("/services/:serviceType", catalogHandler.Get)
	v1.POST("/requests", requestHandler.Submit)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
