package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/talentia/contracts-system/docs"
	"github.com/talentia/contracts-system/internal/api/handler"
	"github.com/talentia/contracts-system/internal/api/middleware"
	"github.com/talentia/contracts-system/internal/core/domain"
	"github.com/talentia/contracts-system/internal/core/ports"
	"github.com/talentia/contracts-system/internal/core/service"
	mongodb "github.com/talentia/contracts-system/internal/infrastructure/db/mongo"
	"github.com/talentia/contracts-system/internal/infrastructure/push"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The push enqueuer and hub are constructed by the caller so that worker
// lifecycle stays in main.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	pushQueue ports.PushEnqueuer,
	hub *push.Hub,
	jwtSecret string,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("contracts_http"))

	// --- Dependencies ---
	contractRepo := mongodb.NewContractRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)

	notificationService := service.NewNotificationService(notificationRepo, pushQueue, log)
	notifier := service.NewNotifier(notificationService, nil)
	contractService := service.NewContractService(contractRepo, log)

	contractHandler := handler.NewContractHandler(contractService, notifier)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	eventHandler := handler.NewEventHandler(notifier)
	realtimeHandler := handler.NewRealtimeHandler(hub)

	auth := middleware.Auth(jwtSecret)

	// --- Contracts ---
	contracts := e.Group("/v1/contracts", auth)
	contracts.POST("", contractHandler.Create)
	contracts.GET("", contractHandler.List)
	contracts.GET("/:id", contractHandler.Get)
	contracts.PATCH("/:id", contractHandler.Update)
	contracts.POST("/:id/signatures", contractHandler.Sign)
	contracts.POST("/:id/complete", contractHandler.Complete)
	contracts.POST("/:id/cancel", contractHandler.Cancel)
	contracts.PATCH("/:id/milestones/:milestone_id", contractHandler.UpdateMilestone)

	// --- Notifications ---
	notifications := e.Group("/v1/notifications", auth)
	notifications.GET("", notificationHandler.List)
	notifications.GET("/unread-count", notificationHandler.UnreadCount)
	notifications.POST("/:id/read", notificationHandler.MarkRead)
	notifications.POST("/read-all", notificationHandler.MarkAllRead)

	// --- Live feed ---
	e.GET("/v1/ws/notifications", realtimeHandler.Stream, auth)

	// --- Internal event ingestion (sibling services only) ---
	internal := e.Group("/internal/v1", auth, middleware.RBAC(domain.RoleAdmin, "service"))
	internal.POST("/events", eventHandler.Receive)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
