// Command server runs the contracts and notifications API.
//
// @title        Contracts System API
// @version      1.0
// @description  Contract lifecycle and notification dispatch for the freelancer marketplace.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/talentia/contracts-system/internal/api"
	"github.com/talentia/contracts-system/internal/infrastructure/config"
	mongodb "github.com/talentia/contracts-system/internal/infrastructure/db/mongo"
	redisdb "github.com/talentia/contracts-system/internal/infrastructure/db/redis"
	"github.com/talentia/contracts-system/internal/infrastructure/push"
	"github.com/talentia/contracts-system/internal/infrastructure/queue"
	"github.com/talentia/contracts-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.NewContractRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure contract indexes")
	}
	if err := mongodb.NewNotificationRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure notification indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Push pipeline: persisted notification → redis pub/sub → websocket ---
	publisher := redisdb.NewNotificationPublisher(rdb)
	dispatcher := queue.NewPushDispatcher(cfg.PushWorkers, publisher, log)
	dispatcher.Start(ctx)

	hub := push.NewHub(rdb, log)

	e := api.NewRouter(db, rdb, dispatcher, hub, cfg.JWTSecret, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
