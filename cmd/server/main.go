package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RichardBobik/eye-know-api-2/internal/api"
	"github.com/RichardBobik/eye-know-api-2/internal/infrastructure/config"
	mongodb "github.com/RichardBobik/eye-know-api-2/internal/infrastructure/db/mongo"
	redisdb "github.com/RichardBobik/eye-know-api-2/internal/infrastructure/db/redis"
	"github.com/RichardBobik/eye-know-api-2/internal/infrastructure/queue"
	"github.com/RichardBobik/eye-know-api-2/internal/infrastructure/recognition"
	"github.com/RichardBobik/eye-know-api-2/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	audit := queue.NewDispatcher(0, mongodb.NewAuditRepository(db), log)
	audit.Start(ctx)

	recognizer := recognition.NewClarifaiClient(recognition.Config{
		BaseURL: cfg.Clarifai.BaseURL,
		PAT:     cfg.Clarifai.PAT,
		UserID:  cfg.Clarifai.UserID,
		AppID:   cfg.Clarifai.AppID,
		ModelID: cfg.Clarifai.ModelID,
	})

	e := api.NewRouter(db, rdb, recognizer, audit, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
