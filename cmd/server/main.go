package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"resumehub/internal/api"
	"resumehub/internal/config"
	"resumehub/internal/document"
	"resumehub/internal/editor"
	"resumehub/internal/export"
	"resumehub/internal/metrics"
	"resumehub/internal/preview"
	"resumehub/internal/resume"
	"resumehub/internal/theme"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewEditor()
	store := document.New(resume.Seed(), document.WithLogger(logger))
	panel := editor.NewPanel(store, editor.WithRecorder(recorder))
	themeCtx := theme.New(theme.Default())
	renderer := preview.MustNewRenderer()

	var (
		enqueuer    export.Enqueuer
		redisClient *redis.Client
	)
	if cfg.Export.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("close redis client failed", slog.Any("error", err))
			}
		}()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("ping redis: %v", err)
		}

		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer asynqClient.Close()

		enqueuer = export.NewQueueEnqueuer(asynqClient, cfg.Export.MaxRetry, cfg.Export.Timeout)
		logger.Info("export queue enabled", slog.String("redis_addr", cfg.Redis.Addr))
	} else {
		logger.Info("export queue disabled, pdf/docx exports only return a notice")
	}

	router := api.NewRouter(logger)
	wsHandler := api.RegisterRoutes(router, api.Dependencies{
		Store:    store,
		Panel:    panel,
		Theme:    themeCtx,
		Renderer: renderer,
		Exporter: export.NewService(renderer, enqueuer, logger),
		Redis:    redisClient,
		Recorder: recorder,
		Logger:   logger,
	})
	defer wsHandler.Close()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("api listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("server stopped")
}
