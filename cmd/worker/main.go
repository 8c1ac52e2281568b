package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"resumehub/internal/config"
	"resumehub/internal/export"
	"resumehub/internal/metrics"
	"resumehub/internal/preview"
	"resumehub/internal/storage"
	"resumehub/internal/tasks"
)

func main() {
	cfg := config.MustLoad()
	if err := cfg.ValidateExport(); err != nil {
		log.Fatalf("invalid export config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)

	ctx := context.Background()

	storageClient, err := storage.NewClient(ctx, cfg.MinIO)
	if err != nil {
		log.Fatalf("init storage client: %v", err)
	}
	logger.Info("storage client ready", slog.String("bucket", cfg.MinIO.Bucket))

	redisClient := redis.NewClient(&redis.Options{
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

	renderer := preview.MustNewRenderer()
	handler := export.NewTaskHandler(
		map[export.Format]export.Converter{
			export.PDF:  export.NewPDFConverter(renderer, cfg.Export.Timeout),
			export.DOCX: export.NewDOCXConverter(),
		},
		storageClient,
		export.NewRedisPublisher(redisClient),
		logger,
		cfg.Export.LinkTTL,
	)

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: cfg.Export.Concurrency,
	})

	mux := asynq.NewServeMux()
	mux.Use(metrics.AsynqMetricsMiddleware())
	mux.Handle(tasks.TypeExportGenerate, handler)

	logger.Info("worker service started", slog.String("redis_addr", cfg.Redis.Addr))
	if err := server.Run(mux); err != nil {
		logger.Error("worker server stopped", slog.Any("error", err))
	}
}
