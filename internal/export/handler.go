package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"resumehub/internal/errcode"
	"resumehub/internal/tasks"
)

// Uploader 是导出文件的存储端。
type Uploader interface {
	UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	GeneratePresignedURL(ctx context.Context, objectKey, filename string, duration time.Duration) (string, error)
	DeleteObject(ctx context.Context, objectKey string) error
}

// TaskHandler 负责消费导出任务。
type TaskHandler struct {
	converters map[Format]Converter
	uploader   Uploader
	publisher  Publisher
	logger     *slog.Logger
	linkTTL    time.Duration
}

// NewTaskHandler 创建任务处理器。
func NewTaskHandler(converters map[Format]Converter, uploader Uploader, publisher Publisher, logger *slog.Logger, linkTTL time.Duration) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		converters: converters,
		uploader:   uploader,
		publisher:  publisher,
		logger:     logger,
		linkTTL:    linkTTL,
	}
}

// ProcessTask 实现 asynq.Handler。
func (h *TaskHandler) ProcessTask(ctx context.Context, t *asynq.Task) (retErr error) {
	log := h.logger

	payload, err := tasks.ParseExportPayload(t)
	if err != nil {
		log.Error("unmarshal task payload failed", slog.Any("error", err))
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	log = log.With(
		slog.String("correlation_id", payload.CorrelationID),
		slog.String("format", payload.Format),
		slog.Uint64("version", payload.Version),
	)
	log.Info("Starting resume export task...")

	format, _ := ParseFormat(payload.Format)

	defer func() {
		if retErr == nil {
			return
		}
		if !errors.Is(retErr, asynq.SkipRetry) && !isFinalAsynqAttempt(ctx) {
			return
		}

		code := errcode.ExportFailed
		if errors.Is(retErr, ErrUnknownFormat) {
			code = errcode.UnknownFormat
		}
		notify := NotifyMessage{
			Status:        StatusError,
			Format:        format,
			Version:       payload.Version,
			CorrelationID: payload.CorrelationID,
			ErrorCode:     code,
			ErrorMessage:  strings.TrimSpace(retErr.Error()),
		}
		if err := h.publisher.Publish(ctx, notify); err != nil {
			log.Error("publish export error notification failed", slog.Any("error", err))
		}
	}()

	converter, ok := h.converters[format]
	if !ok {
		log.Warn("no converter for export format")
		return fmt.Errorf("%w: %q: %w", ErrUnknownFormat, payload.Format, asynq.SkipRetry)
	}

	data, err := converter.Convert(ctx, payload)
	if err != nil {
		log.Error("convert resume failed", slog.Any("error", err))
		return err
	}

	objectName := fmt.Sprintf("exports/%s/%s%s", format, uuid.NewString(), format.Extension())
	if err := h.uploader.UploadFile(ctx, objectName, bytes.NewReader(data), int64(len(data)), format.ContentType()); err != nil {
		log.Error("upload export to minio failed", slog.Any("error", err))
		return err
	}

	link, err := h.uploader.GeneratePresignedURL(ctx, objectName, FileName(payload.Document.PersonalInfo.Name, format), h.linkTTL)
	if err != nil {
		log.Error("generate presigned url failed", slog.Any("error", err))
		h.discard(ctx, log, objectName)
		return err
	}

	notify := NotifyMessage{
		Status:        StatusCompleted,
		Format:        format,
		Version:       payload.Version,
		CorrelationID: payload.CorrelationID,
		URL:           link,
		ErrorCode:     errcode.OK,
	}
	if err := h.publisher.Publish(ctx, notify); err != nil {
		log.Error("publish redis notification failed", slog.Any("error", err))
		h.discard(ctx, log, objectName)
		return err
	}

	log.Info("Resume export task completed successfully.",
		slog.String("object", objectName),
		slog.Int("bytes", len(data)),
	)
	return nil
}

// discard 删除本次尝试上传的对象。重试会生成新的对象名，
// 没有送达链接的文件不会再被引用。
func (h *TaskHandler) discard(ctx context.Context, log *slog.Logger, objectName string) {
	if err := h.uploader.DeleteObject(ctx, objectName); err != nil {
		log.Warn("delete orphaned export failed", slog.String("object", objectName), slog.Any("error", err))
	}
}

func isFinalAsynqAttempt(ctx context.Context) bool {
	retryCount, ok1 := asynq.GetRetryCount(ctx)
	maxRetry, ok2 := asynq.GetMaxRetry(ctx)
	if !ok1 || !ok2 {
		return false
	}
	return retryCount >= maxRetry
}
