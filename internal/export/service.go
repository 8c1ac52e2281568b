package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"resumehub/internal/document"
	"resumehub/internal/preview"
	"resumehub/internal/tasks"
	"resumehub/internal/theme"
)

// Enqueuer 把导出任务放入队列并返回任务 id。
type Enqueuer interface {
	Enqueue(ctx context.Context, p tasks.ExportPayload) (string, error)
}

// QueueEnqueuer 使用 asynq 投递导出任务。
type QueueEnqueuer struct {
	client   *asynq.Client
	maxRetry int
	timeout  time.Duration
}

func NewQueueEnqueuer(client *asynq.Client, maxRetry int, timeout time.Duration) *QueueEnqueuer {
	return &QueueEnqueuer{client: client, maxRetry: maxRetry, timeout: timeout}
}

func (q *QueueEnqueuer) Enqueue(ctx context.Context, p tasks.ExportPayload) (string, error) {
	opts := []asynq.Option{asynq.MaxRetry(q.maxRetry)}
	if q.timeout > 0 {
		opts = append(opts, asynq.Timeout(q.timeout))
	}
	task, err := tasks.NewExportTask(p, opts...)
	if err != nil {
		return "", err
	}
	info, err := q.client.EnqueueContext(ctx, task)
	if err != nil {
		return "", fmt.Errorf("enqueue export task: %w", err)
	}
	return info.ID, nil
}

// Result 是一次导出触发的结果。
type Result struct {
	Format Format `json:"format"`
	Notice Notice `json:"notice"`
	Queued bool   `json:"queued"`
	TaskID string `json:"task_id,omitempty"`
	HTML   string `json:"-"`
}

// Service 处理导出触发，不持有文档状态。
type Service struct {
	renderer *preview.Renderer
	enqueuer Enqueuer
	logger   *slog.Logger
}

// NewService 创建导出服务。enqueuer 为 nil 时 PDF/DOCX 只返回提示文案。
func NewService(renderer *preview.Renderer, enqueuer Enqueuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{renderer: renderer, enqueuer: enqueuer, logger: logger}
}

// Trigger 按格式处理导出：print 同步返回打印页，其余格式尝试入队。
func (s *Service) Trigger(ctx context.Context, format Format, snap document.Snapshot, settings theme.Settings, correlationID string) (Result, error) {
	res := Result{Format: format, Notice: NoticeFor(format)}

	if format == Print {
		var buf bytes.Buffer
		if err := s.renderer.RenderPrint(&buf, snap.Data, settings); err != nil {
			return Result{}, fmt.Errorf("render print page: %w", err)
		}
		res.HTML = buf.String()
		return res, nil
	}
	if !format.Queued() {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if s.enqueuer == nil {
		return res, nil
	}

	id, err := s.enqueuer.Enqueue(ctx, tasks.ExportPayload{
		Format:        string(format),
		Version:       snap.Version,
		Document:      snap.Data,
		Theme:         settings,
		CorrelationID: correlationID,
	})
	if err != nil {
		return Result{}, err
	}
	s.logger.Info("export task enqueued",
		slog.String("correlation_id", correlationID),
		slog.String("format", string(format)),
		slog.String("task_id", id),
		slog.Uint64("version", snap.Version),
	)
	res.Queued = true
	res.TaskID = id
	return res, nil
}
