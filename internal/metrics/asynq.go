package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"resumehub/internal/tasks"
)

const (
	outcomeSuccess = "success"
	outcomeRetry   = "retry"
	outcomeSkipped = "skipped"
)

var (
	exportTasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "tasks_total",
			Help:      "导出任务处理总数，按格式与结果区分。",
		},
		[]string{"format", "outcome"},
	)

	exportTaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "task_duration_seconds",
			Help:      "单次导出任务耗时（秒），含渲染、转换与上传。",
			Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"format"},
	)

	exportTasksInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "tasks_in_progress",
			Help:      "当前正在处理的导出任务数量。",
		},
		[]string{"format"},
	)
)

// TaskFormat 从导出任务的载荷中取出格式，无法识别时返回 unknown。
func TaskFormat(task *asynq.Task) string {
	if task.Type() != tasks.TypeExportGenerate {
		return "unknown"
	}
	p, err := tasks.ParseExportPayload(task)
	if err != nil || p.Format == "" {
		return "unknown"
	}
	return p.Format
}

func taskOutcome(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, asynq.SkipRetry):
		return outcomeSkipped
	default:
		return outcomeRetry
	}
}

// AsynqMetricsMiddleware 按导出格式记录任务耗时与结果。
func AsynqMetricsMiddleware() asynq.MiddlewareFunc {
	return func(next asynq.Handler) asynq.Handler {
		return asynq.HandlerFunc(func(ctx context.Context, task *asynq.Task) error {
			format := TaskFormat(task)
			exportTasksInProgress.WithLabelValues(format).Inc()
			defer exportTasksInProgress.WithLabelValues(format).Dec()

			start := time.Now()
			err := next.ProcessTask(ctx, task)
			exportTaskDuration.WithLabelValues(format).Observe(time.Since(start).Seconds())
			exportTasksTotal.WithLabelValues(format, taskOutcome(err)).Inc()
			return err
		})
	}
}
