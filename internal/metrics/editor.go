package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "resumehub"

var (
	editorRegisterOnce sync.Once

	editorOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "editor",
			Name:      "operations_total",
			Help:      "编辑器提交的操作总数。",
		},
		[]string{"section", "op"},
	)

	documentVersion = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "document",
			Name:      "version",
			Help:      "当前文档快照的版本号。",
		},
	)

	exportsRequestedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "requests_total",
			Help:      "导出请求总数。",
		},
		[]string{"format", "queued"},
	)
)

// Editor 把编辑器事件记录为 Prometheus 指标。零值可用。
type Editor struct{}

// NewEditor 注册编辑器相关指标并返回记录器。
func NewEditor() Editor {
	editorRegisterOnce.Do(func() {
		prometheus.MustRegister(editorOperationsTotal, documentVersion, exportsRequestedTotal)
	})
	return Editor{}
}

func (Editor) EditorOperation(section, op string) {
	editorOperationsTotal.WithLabelValues(section, op).Inc()
}

func (Editor) DocumentVersion(v uint64) {
	documentVersion.Set(float64(v))
}

// ExportRequested 记录一次导出请求，queued 表示是否进入了任务队列。
func (Editor) ExportRequested(format string, queued bool) {
	q := "false"
	if queued {
		q = "true"
	}
	exportsRequestedTotal.WithLabelValues(format, q).Inc()
}
