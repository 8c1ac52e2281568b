package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"resumehub/internal/resume"
	"resumehub/internal/theme"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypeExportGenerate = "export:generate"
)

// ExportPayload 携带导出所需的完整快照，worker 不回查服务端状态。
type ExportPayload struct {
	Format        string            `json:"format"`
	Version       uint64            `json:"version"`
	Document      resume.ResumeData `json:"document"`
	Theme         theme.Settings    `json:"theme"`
	CorrelationID string            `json:"correlation_id"`
}

// NewExportTask 构造一个导出任务。
func NewExportTask(p ExportPayload, opts ...asynq.Option) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal export payload: %w", err)
	}
	return asynq.NewTask(TypeExportGenerate, payload, opts...), nil
}

func ParseExportPayload(t *asynq.Task) (ExportPayload, error) {
	var p ExportPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ExportPayload{}, fmt.Errorf("unmarshal export payload: %w", err)
	}
	return p, nil
}
