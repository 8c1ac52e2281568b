package tasks

import (
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/internal/resume"
	"resumehub/internal/theme"
)

func TestNewExportTask(t *testing.T) {
	in := ExportPayload{
		Format:        "pdf",
		Version:       7,
		Document:      resume.Seed(),
		Theme:         theme.Default(),
		CorrelationID: "cid-1",
	}

	task, err := NewExportTask(in)
	require.NoError(t, err)
	assert.Equal(t, TypeExportGenerate, task.Type())

	out, err := ParseExportPayload(task)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseExportPayload_Malformed(t *testing.T) {
	_, err := ParseExportPayload(asynq.NewTask(TypeExportGenerate, []byte("{")))
	assert.Error(t, err)
}
