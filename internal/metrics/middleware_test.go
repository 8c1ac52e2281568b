package metrics

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/internal/tasks"
)

func TestSectionOf(t *testing.T) {
	testCases := []struct {
		route string
		want  string
	}{
		{route: "/v1/activities/:id/save", want: "activities"},
		{route: "/v1/skills/:index/level", want: "skills"},
		{route: "/v1/summary", want: "summary"},
		{route: "/v1/ws", want: "ws"},
		{route: "/health", want: systemSection},
		{route: "/v1/", want: systemSection},
		{route: "unmatched", want: systemSection},
	}
	for _, tc := range testCases {
		t.Run(tc.route, func(t *testing.T) {
			assert.Equal(t, tc.want, SectionOf(tc.route))
		})
	}
}

func TestGinMiddleware_LabelsBySection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.POST("/v1/skills/:index/verify", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := requestTotal.WithLabelValues("skills", http.MethodPost, "/v1/skills/:index/verify", "200")
	before := testutil.ToFloat64(counter)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, fmt.Sprintf("/v1/skills/%d/verify", i), nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, before+2, testutil.ToFloat64(counter))

	unmatched := requestTotal.WithLabelValues(systemSection, http.MethodGet, "unmatched", "404")
	before = testutil.ToFloat64(unmatched)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/nope/123", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(unmatched))
}

func TestTaskFormat(t *testing.T) {
	task, err := tasks.NewExportTask(tasks.ExportPayload{Format: "docx"})
	require.NoError(t, err)
	assert.Equal(t, "docx", TaskFormat(task))

	assert.Equal(t, "unknown", TaskFormat(asynq.NewTask(tasks.TypeExportGenerate, []byte("{"))))
	assert.Equal(t, "unknown", TaskFormat(asynq.NewTask("email:send", nil)))
}

func TestAsynqMetricsMiddleware_Outcomes(t *testing.T) {
	task, err := tasks.NewExportTask(tasks.ExportPayload{Format: "pdf"})
	require.NoError(t, err)

	run := func(result error) error {
		h := AsynqMetricsMiddleware()(asynq.HandlerFunc(func(context.Context, *asynq.Task) error {
			return result
		}))
		return h.ProcessTask(context.Background(), task)
	}

	success := exportTasksTotal.WithLabelValues("pdf", outcomeSuccess)
	retry := exportTasksTotal.WithLabelValues("pdf", outcomeRetry)
	skipped := exportTasksTotal.WithLabelValues("pdf", outcomeSkipped)
	s0, r0, k0 := testutil.ToFloat64(success), testutil.ToFloat64(retry), testutil.ToFloat64(skipped)

	require.NoError(t, run(nil))
	assert.Error(t, run(fmt.Errorf("upload: timeout")))
	assert.ErrorIs(t, run(fmt.Errorf("bad payload: %w", asynq.SkipRetry)), asynq.SkipRetry)

	assert.Equal(t, s0+1, testutil.ToFloat64(success))
	assert.Equal(t, r0+1, testutil.ToFloat64(retry))
	assert.Equal(t, k0+1, testutil.ToFloat64(skipped))
	assert.Zero(t, testutil.ToFloat64(exportTasksInProgress.WithLabelValues("pdf")))
}
