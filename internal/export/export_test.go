package export

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumehub/internal/document"
	"resumehub/internal/errcode"
	"resumehub/internal/preview"
	"resumehub/internal/resume"
	"resumehub/internal/tasks"
	"resumehub/internal/theme"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, PDF, f)

	_, err = ParseFormat("odt")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNoticeFor(t *testing.T) {
	n := NoticeFor(DOCX)
	assert.Equal(t, "Exporting resume as DOCX...", n.Title)
	assert.Equal(t, "Your resume will be ready in a moment.", n.Description)

	n = NoticeFor(Print)
	assert.Equal(t, "Opening print dialog...", n.Title)
	assert.Equal(t, "Prepare to print your professional resume.", n.Description)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Alex_Johnson_Resume.pdf", FileName("Alex Johnson", PDF))
	assert.Equal(t, "resume_Resume.docx", FileName("  ", DOCX))
}

type fakeEnqueuer struct {
	got []tasks.ExportPayload
	err error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, p tasks.ExportPayload) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.got = append(f.got, p)
	return "task-1", nil
}

func seedSnapshot() document.Snapshot {
	return document.Snapshot{Version: 3, Data: resume.Seed()}
}

func TestService_TriggerWithoutQueue(t *testing.T) {
	s := NewService(preview.MustNewRenderer(), nil, nil)

	res, err := s.Trigger(context.Background(), PDF, seedSnapshot(), theme.Default(), "cid")
	require.NoError(t, err)
	assert.False(t, res.Queued)
	assert.Equal(t, "Exporting resume as PDF...", res.Notice.Title)
}

func TestService_TriggerQueued(t *testing.T) {
	q := &fakeEnqueuer{}
	s := NewService(preview.MustNewRenderer(), q, nil)

	res, err := s.Trigger(context.Background(), DOCX, seedSnapshot(), theme.Default(), "cid-9")
	require.NoError(t, err)
	assert.True(t, res.Queued)
	assert.Equal(t, "task-1", res.TaskID)

	require.Len(t, q.got, 1)
	assert.Equal(t, "docx", q.got[0].Format)
	assert.Equal(t, uint64(3), q.got[0].Version)
	assert.Equal(t, "cid-9", q.got[0].CorrelationID)
	assert.Equal(t, "Alex Johnson", q.got[0].Document.PersonalInfo.Name)
}

func TestService_TriggerPrint(t *testing.T) {
	q := &fakeEnqueuer{}
	s := NewService(preview.MustNewRenderer(), q, nil)

	res, err := s.Trigger(context.Background(), Print, seedSnapshot(), theme.Default(), "")
	require.NoError(t, err)
	assert.Contains(t, res.HTML, "@page")
	assert.Equal(t, "Opening print dialog...", res.Notice.Title)
	assert.Contains(t, res.HTML, "Alex Johnson")
	assert.Empty(t, q.got)
}

func TestService_TriggerEnqueueError(t *testing.T) {
	s := NewService(preview.MustNewRenderer(), &fakeEnqueuer{err: errors.New("redis down")}, nil)
	_, err := s.Trigger(context.Background(), PDF, seedSnapshot(), theme.Default(), "")
	assert.ErrorContains(t, err, "redis down")
}

type fakeConverter struct {
	data []byte
	err  error
}

func (f fakeConverter) Convert(context.Context, tasks.ExportPayload) ([]byte, error) {
	return f.data, f.err
}

type fakeUploader struct {
	objects    map[string][]byte
	err        error
	presignErr error
}

func (f *fakeUploader) UploadFile(_ context.Context, name string, r io.Reader, _ int64, _ string) error {
	if f.err != nil {
		return f.err
	}
	b, _ := io.ReadAll(r)
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[name] = b
	return nil
}

func (f *fakeUploader) GeneratePresignedURL(_ context.Context, key, filename string, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://minio.local/" + key + "?name=" + filename, nil
}

func (f *fakeUploader) DeleteObject(_ context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

type fakePublisher struct {
	msgs []NotifyMessage
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, msg NotifyMessage) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msg)
	return nil
}

func newTask(t *testing.T, format string) *asynq.Task {
	task, err := tasks.NewExportTask(tasks.ExportPayload{
		Format:        format,
		Version:       5,
		Document:      resume.Seed(),
		Theme:         theme.Default(),
		CorrelationID: "cid-5",
	})
	require.NoError(t, err)
	return task
}

func TestTaskHandler_Success(t *testing.T) {
	up := &fakeUploader{}
	pub := &fakePublisher{}
	h := NewTaskHandler(map[Format]Converter{PDF: fakeConverter{data: []byte("%PDF")}}, up, pub, nil, time.Minute)

	require.NoError(t, h.ProcessTask(context.Background(), newTask(t, "pdf")))

	require.Len(t, up.objects, 1)
	require.Len(t, pub.msgs, 1)
	msg := pub.msgs[0]
	assert.Equal(t, StatusCompleted, msg.Status)
	assert.Equal(t, errcode.OK, msg.ErrorCode)
	assert.Equal(t, uint64(5), msg.Version)
	assert.Equal(t, "cid-5", msg.CorrelationID)
	assert.Contains(t, msg.URL, "exports/pdf/")
	assert.Contains(t, msg.URL, "Alex_Johnson_Resume.pdf")
}

func TestTaskHandler_UnknownFormatSkipsRetry(t *testing.T) {
	pub := &fakePublisher{}
	h := NewTaskHandler(map[Format]Converter{}, &fakeUploader{}, pub, nil, time.Minute)

	err := h.ProcessTask(context.Background(), newTask(t, "odt"))
	assert.ErrorIs(t, err, asynq.SkipRetry)
	require.Len(t, pub.msgs, 1)
	assert.Equal(t, StatusError, pub.msgs[0].Status)
	assert.Equal(t, errcode.UnknownFormat, pub.msgs[0].ErrorCode)
}

func TestTaskHandler_RetryableErrorIsQuiet(t *testing.T) {
	pub := &fakePublisher{}
	h := NewTaskHandler(map[Format]Converter{DOCX: fakeConverter{err: errors.New("boom")}}, &fakeUploader{}, pub, nil, time.Minute)

	err := h.ProcessTask(context.Background(), newTask(t, "docx"))
	assert.ErrorContains(t, err, "boom")
	assert.Empty(t, pub.msgs)
}

func TestTaskHandler_UploadFailure(t *testing.T) {
	pub := &fakePublisher{}
	h := NewTaskHandler(map[Format]Converter{PDF: fakeConverter{data: []byte("x")}},
		&fakeUploader{err: errors.New("bucket gone")}, pub, nil, time.Minute)

	assert.ErrorContains(t, h.ProcessTask(context.Background(), newTask(t, "pdf")), "bucket gone")
}

func TestTaskHandler_DiscardsUndeliveredObject(t *testing.T) {
	converters := map[Format]Converter{PDF: fakeConverter{data: []byte("%PDF")}}

	up := &fakeUploader{presignErr: errors.New("signature expired")}
	h := NewTaskHandler(converters, up, &fakePublisher{}, nil, time.Minute)
	assert.ErrorContains(t, h.ProcessTask(context.Background(), newTask(t, "pdf")), "signature expired")
	assert.Empty(t, up.objects)

	up = &fakeUploader{}
	h = NewTaskHandler(converters, up, &fakePublisher{err: errors.New("redis down")}, nil, time.Minute)
	assert.ErrorContains(t, h.ProcessTask(context.Background(), newTask(t, "pdf")), "redis down")
	assert.Empty(t, up.objects)
}

func TestDOCXConverter_FillsTemplate(t *testing.T) {
	c := &DOCXConverter{tempDir: t.TempDir()}
	doc := resume.Seed()
	doc.PersonalInfo.Title = "Backend Developer"

	data, err := c.Convert(context.Background(), tasks.ExportPayload{Format: "docx", Document: doc})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	var body string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		_ = rc.Close()
		body = string(b)
	}
	require.NotEmpty(t, body)
	assert.Contains(t, body, "Alex Johnson")
	assert.Contains(t, body, "Backend Developer")
	assert.NotContains(t, body, "{name}")
}

func TestPlaceholders(t *testing.T) {
	m := Placeholders(resume.ResumeData{
		PersonalInfo: resume.PersonalInfo{Email: "a@b.c", Location: "Remote", GitHub: "github.com/a"},
		Skills: []resume.Skill{
			{Name: "Go", Category: resume.CategoryTechnical},
			{Name: "Empathy", Category: resume.CategorySoft},
		},
	})
	assert.Equal(t, "a@b.c"+entrySeparator+"Remote", m["contact"])
	assert.Equal(t, "https://github.com/a", m["links"])
	assert.Equal(t, "Go", m["skills"])
	assert.Equal(t, "", m["activities"])
}
