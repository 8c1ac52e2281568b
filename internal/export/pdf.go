package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"resumehub/internal/preview"
	"resumehub/internal/tasks"
)

// Converter 把导出任务中的快照转换成文件内容。
type Converter interface {
	Convert(ctx context.Context, p tasks.ExportPayload) ([]byte, error)
}

// PDFConverter 先渲染打印版 HTML，再用无头 Chromium 打印成 PDF。
type PDFConverter struct {
	renderer *preview.Renderer
	timeout  time.Duration
}

func NewPDFConverter(renderer *preview.Renderer, timeout time.Duration) *PDFConverter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PDFConverter{renderer: renderer, timeout: timeout}
}

func (c *PDFConverter) Convert(ctx context.Context, p tasks.ExportPayload) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.renderer.RenderPrint(&buf, p.Document, p.Theme); err != nil {
		return nil, fmt.Errorf("render print html: %w", err)
	}
	return c.htmlToPDF(ctx, buf.String())
}

func (c *PDFConverter) htmlToPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	launch := launcher.New().
		Context(ctx).
		Headless(true).
		NoSandbox(true)

	if path, ok := launcher.LookPath(); ok {
		launch = launch.Bin(path)
	}

	browserURL, err := launch.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch chromium: %w", err)
	}
	defer launch.Cleanup()

	browser := rod.New().ControlURL(browserURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}
	defer func() {
		_ = browser.Close()
	}()

	page, err := browser.Timeout(c.timeout).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	defer func() {
		_ = page.Close()
	}()

	page = page.Timeout(c.timeout)
	if err := page.SetDocumentContent(htmlContent); err != nil {
		return nil, fmt.Errorf("set document content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("wait load: %w", err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, fmt.Errorf("export pdf: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read pdf bytes: %w", err)
	}
	return data, nil
}
