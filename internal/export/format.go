// Package export 负责简历导出：同步返回打印页，或把 PDF/DOCX 生成任务交给队列。
package export

import (
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	PDF   Format = "pdf"
	DOCX  Format = "docx"
	Print Format = "print"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat 不区分大小写地解析导出格式。
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case PDF, DOCX, Print:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Queued 表示该格式需要异步生成文件。
func (f Format) Queued() bool {
	return f == PDF || f == DOCX
}

func (f Format) Extension() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	switch f {
	case PDF:
		return "application/pdf"
	case DOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "text/html; charset=utf-8"
}

// Notice 是导出触发后展示给用户的提示。
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func NoticeFor(f Format) Notice {
	if f == Print {
		return Notice{
			Title:       "Opening print dialog...",
			Description: "Prepare to print your professional resume.",
		}
	}
	return Notice{
		Title:       fmt.Sprintf("Exporting resume as %s...", strings.ToUpper(string(f))),
		Description: "Your resume will be ready in a moment.",
	}
}

// FileName 根据姓名生成下载文件名，姓名为空时使用 resume。
func FileName(name string, f Format) string {
	base := strings.Join(strings.FieldsFunc(name, func(r rune) bool {
		return !(r == '-' || r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	}), "_")
	if base == "" {
		base = "resume"
	}
	return base + "_Resume" + f.Extension()
}
